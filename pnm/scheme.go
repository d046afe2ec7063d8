// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SchemeFunc converts the diffusive conductance D and the signed flow rate Q of one throat into
// the pair of directed transmissibilities (ah,at) such that the discrete flux from head to tail is
//
//	J = ah・x[head] - at・x[tail]
//
// Q is positive for flow from head to tail; Pe = Q/D is the throat Peclet number. All schemes
// guarantee ah ≥ 0 and at ≥ 0 for finite D ≥ 0 (discrete maximum principle) and reduce to
// ah = at = D when Q = 0 (pure diffusion). Callers must handle the degenerate case D = 0 and
// Q = 0 (disconnected throat) before calling; see Coefficients.
type SchemeFunc func(D, Q float64) (ah, at float64)

// GetScheme returns a discretisation scheme by name
func GetScheme(name string) (s SchemeFunc, err error) {
	s, ok := schemes[name]
	if !ok {
		return nil, chk.Err("discretisation scheme %q is unknown", name)
	}
	return
}

// schemes holds all available discretisation schemes
var schemes = map[string]SchemeFunc{
	"upwind":      upwindScheme,
	"hybrid":      hybridScheme,
	"powerlaw":    powerlawScheme,
	"exponential": exponentialScheme,
}

// upwindScheme takes the donor value for advection. First order, unconditionally positive;
// numerical diffusion grows with |Pe|.
func upwindScheme(D, Q float64) (ah, at float64) {
	ah = D + math.Max(0, Q)
	at = D + math.Max(0, -Q)
	return
}

// hybridScheme is central-difference-like for |Pe| ≤ 2 and switches to pure upwind beyond,
// clipping coefficients at zero to keep positivity.
func hybridScheme(D, Q float64) (ah, at float64) {
	ah = math.Max(0, math.Max(Q, D+Q/2.0))
	at = math.Max(0, math.Max(-Q, D-Q/2.0))
	return
}

// powerlawScheme approximates the exponential scheme with a fifth-order polynomial in Pe;
// cheaper than the exact solution and accurate at moderate Peclet numbers.
func powerlawScheme(D, Q float64) (ah, at float64) {
	p := 0.0
	if D > 0 {
		f := 1.0 - 0.1*math.Abs(Q/D)
		if f > 0 {
			p = D * math.Pow(f, 5.0)
		}
	}
	ah = p + math.Max(0, Q)
	at = p + math.Max(0, -Q)
	return
}

// exponentialScheme is the exact solution of the 1-D steady advection-diffusion equation with
// constant coefficients along the throat. Expm1 keeps the Pe → 0 limit accurate and the IEEE
// limits of Q/expm1(±∞) recover the pure-advection (upwind) behaviour when D = 0.
func exponentialScheme(D, Q float64) (ah, at float64) {
	if Q == 0 {
		return D, D
	}
	at = Q / math.Expm1(Q/D)
	ah = at + Q
	return
}
