// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// SrcModel defines reaction/source models attached to pores. Rate returns the net generation
// rate as a function of the local unknown x. Linearize returns (s1,s2) such that
//
//	rate(x) ≈ s1・x + s2
//
// around the given estimate; the pair feeds the successive-substitution iteration of the solver.
type SrcModel interface {
	Init(prms fun.Params) error          // Init initialises this structure
	GetPrms(example bool) fun.Params     // gets (an example of) parameters
	Rate(x float64) float64              // net generation rate at x
	Linearize(x float64) (s1, s2 float64) // linear coefficients at x
}

// NewSource returns a new source model
func NewSource(name string) (model SrcModel, err error) {
	allocator, ok := srcAllocators[name]
	if !ok {
		return nil, chk.Err("source model %q is not available in pnm database", name)
	}
	return allocator(), nil
}

// srcAllocators holds all available source models
var srcAllocators = map[string]func() SrcModel{
	"linear":    func() SrcModel { return new(LinearSrc) },
	"power-law": func() SrcModel { return new(PowerLawSrc) },
}

// LinearSrc implements rate = A1・x + A2
type LinearSrc struct {
	A1, A2 float64
}

// Init initialises this structure
func (o *LinearSrc) Init(prms fun.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "a1":
			o.A1 = p.V
		case "a2":
			o.A2 = p.V
		default:
			return chk.Err("linear source model: parameter %q is unknown", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o *LinearSrc) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "a1", V: -1.0},
			&fun.P{N: "a2", V: 0.0},
		}
	}
	return fun.Params{
		&fun.P{N: "a1", V: o.A1},
		&fun.P{N: "a2", V: o.A2},
	}
}

// Rate returns the net generation rate at x
func (o *LinearSrc) Rate(x float64) float64 { return o.A1*x + o.A2 }

// Linearize returns the linear coefficients at x; exact for this model
func (o *LinearSrc) Linearize(x float64) (s1, s2 float64) { return o.A1, o.A2 }

// PowerLawSrc implements rate = A1・x^A2 + A3
type PowerLawSrc struct {
	A1, A2, A3 float64
}

// Init initialises this structure
func (o *PowerLawSrc) Init(prms fun.Params) (err error) {
	o.A2 = 1.0
	for _, p := range prms {
		switch p.N {
		case "a1":
			o.A1 = p.V
		case "a2":
			o.A2 = p.V
		case "a3":
			o.A3 = p.V
		default:
			return chk.Err("power-law source model: parameter %q is unknown", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o *PowerLawSrc) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "a1", V: -1.0},
			&fun.P{N: "a2", V: 2.0},
			&fun.P{N: "a3", V: 0.0},
		}
	}
	return fun.Params{
		&fun.P{N: "a1", V: o.A1},
		&fun.P{N: "a2", V: o.A2},
		&fun.P{N: "a3", V: o.A3},
	}
}

// Rate returns the net generation rate at x
func (o *PowerLawSrc) Rate(x float64) float64 {
	if x <= 0 {
		return o.A3
	}
	return o.A1*math.Pow(x, o.A2) + o.A3
}

// Linearize returns the tangent linearisation at x. For non-positive x the rate is held at the
// constant term to keep the iteration away from complex powers.
func (o *PowerLawSrc) Linearize(x float64) (s1, s2 float64) {
	if x <= 0 {
		return 0, o.A3
	}
	s1 = o.A1 * o.A2 * math.Pow(x, o.A2-1.0)
	s2 = o.Rate(x) - s1*x
	return
}
