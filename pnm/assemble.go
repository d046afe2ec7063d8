// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// coefficients computes the directed transmissibility pair of every throat under the selected
// scheme. A throat with zero conductance and zero flow is degenerate: it carries no transport,
// contributes nothing to the matrix and is flagged inert so that it never produces a 0/0 Peclet
// number. Order of throat processing does not affect the result (pure per-throat computation).
func (o *Transport) coefficients() (err error) {
	nt := o.Msh.Nt
	if len(o.Cond) != nt {
		return chk.Err("transport %q: conductance array has %d values but the network has %d throats", o.Set.Quantity, len(o.Cond), nt)
	}
	if o.Flow != nil && len(o.Flow) != nt {
		return chk.Err("transport %q: flow array has %d values but the network has %d throats", o.Set.Quantity, len(o.Flow), nt)
	}
	o.ah = make([]float64, nt)
	o.at = make([]float64, nt)
	o.inert = make([]bool, nt)
	for t := 0; t < nt; t++ {
		d := o.Cond[t]
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return chk.Err("transport %q: throat %d has invalid conductance %g", o.Set.Quantity, t, d)
		}
		q := 0.0
		if o.Flow != nil {
			q = o.Flow[t]
			if math.IsNaN(q) || math.IsInf(q, 0) {
				return chk.Err("transport %q: throat %d has invalid flow rate %g", o.Set.Quantity, t, q)
			}
		}
		if d == 0 && q == 0 {
			o.inert[t] = true
			continue
		}
		o.ah[t], o.at[t] = o.scheme(d, q)
	}
	return
}

// assemble builds the sparse coefficient matrix Kb and right-hand-side vector b of the balance
// equations. x0 is the current estimate used to linearise source models; it may be nil when no
// sources are present. Boundary conditions are applied as follows:
//   - value (Dirichlet): the row is clamped (diagonal 1, rhs = value); transport contributions
//     to that row are dropped during accumulation
//   - rate: the prescribed rate is added to the rhs without touching the row
//   - outflow: the net advective inflow is added to the diagonal so that the pore takes the
//     flow-weighted average of its upstream neighbours
func (o *Transport) assemble(x0 []float64) (kb *la.Triplet, b []float64, err error) {

	// allocate
	np, nt := o.Msh.Np, o.Msh.Nt
	kb = new(la.Triplet)
	kb.Init(np, np, 4*nt+2*np)
	b = make([]float64, np)

	// clamped rows do not participate in the balance
	clamped := func(n int) bool { return o.Bcs.kind[n] == bcValue }

	// transport terms: for throat e=(h,t) the flux J = ah・x[h] - at・x[t] leaves h and enters t
	for t := 0; t < nt; t++ {
		if o.inert[t] {
			continue
		}
		h, l := o.Msh.Conns[t][0], o.Msh.Conns[t][1]
		ah, at := o.ah[t], o.at[t]
		if !clamped(h) {
			kb.Put(h, h, ah)
			kb.Put(h, l, -at)
		}
		if !clamped(l) {
			kb.Put(l, l, at)
			kb.Put(l, h, -ah)
		}
	}

	// boundary conditions
	var qp []float64 // net advective inflow per pore, for outflow conditions
	for n := 0; n < np; n++ {
		switch o.Bcs.kind[n] {
		case bcValue:
			kb.Put(n, n, 1.0)
			b[n] = o.Bcs.val[n]
		case bcRate:
			b[n] += o.Bcs.val[n]
		case bcOutflow:
			if o.Flow == nil {
				return nil, nil, chk.Err("transport %q: outflow condition at pore %d requires a flow field", o.Set.Quantity, n)
			}
			if qp == nil {
				qp = make([]float64, np)
				for t := 0; t < nt; t++ {
					h, l := o.Msh.Conns[t][0], o.Msh.Conns[t][1]
					qp[h] -= o.Flow[t]
					qp[l] += o.Flow[t]
				}
			}
			kb.Put(n, n, qp[n])
		}
	}

	// source terms: rate(x) ≈ s1・x + s2 moves to the left-hand side as -s1 on the diagonal
	for n, src := range o.srcs {
		if clamped(n) {
			return nil, nil, chk.Err("transport %q: pore %d holds both a fixed value and a source", o.Set.Quantity, n)
		}
		x := 0.0
		if x0 != nil {
			x = x0[n]
		}
		s1, s2 := src.Linearize(x)
		if o.relaxedSrc != nil {
			ω := o.Set.RelaxSrc
			old := o.relaxedSrc[n]
			s1 = ω*s1 + (1.0-ω)*old[0]
			s2 = ω*s2 + (1.0-ω)*old[1]
			o.relaxedSrc[n] = [2]float64{s1, s2}
		}
		kb.Put(n, n, -s1)
		b[n] += s2
	}
	return
}
