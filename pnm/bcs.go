// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import "github.com/cpmech/gosl/chk"

// kinds of boundary conditions
const (
	bcNone    = iota // no boundary condition: zero-flux (the documented default)
	bcValue          // fixed value (Dirichlet); the pore is clamped and leaves the balance
	bcRate           // fixed net rate (Neumann-like external source)
	bcOutflow        // advective outflow; the net advective inflow augments the diagonal
)

// BcSet records the boundary conditions of a transport solve. A pore carries at most one
// condition at a time: setting a different kind on a pore with mode "overwrite" replaces the
// previous one, whereas mode "add" merges values additively and is only allowed on pores
// holding the same kind (or none). Pores without a condition are zero-flux.
type BcSet struct {
	np   int
	kind []int
	val  []float64
}

// NewBcSet returns a new boundary condition set for a network with np pores
func NewBcSet(np int) (o *BcSet) {
	o = new(BcSet)
	o.np = np
	o.kind = make([]int, np)
	o.val = make([]float64, np)
	return
}

// SetValue prescribes fixed values (Dirichlet) at the given pores. values must have length 1
// (same value everywhere) or len(pores). mode is "overwrite" or "add".
func (o *BcSet) SetValue(pores []int, values []float64, mode string) (err error) {
	return o.set(bcValue, pores, values, mode)
}

// SetRate prescribes fixed net rates (Neumann-like) at the given pores. values must have length
// 1 or len(pores). mode is "overwrite" or "add".
func (o *BcSet) SetRate(pores []int, values []float64, mode string) (err error) {
	return o.set(bcRate, pores, values, mode)
}

// SetOutflow prescribes advective outflow conditions at the given pores. The condition requires
// a flow field and is only meaningful for advection-diffusion solves.
func (o *BcSet) SetOutflow(pores []int, mode string) (err error) {
	return o.set(bcOutflow, pores, []float64{0}, mode)
}

// Clear removes any boundary condition from the given pores
func (o *BcSet) Clear(pores []int) (err error) {
	for _, n := range pores {
		if n < 0 || n >= o.np {
			return chk.Err("boundary conditions: pore %d is outside [0,%d)", n, o.np)
		}
		o.kind[n] = bcNone
		o.val[n] = 0
	}
	return
}

// set records one kind of boundary condition on a set of pores
func (o *BcSet) set(kind int, pores []int, values []float64, mode string) (err error) {
	if len(pores) < 1 {
		return chk.Err("boundary conditions: at least one pore is required")
	}
	if len(values) != 1 && len(values) != len(pores) {
		return chk.Err("boundary conditions: %d values cannot be distributed over %d pores", len(values), len(pores))
	}
	if mode != "overwrite" && mode != "add" {
		return chk.Err("boundary conditions: mode %q is unknown; must be \"overwrite\" or \"add\"", mode)
	}
	for i, n := range pores {
		if n < 0 || n >= o.np {
			return chk.Err("boundary conditions: pore %d is outside [0,%d)", n, o.np)
		}
		v := values[0]
		if len(values) > 1 {
			v = values[i]
		}
		switch mode {
		case "overwrite":
			o.kind[n] = kind
			o.val[n] = v
		case "add":
			if o.kind[n] != bcNone && o.kind[n] != kind {
				return chk.Err("boundary conditions: pore %d already holds a different condition; cannot merge with mode \"add\"", n)
			}
			o.kind[n] = kind
			o.val[n] += v
		}
	}
	return
}

// Kind returns the kind of condition held by a pore and its value
func (o *BcSet) Kind(pore int) (kind int, val float64) {
	return o.kind[pore], o.val[pore]
}

// NumValues returns the number of pores holding a fixed-value condition
func (o *BcSet) NumValues() (n int) {
	for _, k := range o.kind {
		if k == bcValue {
			n++
		}
	}
	return
}
