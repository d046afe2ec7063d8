// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import "github.com/cpmech/gosl/chk"

// Settings holds all recognised options of a transport solve. Every option is an explicit field;
// unknown keys in input files are rejected at read time, and unknown names here are rejected by
// Validate before any assembly takes place.
type Settings struct {

	// quantity and discretisation
	Quantity string `json:"quantity"` // name of the solved field; e.g. "pore.concentration"
	Scheme   string `json:"scheme"`   // discretisation scheme: upwind, hybrid, powerlaw, exponential

	// linear solver
	LinSol string  `json:"linsol"` // linear solver backend: dense, umfpack
	Atol   float64 `json:"atol"`   // absolute tolerance of the source iteration
	Rtol   float64 `json:"rtol"`   // relative tolerance of the source iteration
	NmaxIt int     `json:"nmaxit"` // maximum number of source iterations

	// relaxation for source iterations
	RelaxSrc float64 `json:"relaxsrc"` // relaxation factor of source linearisation updates
	RelaxQty float64 `json:"relaxqty"` // relaxation factor of quantity updates

	// messages
	Verbose bool `json:"verbose"` // show iteration messages
}

// DefaultSettings returns settings with sensible defaults for a linear steady-state solve
func DefaultSettings() *Settings {
	return &Settings{
		Quantity: "pore.quantity",
		Scheme:   "powerlaw",
		LinSol:   "dense",
		Atol:     1e-12,
		Rtol:     1e-8,
		NmaxIt:   100,
		RelaxSrc: 1.0,
		RelaxQty: 1.0,
	}
}

// Validate checks all options, filling unset numerical values with defaults
func (o *Settings) Validate() (err error) {
	if o.Quantity == "" {
		o.Quantity = "pore.quantity"
	}
	if o.Scheme == "" {
		o.Scheme = "powerlaw"
	}
	if _, ok := schemes[o.Scheme]; !ok {
		return chk.Err("settings: scheme %q is unknown", o.Scheme)
	}
	if o.LinSol == "" {
		o.LinSol = "dense"
	}
	if _, ok := linsolvers[o.LinSol]; !ok {
		return chk.Err("settings: linear solver %q is unknown", o.LinSol)
	}
	if o.Atol == 0 && o.Rtol == 0 {
		o.Atol, o.Rtol = 1e-12, 1e-8
	}
	if o.Atol < 0 || o.Rtol < 0 {
		return chk.Err("settings: tolerances atol=%g rtol=%g are invalid", o.Atol, o.Rtol)
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 100
	}
	if o.RelaxSrc == 0 {
		o.RelaxSrc = 1.0
	}
	if o.RelaxQty == 0 {
		o.RelaxQty = 1.0
	}
	if o.RelaxSrc < 0 || o.RelaxSrc > 1 || o.RelaxQty < 0 || o.RelaxQty > 1 {
		return chk.Err("settings: relaxation factors relaxsrc=%g relaxqty=%g must be within (0,1]", o.RelaxSrc, o.RelaxQty)
	}
	return
}
