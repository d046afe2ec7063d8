// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/edgargmartinez/OpenPNM/network"
	"github.com/edgargmartinez/OpenPNM/phase"
)

// StokesFlow solves creeping (viscous) flow through the network: a pure-diffusion balance on
// the hydraulic conductances with pressure as the unknown. The resulting pressure field and the
// derived throat flow rates feed subsequent advection-diffusion solves.
type StokesFlow struct {
	*Transport
	Phs *phase.Phase // the working fluid state
}

// NewStokesFlow returns a new Stokes flow algorithm
func NewStokesFlow(msh *network.Network, phs *phase.Phase, set *Settings) (o *StokesFlow, err error) {
	if set == nil {
		set = DefaultSettings()
	}
	if set.Quantity == "" || set.Quantity == "pore.quantity" {
		set.Quantity = "pore.pressure"
	}
	if phs.HydraulicCond == nil {
		return nil, chk.Err("stokes flow: phase %q is missing hydraulic conductances", phs.Name)
	}
	tra, err := NewTransport(msh, phs.HydraulicCond, set)
	if err != nil {
		return
	}
	return &StokesFlow{Transport: tra, Phs: phs}, nil
}

// UpdatePhase stores the results of a successful Run on the phase: the pore pressure field and
// the signed throat flow rates. Subsequent algorithms read them from there.
func (o *StokesFlow) UpdatePhase() (err error) {
	if o.X == nil {
		return chk.Err("stokes flow: UpdatePhase requires a successful Run first")
	}
	o.Phs.Pressure = o.X
	o.Phs.Flow, err = ThroatFlow(o.Msh, o.Phs)
	return
}

// Permeability computes the effective (Darcy) permeability of the network between two labelled
// faces held at fixed pressures:
//
//	K = Q μ L / (A Δp)
//
// where Q is the net flow rate entering through the inlet face, A and L are the sample
// cross-section area and length. Requires a successful Run with fixed-value conditions on both
// faces.
func (o *StokesFlow) Permeability(inlet, outlet string, area, length float64) (K float64, err error) {
	if area <= 0 || length <= 0 {
		return 0, chk.Err("stokes flow: area=%g and length=%g must be positive", area, length)
	}
	pin, err := o.Msh.Pores(inlet)
	if err != nil {
		return
	}
	pout, err := o.Msh.Pores(outlet)
	if err != nil {
		return
	}
	dp, err := o.bcValueDiff(pin, pout)
	if err != nil {
		return
	}
	rates, err := o.Rate(pin, "group")
	if err != nil {
		return
	}
	return rates[0] * o.Phs.Viscosity * length / (area * dp), nil
}

// bcValueDiff returns the difference between the fixed values held by two pore sets
func (o *Transport) bcValueDiff(pin, pout []int) (dv float64, err error) {
	vin, err := o.bcValueOf(pin)
	if err != nil {
		return
	}
	vout, err := o.bcValueOf(pout)
	if err != nil {
		return
	}
	dv = vin - vout
	if math.Abs(dv) < 1e-300 {
		return 0, chk.Err("transport %q: fixed values on the two faces are equal; no gradient to measure", o.Set.Quantity)
	}
	return
}

// bcValueOf returns the common fixed value held by a pore set
func (o *Transport) bcValueOf(pores []int) (v float64, err error) {
	if len(pores) < 1 {
		return 0, chk.Err("transport %q: empty pore set", o.Set.Quantity)
	}
	for i, n := range pores {
		kind, val := o.Bcs.Kind(n)
		if kind != bcValue {
			return 0, chk.Err("transport %q: pore %d does not hold a fixed-value condition", o.Set.Quantity, n)
		}
		if i == 0 {
			v = val
			continue
		}
		if val != v {
			return 0, chk.Err("transport %q: pores hold different fixed values (%g and %g)", o.Set.Quantity, v, val)
		}
	}
	return
}
