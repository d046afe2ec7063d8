// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/edgargmartinez/OpenPNM/network"
	"github.com/edgargmartinez/OpenPNM/phase"
)

// FickianDiffusion solves pure molecular diffusion over the network (no advection), with mole
// fraction as the unknown.
type FickianDiffusion struct {
	*Transport
	Phs *phase.Phase // the working fluid state
}

// NewFickianDiffusion returns a new Fickian diffusion algorithm
func NewFickianDiffusion(msh *network.Network, phs *phase.Phase, set *Settings) (o *FickianDiffusion, err error) {
	if set == nil {
		set = DefaultSettings()
	}
	if set.Quantity == "" || set.Quantity == "pore.quantity" {
		set.Quantity = "pore.mole_fraction"
	}
	if phs.DiffusiveCond == nil {
		return nil, chk.Err("fickian diffusion: phase %q is missing diffusive conductances", phs.Name)
	}
	tra, err := NewTransport(msh, phs.DiffusiveCond, set)
	if err != nil {
		return
	}
	return &FickianDiffusion{Transport: tra, Phs: phs}, nil
}

// EffDiffusivity computes the effective diffusion coefficient of the network between two
// labelled faces held at fixed mole fractions:
//
//	Deff = N L / (A Δx ρm)
//
// where N is the net molar rate entering through the inlet face and ρm the molar density of
// the phase. Requires a successful Run with fixed-value conditions on both faces.
func (o *FickianDiffusion) EffDiffusivity(inlet, outlet string, area, length float64) (Deff float64, err error) {
	if area <= 0 || length <= 0 {
		return 0, chk.Err("fickian diffusion: area=%g and length=%g must be positive", area, length)
	}
	if o.Phs.MolarDensity <= 0 {
		return 0, chk.Err("fickian diffusion: phase %q has invalid molar density %g", o.Phs.Name, o.Phs.MolarDensity)
	}
	pin, err := o.Msh.Pores(inlet)
	if err != nil {
		return
	}
	pout, err := o.Msh.Pores(outlet)
	if err != nil {
		return
	}
	dx, err := o.bcValueDiff(pin, pout)
	if err != nil {
		return
	}
	rates, err := o.Rate(pin, "group")
	if err != nil {
		return
	}
	return rates[0] * length / (area * dx * o.Phs.MolarDensity), nil
}
