// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/edgargmartinez/OpenPNM/network"
	"github.com/edgargmartinez/OpenPNM/phase"
)

// AdvectionDiffusion (dispersion) solves the steady advection-diffusion equation over a pore
// network. The diffusive conductances come from the phase; the throat flow field comes either
// from a previous Stokes flow solve stored on the phase or, when absent, is derived here from
// the pore pressure field and the hydraulic conductances.
type AdvectionDiffusion struct {
	*Transport
	Phs *phase.Phase // the working fluid state
}

// NewAdvectionDiffusion returns a new advection-diffusion algorithm
func NewAdvectionDiffusion(msh *network.Network, phs *phase.Phase, set *Settings) (o *AdvectionDiffusion, err error) {
	if set == nil {
		set = DefaultSettings()
	}
	if set.Quantity == "" || set.Quantity == "pore.quantity" {
		set.Quantity = "pore.concentration"
	}
	if phs.DiffusiveCond == nil {
		return nil, chk.Err("advection-diffusion: phase %q is missing diffusive conductances", phs.Name)
	}
	tra, err := NewTransport(msh, phs.DiffusiveCond, set)
	if err != nil {
		return
	}
	o = &AdvectionDiffusion{Transport: tra, Phs: phs}
	if phs.Flow != nil {
		o.Flow = phs.Flow
		return
	}
	if o.Flow, err = ThroatFlow(msh, phs); err != nil {
		return nil, err
	}
	return
}

// ThroatFlow derives the signed throat flow rates (head→tail) from the pore pressure field
//
//	Q = g・(P[head] - P[tail])
func ThroatFlow(msh *network.Network, phs *phase.Phase) (flow []float64, err error) {
	if phs.Pressure == nil || phs.HydraulicCond == nil {
		return nil, chk.Err("throat flow: phase %q is missing a pressure field or hydraulic conductances; run a flow algorithm first", phs.Name)
	}
	if len(phs.Pressure) != msh.Np || len(phs.HydraulicCond) != msh.Nt {
		return nil, chk.Err("throat flow: phase %q arrays do not match network %q", phs.Name, msh.Name)
	}
	flow = make([]float64, msh.Nt)
	for t, c := range msh.Conns {
		flow[t] = phs.HydraulicCond[t] * (phs.Pressure[c[0]] - phs.Pressure[c[1]])
	}
	return
}

// Peclet returns the throat Peclet numbers |Q/D| of the last coefficients computation, for
// diagnostics of scheme accuracy. Degenerate throats yield zero.
func (o *AdvectionDiffusion) Peclet() (pe []float64) {
	pe = make([]float64, o.Msh.Nt)
	if o.Flow == nil {
		return
	}
	for t := 0; t < o.Msh.Nt; t++ {
		if o.Cond[t] > 0 {
			pe[t] = o.Flow[t] / o.Cond[t]
		}
	}
	return
}
