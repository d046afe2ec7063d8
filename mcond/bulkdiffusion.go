// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcond

import (
	"math"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"

	"github.com/edgargmartinez/OpenPNM/network"
	"github.com/edgargmartinez/OpenPNM/phase"
)

// BulkDiffusion implements the diffusive conductance of a throat filled with bulk phase
//
//	g = β Dm A / L      with      A = π d² / 4
//
// where Dm is the bulk diffusion coefficient of the transported species in the phase.
type BulkDiffusion struct {
	Beta float64 // shape factor
}

// add model to database
func init() {
	allocators["bulk-diffusion"] = func() Model { return new(BulkDiffusion) }
}

// Init initialises this structure
func (o *BulkDiffusion) Init(prms fun.Params) (err error) {
	o.Beta = 1.0
	for _, p := range prms {
		switch p.N {
		case "beta":
			o.Beta = p.V
		default:
			return chk.Err("bulk-diffusion model: parameter %q is unknown", p.N)
		}
	}
	if o.Beta <= 0 {
		return chk.Err("bulk-diffusion model: beta must be positive. %g is invalid", o.Beta)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o *BulkDiffusion) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "beta", V: 1.0},
		}
	}
	return fun.Params{
		&fun.P{N: "beta", V: o.Beta},
	}
}

// Conductance computes the diffusive conductance of all throats
func (o *BulkDiffusion) Conductance(msh *network.Network, phs *phase.Phase) (g []float64, err error) {
	if phs.Diffusivity <= 0 {
		return nil, chk.Err("bulk-diffusion model: phase %q has invalid diffusivity %g", phs.Name, phs.Diffusivity)
	}
	if len(msh.ThroatDiam) != msh.Nt || len(msh.ThroatLen) != msh.Nt {
		return nil, chk.Err("bulk-diffusion model: network %q is missing throat geometry", msh.Name)
	}
	g = make([]float64, msh.Nt)
	for t := 0; t < msh.Nt; t++ {
		d, L := msh.ThroatDiam[t], msh.ThroatLen[t]
		if d <= 0 || L <= 0 {
			continue // disconnected throat
		}
		g[t] = o.Beta * phs.Diffusivity * math.Pi * d * d / 4.0 / L
	}
	return
}
