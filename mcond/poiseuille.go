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

// HagenPoiseuille implements the hydraulic conductance of a cylindrical throat
//
//	g = β π d⁴ / (128 μ L)
//
// where d and L are the throat diameter and length, μ is the phase viscosity and β is a
// dimensionless shape factor (1 for a perfect cylinder).
type HagenPoiseuille struct {
	Beta float64 // shape factor
}

// add model to database
func init() {
	allocators["hagen-poiseuille"] = func() Model { return new(HagenPoiseuille) }
}

// Init initialises this structure
func (o *HagenPoiseuille) Init(prms fun.Params) (err error) {
	o.Beta = 1.0
	for _, p := range prms {
		switch p.N {
		case "beta":
			o.Beta = p.V
		default:
			return chk.Err("hagen-poiseuille model: parameter %q is unknown", p.N)
		}
	}
	if o.Beta <= 0 {
		return chk.Err("hagen-poiseuille model: beta must be positive. %g is invalid", o.Beta)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o *HagenPoiseuille) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "beta", V: 1.0},
		}
	}
	return fun.Params{
		&fun.P{N: "beta", V: o.Beta},
	}
}

// Conductance computes the hydraulic conductance of all throats
func (o *HagenPoiseuille) Conductance(msh *network.Network, phs *phase.Phase) (g []float64, err error) {
	if phs.Viscosity <= 0 {
		return nil, chk.Err("hagen-poiseuille model: phase %q has invalid viscosity %g", phs.Name, phs.Viscosity)
	}
	if len(msh.ThroatDiam) != msh.Nt || len(msh.ThroatLen) != msh.Nt {
		return nil, chk.Err("hagen-poiseuille model: network %q is missing throat geometry", msh.Name)
	}
	g = make([]float64, msh.Nt)
	for t := 0; t < msh.Nt; t++ {
		d, L := msh.ThroatDiam[t], msh.ThroatLen[t]
		if d <= 0 || L <= 0 {
			continue // disconnected throat
		}
		g[t] = o.Beta * math.Pi * d * d * d * d / (128.0 * phs.Viscosity * L)
	}
	return
}
