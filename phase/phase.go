// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements the working fluid state attached to a pore network
package phase

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
)

// Phase holds the properties of the working fluid and the per-pore/per-throat arrays produced
// by flow and conductance computations. Fields are explicit and well-typed; lookup by string
// label is available through Get for the configuration/output boundary only.
type Phase struct {

	// scalar properties
	Name         string  // phase name; e.g. "water"
	Temp         float64 // temperature [K]
	Viscosity    float64 // dynamic viscosity [Pa·s]
	Diffusivity  float64 // bulk diffusion coefficient [m²/s]
	MolarDensity float64 // molar density [mol/m³]

	// arrays from previous computations
	Pressure      []float64 // [Np] pore pressure from a flow solve
	HydraulicCond []float64 // [Nt] hydraulic conductance of throats
	DiffusiveCond []float64 // [Nt] diffusive conductance of throats
	Flow          []float64 // [Nt] signed volumetric flow rate (head→tail) of throats
}

// Init initialises the scalar properties from a list of parameters
func (o *Phase) Init(prms fun.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "temp":
			o.Temp = p.V
		case "mu":
			o.Viscosity = p.V
		case "Dm":
			o.Diffusivity = p.V
		case "rhom":
			o.MolarDensity = p.V
		default:
			return chk.Err("phase %q: parameter %q is unknown", o.Name, p.N)
		}
	}
	if o.Viscosity <= 0 {
		return chk.Err("phase %q: viscosity must be positive. %g is invalid", o.Name, o.Viscosity)
	}
	return
}

// GetPrms returns the current scalar properties as a list of parameters
func (o *Phase) GetPrms() fun.Params {
	return fun.Params{
		&fun.P{N: "temp", V: o.Temp},
		&fun.P{N: "mu", V: o.Viscosity},
		&fun.P{N: "Dm", V: o.Diffusivity},
		&fun.P{N: "rhom", V: o.MolarDensity},
	}
}

// NewWater returns liquid water at 298 K
func NewWater() *Phase {
	return &Phase{
		Name:         "water",
		Temp:         298.0,
		Viscosity:    8.93e-4,  // [Pa·s]
		Diffusivity:  2.07e-9,  // [m²/s] dilute species in water
		MolarDensity: 55359.99, // [mol/m³]
	}
}

// NewAir returns dry air at 298 K
func NewAir() *Phase {
	return &Phase{
		Name:         "air",
		Temp:         298.0,
		Viscosity:    1.84e-5, // [Pa·s]
		Diffusivity:  2.06e-5, // [m²/s]
		MolarDensity: 40.895,  // [mol/m³]
	}
}

// Get returns a named array for output/configuration purposes. Recognised keys follow the
// "pore.xxx" / "throat.xxx" convention:
//
//	"pore.pressure", "throat.hydraulic_conductance", "throat.diffusive_conductance", "throat.flow"
func (o *Phase) Get(key string) (vals []float64, err error) {
	switch key {
	case "pore.pressure":
		vals = o.Pressure
	case "throat.hydraulic_conductance":
		vals = o.HydraulicCond
	case "throat.diffusive_conductance":
		vals = o.DiffusiveCond
	case "throat.flow":
		vals = o.Flow
	default:
		return nil, chk.Err("phase %q: key %q is unknown", o.Name, key)
	}
	if vals == nil {
		return nil, chk.Err("phase %q: %q has not been computed yet", o.Name, key)
	}
	return
}
