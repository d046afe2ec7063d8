// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/edgargmartinez/OpenPNM/mcond"
	"github.com/edgargmartinez/OpenPNM/network"
	"github.com/edgargmartinez/OpenPNM/phase"
	"github.com/edgargmartinez/OpenPNM/pnm"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gopnm
}

// NetData holds cubic network generation data
type NetData struct {
	Shape   []int   `json:"shape"`   // [nx,ny,nz] number of pores along each direction
	Spacing float64 `json:"spacing"` // lattice spacing
	Seed    int     `json:"seed"`    // seed for pore size generation
}

// PhaseData holds working fluid data
type PhaseData struct {
	Name string     `json:"name"` // "water", "air" or "custom"
	Prms fun.Params `json:"prms"` // properties overriding the canned values
}

// CondData holds conductance model selections
type CondData struct {
	Hydraulic string     `json:"hydraulic"` // hydraulic conductance model; e.g. "hagen-poiseuille"
	HydPrms   fun.Params `json:"hydprms"`   // parameters of hydraulic model
	Diffusive string     `json:"diffusive"` // diffusive conductance model; e.g. "bulk-diffusion"
	DifPrms   fun.Params `json:"difprms"`   // parameters of diffusive model
}

// BcData holds one boundary condition specification
type BcData struct {
	Label string  `json:"label"` // network label of the pores; e.g. "left"
	Kind  string  `json:"kind"`  // "value", "rate" or "outflow"
	Value float64 `json:"value"` // prescribed value or rate
	Mode  string  `json:"mode"`  // "overwrite" (default) or "add"
}

// SrcData holds one source term specification
type SrcData struct {
	Label string     `json:"label"` // network label of the pores
	Model string     `json:"model"` // source model name; e.g. "linear"
	Prms  fun.Params `json:"prms"`  // model parameters
}

// Stage holds one solution stage
type Stage struct {
	Desc     string        `json:"desc"`     // description of stage
	Algo     string        `json:"algo"`     // "stokes", "advdif" or "fickian"
	Settings *pnm.Settings `json:"settings"` // solver settings
	Bcs      []*BcData     `json:"bcs"`      // boundary conditions
	Sources  []*SrcData    `json:"sources"`  // source terms
}

// Simulation holds all simulation input data
type Simulation struct {

	// input data
	Data    Data      `json:"data"`    // global data
	Network NetData   `json:"network"` // network generation
	Phase   PhaseData `json:"phase"`   // working fluid
	Cond    CondData  `json:"cond"`    // conductance models
	Stages  []*Stage  `json:"stages"`  // solution stages

	// derived data
	Msh *network.Network `json:"-"` // the generated network
	Phs *phase.Phase     `json:"-"` // the working fluid state
}

// ReadSim reads all simulation data from a .sim JSON file, builds the network and the phase,
// and computes the conductances. Unknown keys anywhere in the file are rejected.
func ReadSim(simfilepath string) (o *Simulation) {

	// read file
	o = new(Simulation)
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode, rejecting unknown keys
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err = dec.Decode(o); err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// validate
	if err = o.validate(); err != nil {
		chk.Panic("ReadSim: simulation file %q is invalid:\n%v", simfilepath, err)
	}

	// build network and phase
	if err = o.build(); err != nil {
		chk.Panic("ReadSim: cannot build simulation from %q:\n%v", simfilepath, err)
	}
	return
}

// validate checks names and shapes before any building takes place
func (o *Simulation) validate() (err error) {
	if len(o.Network.Shape) != 3 {
		return chk.Err("network shape must have 3 components. %v is invalid", o.Network.Shape)
	}
	switch o.Phase.Name {
	case "water", "air", "custom":
	default:
		return chk.Err("phase name %q is unknown; must be \"water\", \"air\" or \"custom\"", o.Phase.Name)
	}
	if len(o.Stages) < 1 {
		return chk.Err("at least one stage is required")
	}
	for i, stg := range o.Stages {
		switch stg.Algo {
		case "stokes", "advdif", "fickian":
		default:
			return chk.Err("stage %d: algorithm %q is unknown; must be \"stokes\", \"advdif\" or \"fickian\"", i, stg.Algo)
		}
		if stg.Settings == nil {
			stg.Settings = pnm.DefaultSettings()
		}
		if err = stg.Settings.Validate(); err != nil {
			return chk.Err("stage %d: %v", i, err)
		}
		for _, bc := range stg.Bcs {
			switch bc.Kind {
			case "value", "rate", "outflow":
			default:
				return chk.Err("stage %d: boundary condition kind %q is unknown", i, bc.Kind)
			}
			if bc.Mode == "" {
				bc.Mode = "overwrite"
			}
		}
	}
	return
}

// build generates the network, the phase and the conductances
func (o *Simulation) build() (err error) {

	// network
	s := o.Network.Shape
	spacing := o.Network.Spacing
	if spacing == 0 {
		spacing = 1e-4
	}
	o.Msh, err = network.NewCubic("sim", s[0], s[1], s[2], spacing, o.Network.Seed)
	if err != nil {
		return
	}

	// phase
	switch o.Phase.Name {
	case "water":
		o.Phs = phase.NewWater()
	case "air":
		o.Phs = phase.NewAir()
	case "custom":
		o.Phs = &phase.Phase{Name: "custom"}
	}
	if len(o.Phase.Prms) > 0 {
		if err = o.Phs.Init(o.Phase.Prms); err != nil {
			return
		}
	}

	// conductances
	if o.Cond.Hydraulic == "" {
		o.Cond.Hydraulic = "hagen-poiseuille"
	}
	if o.Cond.Diffusive == "" {
		o.Cond.Diffusive = "bulk-diffusion"
	}
	hmodel, err := mcond.New(o.Cond.Hydraulic)
	if err != nil {
		return
	}
	if err = hmodel.Init(o.Cond.HydPrms); err != nil {
		return
	}
	if o.Phs.HydraulicCond, err = hmodel.Conductance(o.Msh, o.Phs); err != nil {
		return
	}
	dmodel, err := mcond.New(o.Cond.Diffusive)
	if err != nil {
		return
	}
	if err = dmodel.Init(o.Cond.DifPrms); err != nil {
		return
	}
	o.Phs.DiffusiveCond, err = dmodel.Conductance(o.Msh, o.Phs)
	return
}
