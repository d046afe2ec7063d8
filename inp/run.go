// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/edgargmartinez/OpenPNM/pnm"
)

// RunStage builds, configures and runs the algorithm of one stage and returns its Transport
// part for post-processing. Stokes stages store their pressure and flow fields on the phase so
// that subsequent advection-diffusion stages can use them.
func (o *Simulation) RunStage(idx int) (tra *pnm.Transport, err error) {
	if idx < 0 || idx >= len(o.Stages) {
		return nil, chk.Err("stage %d does not exist", idx)
	}
	stg := o.Stages[idx]

	// allocate algorithm
	var sf *pnm.StokesFlow
	switch stg.Algo {
	case "stokes":
		if sf, err = pnm.NewStokesFlow(o.Msh, o.Phs, stg.Settings); err != nil {
			return
		}
		tra = sf.Transport
	case "advdif":
		var ad *pnm.AdvectionDiffusion
		if ad, err = pnm.NewAdvectionDiffusion(o.Msh, o.Phs, stg.Settings); err != nil {
			return
		}
		tra = ad.Transport
	case "fickian":
		var fd *pnm.FickianDiffusion
		if fd, err = pnm.NewFickianDiffusion(o.Msh, o.Phs, stg.Settings); err != nil {
			return
		}
		tra = fd.Transport
	default:
		return nil, chk.Err("stage %d: algorithm %q is unknown", idx, stg.Algo)
	}

	// boundary conditions
	for _, bc := range stg.Bcs {
		pores, err := o.Msh.Pores(bc.Label)
		if err != nil {
			return nil, err
		}
		switch bc.Kind {
		case "value":
			err = tra.SetValueBC(pores, []float64{bc.Value}, bc.Mode)
		case "rate":
			err = tra.SetRateBC(pores, []float64{bc.Value}, bc.Mode)
		case "outflow":
			err = tra.SetOutflowBC(pores)
		}
		if err != nil {
			return nil, err
		}
	}

	// source terms
	for _, src := range stg.Sources {
		pores, err := o.Msh.Pores(src.Label)
		if err != nil {
			return nil, err
		}
		if err = tra.SetSource(pores, src.Model, src.Prms); err != nil {
			return nil, err
		}
	}

	// solve
	if err = tra.Run(); err != nil {
		return nil, err
	}
	if sf != nil {
		err = sf.UpdatePhase()
	}
	return
}
