// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/edgargmartinez/OpenPNM/phase"
)

func Test_stokes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stokes01. linear pressure drop along a chain")

	msh := chainNet(4)
	if err := msh.SetLabel("inlet", []int{0}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err := msh.SetLabel("outlet", []int{3}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	g := 2e-12
	phs := &phase.Phase{Name: "oil", Viscosity: 1e-3}
	phs.HydraulicCond = []float64{g, g, g}

	sf, err := NewStokesFlow(msh, phs, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if sf.Set.Quantity != "pore.pressure" {
		tst.Errorf("test failed: default quantity %q is wrong\n", sf.Set.Quantity)
		return
	}
	if err = sf.SetValueBC([]int{0}, []float64{90}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = sf.SetValueBC([]int{3}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = sf.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Vector(tst, "P", 1e-12, sf.X, []float64{90, 60, 30, 0})

	// flow field on the phase
	if err = sf.UpdatePhase(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Vector(tst, "Q", 1e-24, sf.Phs.Flow, []float64{g * 30, g * 30, g * 30})

	// permeability of a series of three equal conductances:
	//   Q = (g/3) ΔP  and  K = Q μ L / (A ΔP)
	A, L := 1e-8, 3e-4
	K, err := sf.Permeability("inlet", "outlet", A, L)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "K", 1e-28, K, (g/3.0)*1e-3*L/A)
}

func Test_stokes02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stokes02. invalid configurations")

	msh := chainNet(3)
	phs := &phase.Phase{Name: "oil", Viscosity: 1e-3}

	// missing conductances
	if _, err := NewStokesFlow(msh, phs, nil); err == nil {
		tst.Errorf("test failed: NewStokesFlow should have failed without hydraulic conductances\n")
		return
	}

	phs.HydraulicCond = []float64{1e-12, 1e-12}
	sf, err := NewStokesFlow(msh, phs, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// UpdatePhase before Run
	if err = sf.UpdatePhase(); err == nil {
		tst.Errorf("test failed: UpdatePhase should have failed before Run\n")
		return
	}

	// ThroatFlow without a pressure field
	if _, err = ThroatFlow(msh, phs); err == nil {
		tst.Errorf("test failed: ThroatFlow should have failed without a pressure field\n")
		return
	}

	// Permeability needs fixed values on both faces
	if err = msh.SetLabel("inlet", []int{0}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = msh.SetLabel("outlet", []int{2}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = sf.SetValueBC([]int{0, 2}, []float64{50, 50}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = sf.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err = sf.Permeability("inlet", "outlet", 1e-8, 1e-4); err == nil {
		tst.Errorf("test failed: Permeability should have failed with a zero pressure drop\n")
		return
	}
	if _, err = sf.Permeability("inlet", "outlet", -1, 1e-4); err == nil {
		tst.Errorf("test failed: Permeability should have rejected a negative area\n")
		return
	}
}
