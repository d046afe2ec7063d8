// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/edgargmartinez/OpenPNM/network"
)

// chainNet returns a 1D chain of np pores connected by np-1 throats
func chainNet(np int) (msh *network.Network) {
	msh = network.New("chain", np, np-1)
	for t := 0; t < np-1; t++ {
		msh.Conns[t] = [2]int{t, t + 1}
	}
	return
}

func Test_transport01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport01. two pores, pure diffusion")

	msh := chainNet(2)
	tra, err := NewTransport(msh, []float64{1e-12}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{0}, []float64{100}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{1}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Vector(tst, "x", 1e-14, tra.X, []float64{100, 0})
	chk.IntAssert(tra.Nit, 1)

	// rate leaving pore 0 equals rate entering pore 1
	rates, err := tra.Rate([]int{0, 1}, "single")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Vector(tst, "single rates", 1e-24, rates, []float64{1e-10, -1e-10})
	rates, err = tra.Rate([]int{0}, "group")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "group rate", 1e-24, rates[0], 1e-10)
}

func Test_transport02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport02. advection-diffusion chain, all schemes")

	// 3-pore chain with D = 1 and Q = 1.5 (Pe = 1.5), ends held at 1 and 0.
	// middle values solved independently with each scheme
	correct := map[string]float64{
		"upwind":      0.714285714285714,
		"hybrid":      0.875000000000000,
		"powerlaw":    0.814147885640745,
		"exponential": 0.817574476193644,
	}
	for name, x1 := range correct {
		set := DefaultSettings()
		set.Scheme = name
		msh := chainNet(3)
		tra, err := NewTransport(msh, []float64{1, 1}, set)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		tra.Flow = []float64{1.5, 1.5}
		if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if err = tra.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if err = tra.Run(); err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Scalar(tst, io.Sf("%-12s x1", name), 1e-14, tra.X[1], x1)

		// inflow at the upstream end balances outflow at the downstream end
		rates, err := tra.Rate([]int{0}, "single")
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		rout, err := tra.Rate([]int{2}, "single")
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Scalar(tst, io.Sf("%-12s conservation", name), 1e-14, rates[0]+rout[0], 0)
		if name == "upwind" {
			chk.Scalar(tst, "upwind inflow rate", 1e-14, rates[0], 1.785714285714285)
		}
	}
}

func Test_transport03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport03. repeated runs give identical results")

	msh := chainNet(4)
	tra, err := NewTransport(msh, []float64{2, 1, 2}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	tra.Flow = []float64{0.5, 0.5, 0.5}
	if err = tra.SetValueBC([]int{0}, []float64{3}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{3}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	first := make([]float64, msh.Np)
	copy(first, tra.X)
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Vector(tst, "x (second run)", 1e-17, tra.X, first)
}

func Test_transport04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport04. source terms")

	// 3-pore chain, pure diffusion with D = 1, ends held at 1 and 0. the balance at the middle
	// pore reads 2 x1 - 1 = rate(x1)

	// linear source rate = -x/2 + 1/10 gives 2.5 x1 = 1.1
	msh := chainNet(3)
	tra, err := NewTransport(msh, []float64{1, 1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	prms := fun.Params{&fun.P{N: "a1", V: -0.5}, &fun.P{N: "a2", V: 0.1}}
	if err = tra.SetSource([]int{1}, "linear", prms); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "x1 linear source", 1e-12, tra.X[1], 0.44)
	io.Pforan("linear source converged in %d iterations\n", tra.Nit)

	// power-law source rate = -x² + 1/2 gives x1² + 2 x1 - 3/2 = 0
	msh = chainNet(3)
	tra, err = NewTransport(msh, []float64{1, 1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	prms = fun.Params{&fun.P{N: "a1", V: -1}, &fun.P{N: "a2", V: 2}, &fun.P{N: "a3", V: 0.5}}
	if err = tra.SetSource([]int{1}, "power-law", prms); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	xref := math.Sqrt(2.5) - 1.0
	chk.Scalar(tst, "x1 power-law source", 1e-7, tra.X[1], xref)
	io.Pforan("power-law source converged in %d iterations\n", tra.Nit)

	// under-relaxation reaches the same solution
	set := DefaultSettings()
	set.RelaxSrc = 0.7
	set.RelaxQty = 0.8
	msh = chainNet(3)
	tra, err = NewTransport(msh, []float64{1, 1}, set)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetSource([]int{1}, "power-law", prms); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "x1 relaxed", 1e-6, tra.X[1], xref)
}

func Test_transport05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport05. convergence failure carries the last iterate")

	set := DefaultSettings()
	set.NmaxIt = 1
	msh := chainNet(3)
	tra, err := NewTransport(msh, []float64{1, 1}, set)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	prms := fun.Params{&fun.P{N: "a1", V: -1}, &fun.P{N: "a2", V: 2}, &fun.P{N: "a3", V: 0.5}}
	if err = tra.SetSource([]int{1}, "power-law", prms); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = tra.Run()
	if err == nil {
		tst.Errorf("test failed: Run should have failed with NmaxIt=1\n")
		return
	}
	cf, ok := err.(*ConvergenceFailure)
	if !ok {
		tst.Errorf("test failed: error should be a *ConvergenceFailure. got %T\n", err)
		return
	}
	chk.IntAssert(cf.Nit, 1)
	chk.IntAssert(len(cf.Last), 3)
	if tra.X != nil {
		tst.Errorf("test failed: X should stay nil after a failed Run\n")
		return
	}
}

func Test_transport06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport06. configuration errors")

	// unknown scheme
	set := DefaultSettings()
	set.Scheme = "inexistent"
	if _, err := NewTransport(chainNet(3), []float64{1, 1}, set); err == nil {
		tst.Errorf("test failed: NewTransport should have rejected the scheme\n")
		return
	}

	// wrong conductance length
	tra, err := NewTransport(chainNet(3), []float64{1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err == nil {
		tst.Errorf("test failed: Run should have rejected the conductance array\n")
		return
	}

	// negative conductance
	tra, err = NewTransport(chainNet(3), []float64{1, -1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err == nil {
		tst.Errorf("test failed: Run should have rejected the negative conductance\n")
		return
	}

	// outflow needs a flow field
	tra, err = NewTransport(chainNet(3), []float64{1, 1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetOutflowBC([]int{2}); err == nil {
		tst.Errorf("test failed: SetOutflowBC should have failed without a flow field\n")
		return
	}

	// fixed value and source on the same pore
	if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetSource([]int{0}, "linear", nil); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err == nil {
		tst.Errorf("test failed: Run should have rejected the value+source conflict\n")
		return
	}

	// unknown source model and bad source pore
	tra, err = NewTransport(chainNet(3), []float64{1, 1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetSource([]int{1}, "inexistent", nil); err == nil {
		tst.Errorf("test failed: SetSource should have rejected the model name\n")
		return
	}
	if err = tra.SetSource([]int{5}, "linear", nil); err == nil {
		tst.Errorf("test failed: SetSource should have rejected pore 5\n")
		return
	}

	// Rate before Run and with a bad mode
	if _, err = tra.Rate([]int{0}, "group"); err == nil {
		tst.Errorf("test failed: Rate should have failed before Run\n")
		return
	}
	if err = tra.SetValueBC([]int{0, 2}, []float64{1, 0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err = tra.Rate([]int{0}, "total"); err == nil {
		tst.Errorf("test failed: Rate should have rejected mode \"total\"\n")
		return
	}
	if _, err = tra.Rate([]int{9}, "group"); err == nil {
		tst.Errorf("test failed: Rate should have rejected pore 9\n")
		return
	}
}

func Test_transport07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transport07. degenerate throats carry no transport")

	// reference: plain 3-pore chain with D = 1 and Q = 1.5
	ref, err := NewTransport(chainNet(3), []float64{1, 1}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ref.Flow = []float64{1.5, 1.5}
	if err = ref.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = ref.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = ref.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// same chain plus a redundant throat (0,2) with zero conductance and zero flow
	msh := network.New("chain+dead", 3, 3)
	msh.Conns[0] = [2]int{0, 1}
	msh.Conns[1] = [2]int{1, 2}
	msh.Conns[2] = [2]int{0, 2}
	tra, err := NewTransport(msh, []float64{1, 1, 0}, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	tra.Flow = []float64{1.5, 1.5, 0}
	if err = tra.SetValueBC([]int{0}, []float64{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.SetValueBC([]int{2}, []float64{0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if err = tra.Run(); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// the dead throat changes nothing
	chk.Vector(tst, "x", 1e-15, tra.X, ref.X)
	for _, pores := range [][]int{{0}, {2}} {
		a, err := tra.Rate(pores, "group")
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		b, err := ref.Rate(pores, "group")
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.Scalar(tst, io.Sf("rate %v", pores), 1e-15, a[0], b[0])
	}
	rates, err := tra.Rate([]int{0, 1, 2}, "single")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "rate @ 1", 1e-14, rates[1], 0) // interior pore balances exactly
}
