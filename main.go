// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/edgargmartinez/OpenPNM/inp"
	"github.com/edgargmartinez/OpenPNM/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	profiles := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGopnm Version 1.0 -- Go Pore Network Modelling\n")
		io.Pf("Copyright 2018 The Gopnm Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"print field tables", "profiles", profiles,
		))
	}

	// read simulation file
	sim := inp.ReadSim(fnamepath)
	if verbose {
		io.Pf("network %q: %d pores, %d throats; phase %q\n", sim.Msh.Name, sim.Msh.Np, sim.Msh.Nt, sim.Phs.Name)
		if sim.Data.Desc != "" {
			io.Pf("%s\n", sim.Data.Desc)
		}
	}

	// run stages
	for i, stg := range sim.Stages {
		if verbose {
			io.Pf("\nstage %d: %s (%s)\n", i, stg.Desc, stg.Algo)
		}
		tra, err := sim.RunStage(i)
		if err != nil {
			chk.Panic("stage %d failed:\n%v", i, err)
		}
		if verbose {
			io.Pf("solved %q in %d iteration(s)\n", tra.Set.Quantity, tra.Nit)
			for _, bc := range stg.Bcs {
				pores, _ := sim.Msh.Pores(bc.Label)
				rates, err := tra.Rate(pores, "group")
				if err != nil {
					continue
				}
				io.Pf("  net rate through %q = %16.8e\n", bc.Label, rates[0])
			}
		}
		if profiles {
			out.PrintField(sim.Msh, tra.Set.Quantity, tra.X)
		}
	}
	io.Pf("\nfile = %s\n", fnkey)
}
