// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pnm implements steady-state transport solvers over pore networks
package pnm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/edgargmartinez/OpenPNM/network"
)

// Transport solves one steady-state balance equation over a pore network: per-throat directed
// transmissibilities (from a discretisation scheme), pore-level sources and boundary conditions
// are assembled into a sparse linear system and handed to a linear solver backend. The network
// and the conductance/flow arrays are consumed read-only; the solution field X is the only
// output and is allocated fresh on each successful solve.
//
// Construction, assembly and solve are sequential batch steps; a Transport must not be shared
// between goroutines during Run.
type Transport struct {

	// input data (read-only)
	Msh  *network.Network // the network topology
	Cond []float64        // [Nt] diffusive conductance of throats
	Flow []float64        // [Nt] signed flow rate (head→tail) of throats; nil for pure diffusion
	Set  *Settings        // solver settings
	Bcs  *BcSet           // boundary conditions

	// results
	X   []float64 // [Np] solved quantity per pore; nil until Run succeeds
	Nit int       // number of source iterations of the last Run

	// internal data
	scheme     SchemeFunc           // selected discretisation scheme
	srcs       map[int]SrcModel     // source models per pore
	relaxedSrc map[int][2]float64   // relaxed source linearisation state during iterations
	ah, at     []float64            // [Nt] directed transmissibilities of the last assembly
	inert      []bool               // [Nt] degenerate throats (zero conductance and flow)
}

// NewTransport returns a new transport algorithm. cond holds one diffusive conductance per
// throat; settings are validated here, before any assembly.
func NewTransport(msh *network.Network, cond []float64, set *Settings) (o *Transport, err error) {
	if set == nil {
		set = DefaultSettings()
	}
	if err = set.Validate(); err != nil {
		return
	}
	if err = msh.Check(); err != nil {
		return
	}
	o = new(Transport)
	o.Msh = msh
	o.Cond = cond
	o.Set = set
	o.Bcs = NewBcSet(msh.Np)
	o.srcs = make(map[int]SrcModel)
	if o.scheme, err = GetScheme(set.Scheme); err != nil {
		return nil, err
	}
	return
}

// SetValueBC prescribes fixed values (Dirichlet) at the given pores
func (o *Transport) SetValueBC(pores []int, values []float64, mode string) error {
	return o.Bcs.SetValue(pores, values, mode)
}

// SetRateBC prescribes fixed net rates at the given pores
func (o *Transport) SetRateBC(pores []int, values []float64, mode string) error {
	return o.Bcs.SetRate(pores, values, mode)
}

// SetOutflowBC prescribes advective outflow conditions at the given pores. Requires a flow field.
func (o *Transport) SetOutflowBC(pores []int) error {
	if o.Flow == nil {
		return chk.Err("transport %q: outflow conditions require a flow field", o.Set.Quantity)
	}
	return o.Bcs.SetOutflow(pores, "overwrite")
}

// SetSource attaches a source model to the given pores. Each pore holds at most one source
// model (the last one set wins); attaching to a pore holding a fixed-value condition is
// reported at assembly time.
func (o *Transport) SetSource(pores []int, name string, prms fun.Params) (err error) {
	for _, n := range pores {
		if n < 0 || n >= o.Msh.Np {
			return chk.Err("transport %q: source pore %d is outside [0,%d)", o.Set.Quantity, n, o.Msh.Np)
		}
		model, err := NewSource(name)
		if err != nil {
			return err
		}
		if err = model.Init(prms); err != nil {
			return err
		}
		o.srcs[n] = model
	}
	return
}

// Run assembles and solves the balance equations. Without sources one linear solve is
// performed; with sources the linearised system is re-assembled and re-solved until the change
// of the solution drops below atol + rtol・max|x| or NmaxIt is exceeded, in which case a
// *ConvergenceFailure carrying the last iterate is returned and X is left untouched.
func (o *Transport) Run() (err error) {

	// directed coefficients
	if err = o.coefficients(); err != nil {
		return
	}

	// linear case: single assembly and solve
	np := o.Msh.Np
	if len(o.srcs) == 0 {
		kb, b, err := o.assemble(nil)
		if err != nil {
			return err
		}
		x := make([]float64, np)
		if err = o.solveOnce(kb, b, x); err != nil {
			return err
		}
		o.X = x
		o.Nit = 1
		return nil
	}

	// successive substitution with relaxation
	o.relaxedSrc = make(map[int][2]float64)
	for n, src := range o.srcs {
		s1, s2 := src.Linearize(0)
		o.relaxedSrc[n] = [2]float64{s1, s2}
	}
	x := make([]float64, np)
	xnew := make([]float64, np)
	ω := o.Set.RelaxQty
	var resid float64
	for it := 1; it <= o.Set.NmaxIt; it++ {
		kb, b, err := o.assemble(x)
		if err != nil {
			return err
		}
		if err = o.solveOnce(kb, b, xnew); err != nil {
			return err
		}
		resid = 0
		xmax := 0.0
		for i := 0; i < np; i++ {
			xnew[i] = ω*xnew[i] + (1.0-ω)*x[i]
			resid = math.Max(resid, math.Abs(xnew[i]-x[i]))
			xmax = math.Max(xmax, math.Abs(xnew[i]))
		}
		if o.Set.Verbose {
			io.Pf("it=%3d resid=%13.7e\n", it, resid)
		}
		copy(x, xnew)
		if resid <= o.Set.Atol+o.Set.Rtol*xmax {
			o.X = x
			o.Nit = it
			return nil
		}
	}
	last := make([]float64, np)
	copy(last, x)
	return &ConvergenceFailure{Nit: o.Set.NmaxIt, Resid: resid, Last: last}
}

// solveOnce factorises and solves one assembled system
func (o *Transport) solveOnce(kb *la.Triplet, b, x []float64) (err error) {
	lis, err := NewLinSolver(o.Set.LinSol)
	if err != nil {
		return
	}
	defer lis.Free()
	if err = lis.Init(kb); err != nil {
		return
	}
	return lis.Solve(x, b)
}

// Rate computes the net transport of quantity leaving the given set of pores through throats
// connecting the set to its complement, using the directed coefficients and solution of the
// last Run. mode is:
//
//	"group"  -- one value: the set is taken as a whole (throats inside the set cancel out)
//	"single" -- one value per pore, each pore taken individually
//
// For a solve with only fixed-value boundaries and no sources, the sum of Rate over the inlet
// pores equals the negative of the sum over the outlet pores (conservation).
func (o *Transport) Rate(pores []int, mode string) (rates []float64, err error) {
	if o.X == nil {
		return nil, chk.Err("transport %q: Rate requires a successful Run first", o.Set.Quantity)
	}
	for _, n := range pores {
		if n < 0 || n >= o.Msh.Np {
			return nil, chk.Err("transport %q: pore %d is outside [0,%d)", o.Set.Quantity, n, o.Msh.Np)
		}
	}
	switch mode {
	case "group":
		inset := make([]bool, o.Msh.Np)
		for _, n := range pores {
			inset[n] = true
		}
		sum := 0.0
		for t := 0; t < o.Msh.Nt; t++ {
			if o.inert[t] {
				continue
			}
			h, l := o.Msh.Conns[t][0], o.Msh.Conns[t][1]
			if inset[h] == inset[l] {
				continue
			}
			J := o.ah[t]*o.X[h] - o.at[t]*o.X[l] // flux head→tail
			if inset[h] {
				sum += J
			} else {
				sum -= J
			}
		}
		return []float64{sum}, nil
	case "single":
		rates = make([]float64, len(pores))
		for i, n := range pores {
			for t := 0; t < o.Msh.Nt; t++ {
				if o.inert[t] {
					continue
				}
				h, l := o.Msh.Conns[t][0], o.Msh.Conns[t][1]
				if h != n && l != n {
					continue
				}
				J := o.ah[t]*o.X[h] - o.at[t]*o.X[l]
				if h == n {
					rates[i] += J
				} else {
					rates[i] -= J
				}
			}
		}
		return rates, nil
	}
	return nil, chk.Err("transport %q: rate mode %q is unknown; must be \"group\" or \"single\"", o.Set.Quantity, mode)
}
