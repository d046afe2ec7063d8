// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// LinSolver wraps a linear solver backend. The assembled matrix is handed read-only to Init;
// Solve may be called repeatedly with different right-hand sides. Backends report singular or
// ill-conditioned systems through a *SolveFailure.
type LinSolver interface {
	Init(kb *la.Triplet) error // factorises the assembled matrix
	Solve(x, b []float64) error // solves A・x = b
	Free()                      // frees backend resources
}

// NewLinSolver returns a new linear solver backend
func NewLinSolver(name string) (ls LinSolver, err error) {
	allocator, ok := linsolvers[name]
	if !ok {
		return nil, chk.Err("linear solver %q is not available in pnm database", name)
	}
	return allocator(name), nil
}

// linsolvers holds all available backends
var linsolvers = map[string]func(name string) LinSolver{
	"dense":   func(name string) LinSolver { return &denseSolver{name: name} },
	"umfpack": func(name string) LinSolver { return &spSolver{name: name} },
}

// denseSolver factorises the system with a dense LU decomposition (gonum). It is pure Go and
// the default backend; adequate for the small and moderate networks of this library.
type denseSolver struct {
	name string
	n    int
	lu   mat.LU
}

// Init converts the triplet to dense form and factorises it
func (o *denseSolver) Init(kb *la.Triplet) (err error) {
	d := kb.ToMatrix(nil).ToDense()
	o.n = len(d)
	a := mat.NewDense(o.n, o.n, nil)
	for i := 0; i < o.n; i++ {
		for j := 0; j < o.n; j++ {
			a.Set(i, j, d[i][j])
		}
	}
	o.lu.Factorize(a)
	return
}

// Solve solves A・x = b
func (o *denseSolver) Solve(x, b []float64) (err error) {
	bv := mat.NewVecDense(o.n, b)
	xv := mat.NewVecDense(o.n, nil)
	if err := o.lu.SolveVecTo(xv, false, bv); err != nil {
		return &SolveFailure{Backend: o.name, Reason: err}
	}
	for i := 0; i < o.n; i++ {
		x[i] = xv.AtVec(i)
	}
	return nil
}

// Free frees backend resources
func (o *denseSolver) Free() {}

// spSolver wraps the sparse direct solvers of gosl/la (UMFPACK)
type spSolver struct {
	name string
	lis  la.LinSol
}

// Init initialises and factorises the sparse matrix
func (o *spSolver) Init(kb *la.Triplet) (err error) {
	o.lis = la.GetSolver(o.name)
	if err = o.lis.InitR(kb, false, false, false); err != nil {
		return &SolveFailure{Backend: o.name, Reason: err}
	}
	if err = o.lis.Fact(); err != nil {
		return &SolveFailure{Backend: o.name, Reason: err}
	}
	return
}

// Solve solves A・x = b
func (o *spSolver) Solve(x, b []float64) (err error) {
	if err = o.lis.SolveR(x, b, false); err != nil {
		return &SolveFailure{Backend: o.name, Reason: err}
	}
	return
}

// Free frees backend resources
func (o *spSolver) Free() {
	if o.lis != nil {
		o.lis.Free()
	}
}
