// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import "github.com/cpmech/gosl/io"

// SolveFailure indicates that the linear solver backend reported a singular or ill-conditioned
// system. It is surfaced to the caller as-is and never retried automatically.
type SolveFailure struct {
	Backend string // name of the solver backend
	Reason  error  // underlying backend error
}

// Error returns the error message
func (e *SolveFailure) Error() string {
	return io.Sf("linear solver %q failed: %v", e.Backend, e.Reason)
}

// ConvergenceFailure indicates that the source-term iteration exceeded the maximum number of
// iterations without meeting the configured tolerance. Last holds the last iterate and Resid the
// last residual, for diagnostics; the algorithm's solution field is left untouched.
type ConvergenceFailure struct {
	Nit   int       // number of iterations performed
	Resid float64   // last residual max|Δx|
	Last  []float64 // last (unconverged) iterate
}

// Error returns the error message
func (e *ConvergenceFailure) Error() string {
	return io.Sf("source iteration did not converge after %d iterations. residual=%g", e.Nit, e.Resid)
}
