// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcond implements models for throat conductances in pore networks
package mcond

import (
	"github.com/cpmech/gosl/chk"
	fun "github.com/cpmech/gosl/fun/dbf"

	"github.com/edgargmartinez/OpenPNM/network"
	"github.com/edgargmartinez/OpenPNM/phase"
)

// Model defines throat conductance models. Conductance returns one non-negative, finite value
// per throat; degenerate throat geometry (zero diameter or length) yields zero conductance and
// is handled downstream as a disconnected throat, never as an error.
type Model interface {
	Init(prms fun.Params) error                                           // Init initialises this structure
	GetPrms(example bool) fun.Params                                      // gets (an example of) parameters
	Conductance(msh *network.Network, phs *phase.Phase) ([]float64, error) // per-throat conductances
}

// New returns a new conductance model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in mcond database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
