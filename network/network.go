// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package network implements the pore-throat topology of a pore network
package network

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Network holds the topology and geometrical data of a pore network. Pores are identified by
// integer indices in [0,Np) and throats by indices in [0,Nt). Each throat stores an ordered
// (head,tail) pair of pore indices. Connectivity is immutable once Check is called; algorithms
// hold a read-only reference to this structure.
type Network struct {

	// basic data
	Name  string   // network name
	Np    int      // number of pores
	Nt    int      // number of throats
	Conns [][2]int // [Nt] (head,tail) pore pair of each throat

	// coordinates
	Coords [][]float64 // [Np][3] pore centre coordinates

	// geometrical data
	PoreDiam   []float64 // [Np] pore diameter
	PoreVol    []float64 // [Np] pore volume
	ThroatDiam []float64 // [Nt] throat diameter
	ThroatLen  []float64 // [Nt] throat length

	// labels
	labels map[string][]int // label => sorted pore indices
}

// New returns a new (empty) network with pre-allocated connectivity
func New(name string, np, nt int) (o *Network) {
	o = new(Network)
	o.Name = name
	o.Np = np
	o.Nt = nt
	o.Conns = make([][2]int, nt)
	o.labels = make(map[string][]int)
	return
}

// SetLabel attaches a named label to a set of pores, replacing any previous definition.
// Pore indices are validated and stored sorted.
func (o *Network) SetLabel(label string, pores []int) (err error) {
	if label == "" {
		return chk.Err("network %q: label cannot be empty", o.Name)
	}
	p := make([]int, len(pores))
	copy(p, pores)
	sort.Ints(p)
	for _, n := range p {
		if n < 0 || n >= o.Np {
			return chk.Err("network %q: label %q refers to pore %d outside [0,%d)", o.Name, label, n, o.Np)
		}
	}
	o.labels[label] = p
	return
}

// Pores returns the (sorted) pore indices carrying the given label
func (o *Network) Pores(label string) (pores []int, err error) {
	pores, ok := o.labels[label]
	if !ok {
		return nil, chk.Err("network %q: cannot find label %q", o.Name, label)
	}
	return
}

// HasLabel tells whether a label is defined
func (o *Network) HasLabel(label string) bool {
	_, ok := o.labels[label]
	return ok
}

// Labels returns all defined label names, sorted
func (o *Network) Labels() (res []string) {
	for l := range o.labels {
		res = append(res, l)
	}
	sort.Strings(res)
	return
}

// Check verifies the consistency of the connectivity; i.e. every throat references two distinct
// pores within [0,Np). A failure here is a configuration error of the topology provider and
// cannot be recovered by the transport algorithms.
func (o *Network) Check() (err error) {
	if o.Np < 1 {
		return chk.Err("network %q must have at least one pore. Np=%d is invalid", o.Name, o.Np)
	}
	if len(o.Conns) != o.Nt {
		return chk.Err("network %q: len(Conns)=%d differs from Nt=%d", o.Name, len(o.Conns), o.Nt)
	}
	for t, c := range o.Conns {
		h, l := c[0], c[1]
		if h < 0 || h >= o.Np || l < 0 || l >= o.Np {
			return chk.Err("network %q: throat %d connects (%d,%d) outside [0,%d)", o.Name, t, h, l, o.Np)
		}
		if h == l {
			return chk.Err("network %q: throat %d connects pore %d to itself", o.Name, t, h)
		}
	}
	return
}
