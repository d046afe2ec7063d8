// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of pore-network solutions
package out

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/edgargmartinez/OpenPNM/network"
)

// Profile averages a pore field over layers of equal coordinate along one axis. Pores sharing
// the same coordinate (within tol) belong to the same layer. Returns the sorted layer positions
// and the layer averages; useful to compare a solved field against 1D analytical profiles.
func Profile(msh *network.Network, field []float64, axis int, tol float64) (pos, avg []float64, err error) {
	if axis < 0 || axis > 2 {
		return nil, nil, chk.Err("profile: axis must be 0, 1 or 2. axis=%d is invalid", axis)
	}
	if len(field) != msh.Np {
		return nil, nil, chk.Err("profile: len(field)=%d differs from number of pores=%d", len(field), msh.Np)
	}
	if tol <= 0 {
		tol = 1e-10
	}

	// sort pores by coordinate
	idx := make([]int, msh.Np)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return msh.Coords[idx[a]][axis] < msh.Coords[idx[b]][axis]
	})

	// accumulate layers
	var sum float64
	var cnt int
	start := msh.Coords[idx[0]][axis]
	for _, n := range idx {
		x := msh.Coords[n][axis]
		if x-start > tol {
			pos = append(pos, start)
			avg = append(avg, sum/float64(cnt))
			start, sum, cnt = x, 0, 0
		}
		sum += field[n]
		cnt++
	}
	pos = append(pos, start)
	avg = append(avg, sum/float64(cnt))
	return
}

// PrintField prints a pore field as a table with coordinates
func PrintField(msh *network.Network, key string, field []float64) {
	io.Pf("%6s%14s%14s%14s%16s\n", "pore", "x", "y", "z", key)
	for n := 0; n < msh.Np; n++ {
		c := msh.Coords[n]
		io.Pf("%6d%14.6e%14.6e%14.6e%16.8e\n", n, c[0], c[1], c[2], field[n])
	}
}

// PrintLabelled prints the values of a pore field at labelled pores only
func PrintLabelled(msh *network.Network, label, key string, field []float64) (err error) {
	pores, err := msh.Pores(label)
	if err != nil {
		return
	}
	io.Pf("%q pores (%d):\n", label, len(pores))
	for _, n := range pores {
		io.Pf("  %6d  %s = %16.8e\n", n, key, field[n])
	}
	return
}
