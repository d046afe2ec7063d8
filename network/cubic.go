// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// NewCubic generates a simple cubic lattice network with nx*ny*nz pores and throats connecting
// each pore to its +x, +y and +z neighbours. Pore ids increase x-fastest:
//
//	id = iz*nx*ny + iy*nx + ix
//
// Face labels are set on the six boundary planes:
//
//	"left"  x=0     "right" x=nx-1
//	"front" y=0     "back"  y=ny-1
//	"bottom" z=0    "top"   z=nz-1
//
// Pore diameters are drawn from a uniform distribution seeded with the given seed, so that a
// given (shape,seed) pair always produces the same network. Throat geometry is derived from the
// neighbouring pore diameters.
func NewCubic(name string, nx, ny, nz int, spacing float64, seed int) (o *Network, err error) {

	// check
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("cubic network: shape [%d,%d,%d] is invalid; all sides must be ≥ 1", nx, ny, nz)
	}
	if spacing <= 0 {
		return nil, chk.Err("cubic network: spacing must be positive. %g is invalid", spacing)
	}

	// counts
	np := nx * ny * nz
	nt := (nx-1)*ny*nz + nx*(ny-1)*nz + nx*ny*(nz-1)
	o = New(name, np, nt)

	// connectivity and coordinates. throats are generated in pore-id order: +x, then +y, then +z
	o.Coords = make([][]float64, np)
	it := 0
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				i := iz*nx*ny + iy*nx + ix
				o.Coords[i] = []float64{float64(ix) * spacing, float64(iy) * spacing, float64(iz) * spacing}
				if ix < nx-1 {
					o.Conns[it] = [2]int{i, i + 1}
					it++
				}
				if iy < ny-1 {
					o.Conns[it] = [2]int{i, i + nx}
					it++
				}
				if iz < nz-1 {
					o.Conns[it] = [2]int{i, i + nx*ny}
					it++
				}
			}
		}
	}

	// pore geometry
	rnd.Init(seed)
	o.PoreDiam = make([]float64, np)
	o.PoreVol = make([]float64, np)
	for i := 0; i < np; i++ {
		d := rnd.Float64(0.3*spacing, 0.7*spacing)
		o.PoreDiam[i] = d
		o.PoreVol[i] = math.Pi * d * d * d / 6.0
	}

	// throat geometry
	o.ThroatDiam = make([]float64, nt)
	o.ThroatLen = make([]float64, nt)
	for t, c := range o.Conns {
		dh, dt := o.PoreDiam[c[0]], o.PoreDiam[c[1]]
		o.ThroatDiam[t] = 0.5 * math.Min(dh, dt)
		L := spacing - (dh+dt)/2.0
		if L < 0.05*spacing {
			L = 0.05 * spacing
		}
		o.ThroatLen[t] = L
	}

	// face labels
	var left, right, front, back, bottom, top []int
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				i := iz*nx*ny + iy*nx + ix
				if ix == 0 {
					left = append(left, i)
				}
				if ix == nx-1 {
					right = append(right, i)
				}
				if iy == 0 {
					front = append(front, i)
				}
				if iy == ny-1 {
					back = append(back, i)
				}
				if iz == 0 {
					bottom = append(bottom, i)
				}
				if iz == nz-1 {
					top = append(top, i)
				}
			}
		}
	}
	for label, pores := range map[string][]int{
		"left": left, "right": right, "front": front, "back": back, "bottom": bottom, "top": top,
	} {
		if err = o.SetLabel(label, pores); err != nil {
			return nil, err
		}
	}
	return o, o.Check()
}
