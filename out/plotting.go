// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/edgargmartinez/OpenPNM/network"
)

// PlotProfile plots a layer-averaged pore field against position along one axis
//  args -- plot arguments; e.g. "'b*-'". if args == "", a default style is used
//  if dirout != "", the figure is saved as dirout/fnkey.eps
func PlotProfile(msh *network.Network, field []float64, axis int, label, args, dirout, fnkey string) (err error) {
	pos, avg, err := Profile(msh, field, axis, 0)
	if err != nil {
		return
	}
	if args == "" {
		args = "'b*-'"
	}
	plt.Plot(pos, avg, io.Sf("%s, label='%s', clip_on=0", args, label))
	axname := []string{"x", "y", "z"}[axis]
	plt.Gll(io.Sf("$%s$", axname), io.Sf("$%s$", label), "")
	if dirout != "" {
		plt.SaveD(dirout, fnkey+".eps")
	}
	return
}
