// Copyright 2018 The Gopnm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pnm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs01. setting and overwriting conditions")

	bcs := NewBcSet(5)

	// one value for many pores
	if err := bcs.SetValue([]int{0, 1}, []float64{2.0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	kind, val := bcs.Kind(1)
	chk.IntAssert(kind, bcValue)
	chk.Scalar(tst, "val @ 1", 1e-17, val, 2.0)
	chk.IntAssert(bcs.NumValues(), 2)

	// one value per pore
	if err := bcs.SetRate([]int{2, 3}, []float64{0.1, 0.2}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	_, val = bcs.Kind(3)
	chk.Scalar(tst, "rate @ 3", 1e-17, val, 0.2)

	// mismatched lengths
	if err := bcs.SetRate([]int{2, 3}, []float64{1, 2, 3}, "overwrite"); err == nil {
		tst.Errorf("test failed: SetRate should have rejected 3 values for 2 pores\n")
		return
	}

	// add accumulates on the same kind
	if err := bcs.SetRate([]int{3}, []float64{0.3}, "add"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	kind, val = bcs.Kind(3)
	chk.IntAssert(kind, bcRate)
	chk.Scalar(tst, "rate @ 3 after add", 1e-17, val, 0.5)

	// add across kinds is rejected
	if err := bcs.SetRate([]int{0}, []float64{0.3}, "add"); err == nil {
		tst.Errorf("test failed: SetRate with mode \"add\" should have been rejected on a value pore\n")
		return
	}

	// overwrite replaces the kind
	if err := bcs.SetValue([]int{3}, []float64{7.0}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	kind, val = bcs.Kind(3)
	chk.IntAssert(kind, bcValue)
	chk.Scalar(tst, "val @ 3", 1e-17, val, 7.0)

	// clear
	if err := bcs.Clear([]int{0, 1, 3}); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(bcs.NumValues(), 0)
	kind, _ = bcs.Kind(0)
	chk.IntAssert(kind, bcNone)
}

func Test_bcs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs02. invalid input")

	bcs := NewBcSet(3)
	if err := bcs.SetValue([]int{}, []float64{1}, "overwrite"); err == nil {
		tst.Errorf("test failed: SetValue should have rejected an empty pore set\n")
		return
	}
	if err := bcs.SetValue([]int{3}, []float64{1}, "overwrite"); err == nil {
		tst.Errorf("test failed: SetValue should have rejected pore 3\n")
		return
	}
	if err := bcs.SetValue([]int{-1}, []float64{1}, "overwrite"); err == nil {
		tst.Errorf("test failed: SetValue should have rejected pore -1\n")
		return
	}
	if err := bcs.SetValue([]int{0}, []float64{1}, "merge"); err == nil {
		tst.Errorf("test failed: SetValue should have rejected mode \"merge\"\n")
		return
	}
	if err := bcs.Clear([]int{9}); err == nil {
		tst.Errorf("test failed: Clear should have rejected pore 9\n")
		return
	}
	if err := bcs.SetOutflow([]int{1}, "overwrite"); err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	kind, _ := bcs.Kind(1)
	chk.IntAssert(kind, bcOutflow)
}
