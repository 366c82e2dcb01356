// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. grid geometry and field allocation")

	g, err := NewGrid(41, 41, 0.05)
	if err != nil {
		tst.Errorf("NewGrid failed:\n%v", err)
		return
	}
	chk.IntAssert(g.Nx, 41)
	chk.IntAssert(g.Ny, 41)
	chk.Float64(tst, "Lx", 1e-15, g.Lx(), 2.0)
	chk.Float64(tst, "Ly", 1e-15, g.Ly(), 2.0)

	x := g.X()
	chk.IntAssert(len(x), 41)
	chk.Float64(tst, "x[0]", 1e-17, x[0], 0)
	chk.Float64(tst, "x[1]", 1e-15, x[1], 0.05)
	chk.Float64(tst, "x[40]", 1e-15, x[40], 2.0)

	f := g.NewField()
	chk.IntAssert(len(f), 41)
	chk.IntAssert(len(f[0]), 41)
	if !g.SameShape(f) {
		tst.Errorf("fresh field must match grid shape")
	}
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. invalid grids are rejected")

	if _, err := NewGrid(2, 41, 0.05); err == nil {
		tst.Errorf("nx=2 must be rejected")
	}
	if _, err := NewGrid(41, 2, 0.05); err == nil {
		tst.Errorf("ny=2 must be rejected")
	}
	if _, err := NewGrid(41, 41, 0); err == nil {
		tst.Errorf("dx=0 must be rejected")
	}

	g, err := NewGrid(5, 4, 1)
	if err != nil {
		tst.Errorf("NewGrid failed:\n%v", err)
		return
	}
	bad := make([][]float64, 4)
	for j := range bad {
		bad[j] = make([]float64, 6)
	}
	if g.SameShape(bad) {
		tst.Errorf("shape mismatch must be detected")
	}
	if err := g.CheckField("bad", bad); err == nil {
		tst.Errorf("CheckField must fail on mismatched field")
	}
}

func Test_field01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("field01. field copy and fill")

	g, _ := NewGrid(4, 3, 1)
	a := g.NewField()
	FieldFill(a, 1.5)
	b := g.NewField()
	FieldCopy(b, a)
	chk.Deep2(tst, "b", 1e-17, b, [][]float64{
		{1.5, 1.5, 1.5, 1.5},
		{1.5, 1.5, 1.5, 1.5},
		{1.5, 1.5, 1.5, 1.5},
	})

	// copy must be deep
	a[1][1] = 7
	chk.Float64(tst, "b[1][1]", 1e-17, b[1][1], 1.5)
}
