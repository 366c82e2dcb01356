// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"

	"github.com/gocfd/gocavity/msh"
)

// checkBoundaryPolicy asserts the pressure boundary policy exactly
func checkBoundaryPolicy(tst *testing.T, p [][]float64) {
	ny := len(p)
	nx := len(p[0])
	for j := 0; j < ny; j++ {
		if p[j][0] != p[j][1] {
			tst.Errorf("left edge gradient must be zero at row %d", j)
		}
		if p[j][nx-1] != p[j][nx-2] {
			tst.Errorf("right edge gradient must be zero at row %d", j)
		}
	}
	for i := 0; i < nx; i++ {
		if p[0][i] != p[1][i] {
			tst.Errorf("bottom edge gradient must be zero at col %d", i)
		}
		if p[ny-1][i] != 0 {
			tst.Errorf("top edge must be fixed at zero at col %d", i)
		}
	}
}

func Test_bcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs01. boundary policy on a random field")

	g, _ := msh.NewGrid(7, 6, 0.1)
	p := g.NewField()
	rnd.Init(1234)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			p[j][i] = rnd.Float64(-10, 10)
		}
	}

	// snapshot of the interior
	interior := g.NewField()
	msh.FieldCopy(interior, p)

	ApplyBoundaries(p)
	checkBoundaryPolicy(tst, p)

	// interior untouched
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			if p[j][i] != interior[j][i] {
				tst.Errorf("interior node (%d,%d) must not change", j, i)
			}
		}
	}

	// idempotent
	again := g.NewField()
	msh.FieldCopy(again, p)
	ApplyBoundaries(again)
	chk.Deep2(tst, "p", 1e-17, again, p)
}
