// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gocfd/gocavity/msh"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. pressure contour")

	g, err := msh.NewGrid(5, 4, 0.25)
	if err != nil {
		tst.Errorf("NewGrid failed:\n%v", err)
		return
	}

	// coordinate matrices: row j holds y[j] repeated, column i holds x[i]
	X, Y := meshgrid(g)
	chk.Deep2(tst, "X", 1e-15, X, [][]float64{
		{0, 0.25, 0.5, 0.75, 1.0},
		{0, 0.25, 0.5, 0.75, 1.0},
		{0, 0.25, 0.5, 0.75, 1.0},
		{0, 0.25, 0.5, 0.75, 1.0},
	})
	chk.Deep2(tst, "Y", 1e-15, Y, [][]float64{
		{0, 0, 0, 0, 0},
		{0.25, 0.25, 0.25, 0.25, 0.25},
		{0.5, 0.5, 0.5, 0.5, 0.5},
		{0.75, 0.75, 0.75, 0.75, 0.75},
	})

	// drawing shells out to matplotlib
	if chk.Verbose {
		p := g.NewField()
		for j := 0; j < g.Ny; j++ {
			for i := 0; i < g.Nx; i++ {
				p[j][i] = math.Sin(X[j][i]) * math.Cos(Y[j][i])
			}
		}
		PlotPressure("/tmp/gocavity", "plot01_p", g, p)
	}
}
