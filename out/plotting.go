// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"

	"github.com/gocfd/gocavity/msh"
)

// PlotPressure draws a filled contour of the pressure field and saves it to
// dirout/fname. It shells out to matplotlib via gosl/plt, so it is meant
// for interactive inspection, not for automated runs.
func PlotPressure(dirout, fname string, g *msh.Grid, p [][]float64) {
	X, Y := meshgrid(g)
	plt.Reset(true, nil)
	plt.ContourF(X, Y, p, nil)
	plt.Gll("x", "y", nil)
	plt.Save(dirout, fname)
}

// meshgrid expands the nodal coordinates into the (ny, nx) coordinate
// matrices expected by the contour routines
func meshgrid(g *msh.Grid) (X, Y [][]float64) {
	X = g.NewField()
	Y = g.NewField()
	xx := g.X()
	yy := g.Y()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			X[j][i] = xx[i]
			Y[j][i] = yy[j]
		}
	}
	return
}
