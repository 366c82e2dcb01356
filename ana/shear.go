// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical (closed-form) fields to verify solvers
package ana

import (
	"math"

	"github.com/gocfd/gocavity/msh"
)

// ShearFlow defines a smooth horizontal velocity field varying along x only:
//
//   u(x) = sin(π x / 2)      v = 0
//
// It is divergence-free in y and bounded, which makes it a convenient
// analytic input for exercising the Poisson source term and the pressure
// solve end to end.
type ShearFlow struct{}

// CalcU returns u at coordinate x
func (o ShearFlow) CalcU(x float64) float64 {
	return math.Sin(math.Pi * x / 2.0)
}

// Fields evaluates the velocity components at every node of grid g
func (o ShearFlow) Fields(g *msh.Grid) (u, v [][]float64) {
	u = g.NewField()
	v = g.NewField()
	xx := g.X()
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			u[j][i] = o.CalcU(xx[i])
		}
	}
	return
}
