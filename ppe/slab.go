// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"github.com/cpmech/gosl/la"

	"github.com/gocfd/gocavity/msh"
)

// SlabSource implements the source-term computation row-by-row with vector
// operations on whole interior slabs. It produces the same values as
// LoopedSource; it exists so alternate formulations can be benchmarked
// against each other through the same interface.
type SlabSource struct {
	g *msh.Grid

	// scratchpad: centered differences on one interior row
	du  la.Vector // u[j][i+1] - u[j][i-1]
	dv  la.Vector // v[j+1][i] - v[j-1][i]
	ddu la.Vector // u[j+1][i] - u[j-1][i]
	ddv la.Vector // v[j][i+1] - v[j][i-1]
}

// register formulation
func init() {
	srcAllocators["slab"] = func(g *msh.Grid) SourceComputer {
		n := g.Nx - 2
		return &SlabSource{
			g:   g,
			du:  la.NewVector(n),
			dv:  la.NewVector(n),
			ddu: la.NewVector(n),
			ddv: la.NewVector(n),
		}
	}
}

// Compute fills the interior of b; see LoopedSource.Compute for the formula
func (o *SlabSource) Compute(b, u, v [][]float64, rho, dt float64) (err error) {
	if err = o.g.CheckField("b", b); err != nil {
		return
	}
	if err = o.g.CheckField("u", u); err != nil {
		return
	}
	if err = o.g.CheckField("v", v); err != nil {
		return
	}
	nx := o.g.Nx
	dx := o.g.Dx
	cf := rho * dx / 16.0
	for j := 1; j < o.g.Ny-1; j++ {

		// difference slabs over the interior columns 1..nx-2
		la.VecAdd(o.du, 1, la.Vector(u[j][2:]), -1, la.Vector(u[j][:nx-2]))
		la.VecAdd(o.dv, 1, la.Vector(v[j+1][1:nx-1]), -1, la.Vector(v[j-1][1:nx-1]))
		la.VecAdd(o.ddu, 1, la.Vector(u[j+1][1:nx-1]), -1, la.Vector(u[j-1][1:nx-1]))
		la.VecAdd(o.ddv, 1, la.Vector(v[j][2:]), -1, la.Vector(v[j][:nx-2]))

		// combine slabs into b
		row := b[j]
		for k := 0; k < nx-2; k++ {
			du, dv, ddu, ddv := o.du[k], o.dv[k], o.ddu[k], o.ddv[k]
			row[k+1] = cf * ((2.0/dt)*(du+dv) - (2.0/dx)*ddu*ddv - du*du/dx - dv*dv/dx)
		}
	}
	return
}
