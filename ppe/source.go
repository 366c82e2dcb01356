// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ppe implements the pressure-Poisson-equation core of the cavity
// simulation: the source-term computation, the boundary policy, the
// convergence monitor and the relaxation solvers.
package ppe

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gocfd/gocavity/msh"
)

// SourceComputer computes the right-hand side b of the pressure Poisson
// equation from a frozen velocity snapshot. Implementations are pure: the
// output depends on the inputs only, and only interior entries of b are
// written (boundary entries of b are unused by the solvers).
//
// b must be recomputed once per outer time step, before any relaxation
// sweep, because it belongs to a fixed velocity snapshot.
type SourceComputer interface {
	Compute(b, u, v [][]float64, rho, dt float64) error
}

// srcAllocators holds all available source-term formulations
var srcAllocators = make(map[string]func(g *msh.Grid) SourceComputer)

// NewSourceComputer returns a source-term computer by name; e.g. "looped" or "slab"
func NewSourceComputer(kind string, g *msh.Grid) (o SourceComputer, err error) {
	alloc, ok := srcAllocators[kind]
	if !ok {
		err = chk.Err("cannot find source-term formulation named %q", kind)
		return
	}
	o = alloc(g)
	return
}

// ComputeSource allocates and fills the Poisson right-hand side for the
// given velocity snapshot, using the looped formulation.
func ComputeSource(g *msh.Grid, u, v [][]float64, rho, dt float64) (b [][]float64, err error) {
	src, err := NewSourceComputer("looped", g)
	if err != nil {
		return
	}
	b = g.NewField()
	err = src.Compute(b, u, v, rho, dt)
	return
}

// LoopedSource implements the source-term computation with explicit loops
// over interior nodes
type LoopedSource struct {
	g *msh.Grid
}

// register formulation
func init() {
	srcAllocators["looped"] = func(g *msh.Grid) SourceComputer {
		return &LoopedSource{g: g}
	}
}

// Compute fills the interior of b. For each interior node, with centered
// differences over the full two-cell stencil width:
//
//   b[j][i] = rho*dx/16 * ( (2/dt)*(du + dv) - (2/dx)*ddu*ddv - du²/dx - dv²/dx )
//
//   du  = u[j][i+1] - u[j][i-1]      dv  = v[j+1][i] - v[j-1][i]
//   ddu = u[j+1][i] - u[j-1][i]      ddv = v[j][i+1] - v[j][i-1]
func (o *LoopedSource) Compute(b, u, v [][]float64, rho, dt float64) (err error) {
	if err = o.checkShapes(b, u, v); err != nil {
		return
	}
	dx := o.g.Dx
	cf := rho * dx / 16.0
	for j := 1; j < o.g.Ny-1; j++ {
		for i := 1; i < o.g.Nx-1; i++ {
			du := u[j][i+1] - u[j][i-1]
			dv := v[j+1][i] - v[j-1][i]
			ddu := u[j+1][i] - u[j-1][i]
			ddv := v[j][i+1] - v[j][i-1]
			b[j][i] = cf * ((2.0/dt)*(du+dv) - (2.0/dx)*ddu*ddv - du*du/dx - dv*dv/dx)
		}
	}
	return
}

func (o *LoopedSource) checkShapes(b, u, v [][]float64) (err error) {
	if err = o.g.CheckField("b", b); err != nil {
		return
	}
	if err = o.g.CheckField("u", u); err != nil {
		return
	}
	return o.g.CheckField("v", v)
}
