// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cavity implements the lid-driven-cavity simulation: the outer
// momentum/time-stepping driver built around the ppe core
package cavity

import (
	"github.com/gocfd/gocavity/inp"
	"github.com/gocfd/gocavity/msh"
)

// Domain holds the solution fields of the cavity problem. The velocity
// fields are owned and updated by the driver; the pressure field is handed
// to the pressure solver once per step and persists across steps as the
// warm start; the source field is frozen during each inner solve.
type Domain struct {
	Grid *msh.Grid

	// solution fields, shape (ny, nx), indexed [j][i]
	U [][]float64 // x-velocity
	V [][]float64 // y-velocity
	P [][]float64 // pressure
	B [][]float64 // Poisson source term

	// velocity snapshots for the explicit momentum update
	un [][]float64
	vn [][]float64
}

// NewDomain allocates a domain and copies the initial condition into it.
// The initial condition must have been checked against the grid already.
func NewDomain(g *msh.Grid, ic *inp.InitialCondition) (o *Domain) {
	o = &Domain{
		Grid: g,
		U:    g.NewField(),
		V:    g.NewField(),
		P:    g.NewField(),
		B:    g.NewField(),
		un:   g.NewField(),
		vn:   g.NewField(),
	}
	msh.FieldCopy(o.U, ic.U)
	msh.FieldCopy(o.V, ic.V)
	msh.FieldCopy(o.P, ic.P)
	msh.FieldCopy(o.B, ic.B)
	return
}

// StepVelocity advances the velocity field by one explicit time step using
// the current pressure field: upwind convection, centered pressure
// gradient and centered viscous diffusion. The pre-step velocities are
// snapshot first so every update reads the old iterate only.
func (o *Domain) StepVelocity(dt, rho, nu float64) {
	g := o.Grid
	dx := g.Dx
	msh.FieldCopy(o.un, o.U)
	msh.FieldCopy(o.vn, o.V)
	un, vn, p := o.un, o.vn, o.P
	cp := dt / (2.0 * rho * dx)
	cd := nu * dt / (dx * dx)
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			o.U[j][i] = un[j][i] -
				un[j][i]*dt/dx*(un[j][i]-un[j][i-1]) -
				vn[j][i]*dt/dx*(un[j][i]-un[j-1][i]) -
				cp*(p[j][i+1]-p[j][i-1]) +
				cd*(un[j][i+1]-2*un[j][i]+un[j][i-1]+un[j+1][i]-2*un[j][i]+un[j-1][i])
			o.V[j][i] = vn[j][i] -
				un[j][i]*dt/dx*(vn[j][i]-vn[j][i-1]) -
				vn[j][i]*dt/dx*(vn[j][i]-vn[j-1][i]) -
				cp*(p[j+1][i]-p[j-1][i]) +
				cd*(vn[j][i+1]-2*vn[j][i]+vn[j][i-1]+vn[j+1][i]-2*vn[j][i]+vn[j-1][i])
		}
	}
	o.applyLidBCs()
}

// applyLidBCs enforces no-slip walls and the moving lid: u = 1 along the
// top row, u = v = 0 on every other edge
func (o *Domain) applyLidBCs() {
	g := o.Grid
	for i := 0; i < g.Nx; i++ {
		o.U[0][i] = 0
		o.U[g.Ny-1][i] = 1
		o.V[0][i] = 0
		o.V[g.Ny-1][i] = 0
	}
	for j := 0; j < g.Ny; j++ {
		o.U[j][0] = 0
		o.U[j][g.Nx-1] = 0
		o.V[j][0] = 0
		o.V[j][g.Nx-1] = 0
	}
}
