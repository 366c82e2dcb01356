// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cavity

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/gocfd/gocavity/inp"
	"github.com/gocfd/gocavity/msh"
	"github.com/gocfd/gocavity/ppe"
)

// Main holds all data for a lid-driven-cavity simulation
type Main struct {
	Sim     *inp.Simulation    // simulation data
	Grid    *msh.Grid          // structured grid
	Dom     *Domain            // solution fields
	Source  ppe.SourceComputer // source-term strategy (injected at construction)
	Psolver ppe.Solver         // pressure-solve strategy (injected at construction)
	Summary *Summary           // per-step diagnostics
	ShowMsg bool               // show messages
}

// NewMain returns a new Main structure with the strategies named in the
// simulation data already allocated and injected. The initial condition is
// an explicit value object; pass inp.NewZeroIC to start from rest.
func NewMain(sim *inp.Simulation, ic *inp.InitialCondition, verbose bool) (o *Main, err error) {

	// grid
	g, err := msh.NewGrid(sim.Grid.Nx, sim.Grid.Ny, sim.Grid.Dx)
	if err != nil {
		return
	}

	// initial condition must match the grid before any computation
	if err = ic.Check(g); err != nil {
		return
	}

	// strategies
	src, err := ppe.NewSourceComputer(sim.Solver.Source, g)
	if err != nil {
		return
	}
	opt := &ppe.Options{MaxIt: sim.Solver.MaxIt, CheckEvery: sim.Solver.CheckEvery}
	psolver, err := ppe.NewSolver(sim.Solver.Type, g, opt)
	if err != nil {
		return
	}

	o = &Main{
		Sim:     sim,
		Grid:    g,
		Dom:     NewDomain(g, ic),
		Source:  src,
		Psolver: psolver,
		Summary: new(Summary),
		ShowMsg: verbose,
	}
	return
}

// Run advances the simulation over all outer time steps. Each step freezes
// the current velocity snapshot into the source term, solves the pressure
// Poisson equation starting from the previous pressure field (warm start)
// and then advances the velocities with the converged pressure. A step
// whose inner solve hits the sweep cap still proceeds with the best-effort
// field; the outcome is recorded in the summary either way.
func (o *Main) Run() (err error) {

	cputime := time.Now()
	dt := o.Sim.Time.Dt
	rho := o.Sim.Fluid.Rho
	nu := o.Sim.Fluid.Nu

	for n := 0; n < o.Sim.Time.Nsteps; n++ {

		// source term from the frozen velocity snapshot
		if err = o.Source.Compute(o.Dom.B, o.Dom.U, o.Dom.V, rho, dt); err != nil {
			return
		}

		// inner pressure solve, warm-started from the previous field
		res, serr := o.Psolver.Solve(o.Dom.P, o.Dom.B, o.Sim.Solver.L2Target)
		if serr != nil {
			return serr
		}
		msh.FieldCopy(o.Dom.P, res.P)
		o.Summary.Append(n, res)

		// momentum update with the new pressure
		o.Dom.StepVelocity(dt, rho, nu)

		if o.ShowMsg {
			io.Pf("step %4d: %4d sweeps, diff = %13.6e (%v)\n", n, res.Iterations, res.Diff, res.State)
		}
	}

	if o.ShowMsg {
		io.Pf("total cpu time = %v\n", time.Now().Sub(cputime))
	}
	return
}
