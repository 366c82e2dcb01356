// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gocfd/gocavity/msh"
)

// State is the terminal state of a pressure solve
type State int

const (
	// Converged indicates the relative L2 diff met the target
	Converged State = iota

	// IterationLimitReached indicates the sweep cap was exhausted before the
	// target was met. The returned field is still usable (best effort); the
	// caller decides whether this is fatal for the outer simulation.
	IterationLimitReached
)

func (o State) String() string {
	if o == Converged {
		return "converged"
	}
	return "iteration limit reached"
}

// Results holds the outcome of one pressure solve
type Results struct {
	P          [][]float64 // final pressure field. Owned by the solver; copy it out before the next Solve call
	Iterations int         // number of sweeps performed; always a multiple of CheckEvery, or MaxIt
	State      State       // terminal state
	Diff       float64     // relative L2 diff at the last check
	History    []float64   // relative L2 diff at each check, in order
}

// Options holds solver parameters
type Options struct {
	MaxIt      int // sweep cap acting as a deterministic timeout [default = 500]
	CheckEvery int // convergence-check interval in sweeps [default = 10]
}

// SetDefault sets default values
func (o *Options) SetDefault() {
	o.MaxIt = 500
	o.CheckEvery = 10
}

// Solver solves the pressure Poisson equation by relaxation on the grid it
// was allocated for, starting from the warm-start field p0 and using the
// frozen source term b. p0 and b are read-only during the solve; results
// live in buffers owned by the solver.
type Solver interface {
	Solve(p0, b [][]float64, l2target float64) (res *Results, err error)
}

// allocators holds all available pressure solvers
var allocators = make(map[string]func(g *msh.Grid, opt *Options) Solver)

// NewSolver returns a pressure solver by name; e.g. "jacobi" or "jacobipar".
// A nil opt selects the defaults.
func NewSolver(kind string, g *msh.Grid, opt *Options) (o Solver, err error) {
	alloc, ok := allocators[kind]
	if !ok {
		err = chk.Err("cannot find pressure solver named %q", kind)
		return
	}
	if opt == nil {
		opt = new(Options)
		opt.SetDefault()
	}
	if opt.MaxIt < 1 || opt.CheckEvery < 1 {
		err = chk.Err("solver options must be positive; maxit=%d checkevery=%d are invalid", opt.MaxIt, opt.CheckEvery)
		return
	}
	o = alloc(g, opt)
	return
}
