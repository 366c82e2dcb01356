// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"github.com/gocfd/gocavity/msh"
)

// Jacobi implements the pressure solver with serial Jacobi relaxation.
// Two field buffers are owned by the solver and swap logical roles each
// sweep: every interior update reads only the previous iterate, never
// values already written in the current sweep. Updating a single shared
// field in place would turn the method into Gauss-Seidel, which is a
// different algorithm.
type Jacobi struct {
	g   *msh.Grid
	opt *Options
	pa  [][]float64
	pb  [][]float64
}

// register solver
func init() {
	allocators["jacobi"] = func(g *msh.Grid, opt *Options) Solver {
		return &Jacobi{g: g, opt: opt, pa: g.NewField(), pb: g.NewField()}
	}
}

// Solve performs Jacobi relaxation starting from the warm-start field p0
func (o *Jacobi) Solve(p0, b [][]float64, l2target float64) (res *Results, err error) {
	return relax(o.g, o.opt, p0, b, l2target, o.pa, o.pb, sweepSerial)
}

// sweepSerial updates all interior nodes of next from prev with the 5-point
// averaging stencil minus the local source term
func sweepSerial(g *msh.Grid, next, prev, b [][]float64) {
	for j := 1; j < g.Ny-1; j++ {
		for i := 1; i < g.Nx-1; i++ {
			next[j][i] = 0.25*(prev[j][i+1]+prev[j][i-1]+prev[j+1][i]+prev[j-1][i]) - b[j][i]
		}
	}
}

// relax runs the shared relaxation loop: sweep, enforce boundaries, check
// convergence every opt.CheckEvery sweeps, stop on convergence or at the
// sweep cap. The loop can only terminate on a check boundary, so the sweep
// count is always a multiple of CheckEvery, or MaxIt.
func relax(g *msh.Grid, opt *Options, p0, b [][]float64, l2target float64,
	pa, pb [][]float64, sweep func(g *msh.Grid, next, prev, b [][]float64)) (res *Results, err error) {

	// fatal before any computation
	if err = g.CheckField("p0", p0); err != nil {
		return
	}
	if err = g.CheckField("b", b); err != nil {
		return
	}

	// warm start
	msh.FieldCopy(pa, p0)
	prev, next := pa, pb
	cur := prev

	// sentinel guaranteeing at least one full check interval runs
	diff := l2target + 1
	var history []float64

	it := 0
	for it < opt.MaxIt {
		sweep(g, next, prev, b)
		ApplyBoundaries(next)
		it++
		cur = next
		if it%opt.CheckEvery == 0 {
			diff = RelativeDiff(next, prev)
			history = append(history, diff)
			if diff <= l2target {
				break
			}
		}
		prev, next = next, prev
	}

	state := IterationLimitReached
	if diff <= l2target {
		state = Converged
	}
	res = &Results{P: cur, Iterations: it, State: state, Diff: diff, History: history}
	return
}
