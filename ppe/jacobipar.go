// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"github.com/gocfd/gocavity/msh"
)

// JacobiPar implements the pressure solver with row-parallel Jacobi
// relaxation. Within one sweep every interior cell reads only the previous
// iterate, so rows may be updated concurrently; parallelRows provides the
// full barrier required before boundary enforcement and the convergence
// check. Per-cell arithmetic is identical to the serial solver, hence so
// are the iterates.
type JacobiPar struct {
	g   *msh.Grid
	opt *Options
	pa  [][]float64
	pb  [][]float64
}

// register solver
func init() {
	allocators["jacobipar"] = func(g *msh.Grid, opt *Options) Solver {
		return &JacobiPar{g: g, opt: opt, pa: g.NewField(), pb: g.NewField()}
	}
}

// Solve performs row-parallel Jacobi relaxation starting from p0
func (o *JacobiPar) Solve(p0, b [][]float64, l2target float64) (res *Results, err error) {
	return relax(o.g, o.opt, p0, b, l2target, o.pa, o.pb, sweepParallel)
}

// sweepParallel updates all interior rows of next from prev, one goroutine
// chunk of rows at a time
func sweepParallel(g *msh.Grid, next, prev, b [][]float64) {
	parallelRows(1, g.Ny-1, func(j int) {
		rn := next[j]
		ru, rm, rd := prev[j+1], prev[j], prev[j-1]
		rb := b[j]
		for i := 1; i < g.Nx-1; i++ {
			rn[i] = 0.25*(rm[i+1]+rm[i-1]+ru[i]+rd[i]) - rb[i]
		}
	})
}
