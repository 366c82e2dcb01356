// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the structured grid used by the cavity simulation
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the geometry of a uniform structured 2D grid. The grid is square
// in the sense that the spacing is the same along both axes (dy = dx). Fields
// living on the grid are indexed [row][col] == [j][i] with ny rows and nx
// columns. Grid values are never mutated after NewGrid.
type Grid struct {
	Nx int     // number of nodes along x
	Ny int     // number of nodes along y
	Dx float64 // uniform spacing (same along x and y)
}

// NewGrid returns a new grid. At least one interior row and column is
// required; thus nx and ny must be ≥ 3.
func NewGrid(nx, ny int, dx float64) (g *Grid, err error) {
	if nx < 3 || ny < 3 {
		err = chk.Err("grid must have at least 3 nodes along each axis (one interior row/column); nx=%d ny=%d are invalid", nx, ny)
		return
	}
	if dx <= 0 {
		err = chk.Err("grid spacing must be positive; dx=%g is invalid", dx)
		return
	}
	g = &Grid{Nx: nx, Ny: ny, Dx: dx}
	return
}

// Lx returns the domain length along x
func (o *Grid) Lx() float64 { return o.Dx * float64(o.Nx-1) }

// Ly returns the domain length along y
func (o *Grid) Ly() float64 { return o.Dx * float64(o.Ny-1) }

// X returns the nodal coordinates along x
func (o *Grid) X() []float64 { return utl.LinSpace(0, o.Lx(), o.Nx) }

// Y returns the nodal coordinates along y
func (o *Grid) Y() []float64 { return utl.LinSpace(0, o.Ly(), o.Ny) }

// NewField allocates a zeroed field with shape (ny, nx)
func (o *Grid) NewField() [][]float64 { return utl.Alloc(o.Ny, o.Nx) }

// SameShape tells whether field f has shape (ny, nx)
func (o *Grid) SameShape(f [][]float64) bool {
	if len(f) != o.Ny {
		return false
	}
	for j := 0; j < o.Ny; j++ {
		if len(f[j]) != o.Nx {
			return false
		}
	}
	return true
}

// CheckField returns an error if field f does not have shape (ny, nx).
// name is used in the error message only.
func (o *Grid) CheckField(name string, f [][]float64) (err error) {
	if !o.SameShape(f) {
		return chk.Err("field %q does not match grid shape (ny=%d, nx=%d)", name, o.Ny, o.Nx)
	}
	return
}
