// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

// ApplyBoundaries enforces the pressure boundary conditions of the cavity
// problem, in place. Three walls carry a zero-gradient (Neumann) condition
// and the lid carries a fixed zero (Dirichlet) condition:
//
//   left    p[:][0]    = p[:][1]
//   right   p[:][nx-1] = p[:][nx-2]
//   bottom  p[0][:]    = p[1][:]
//   top     p[ny-1][:] = 0
//
// Only edge rows/columns are touched; interior values are never modified.
// The conditions are applied in the order above, so the corners of the
// bottom and top rows take precedence over the side columns.
func ApplyBoundaries(p [][]float64) {
	ny := len(p)
	nx := len(p[0])
	for j := 0; j < ny; j++ {
		p[j][0] = p[j][1]
		p[j][nx-1] = p[j][nx-2]
	}
	copy(p[0], p[1])
	for i := 0; i < nx; i++ {
		p[ny-1][i] = 0
	}
}
