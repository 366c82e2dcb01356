// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// RelativeDiff computes the relative L2 change between two successive
// pressure iterates, over the entire field (boundaries included):
//
//   diff = ‖pnew - pold‖₂ / ‖pold‖₂
//
// This measures iterate stagnation, not the residual of the PDE itself.
// When the denominator is exactly zero (an all-zero previous iterate) the
// ratio is defined as follows instead of letting a NaN escape:
//   zero change    ⇒ 0     (the iteration is stationary: converged)
//   nonzero change ⇒ +Inf  (can never meet a finite target)
func RelativeDiff(pnew, pold [][]float64) float64 {
	nx := len(pold[0])
	d := la.NewVector(nx)
	num := 0.0
	den := 0.0
	for j := range pold {
		rn := la.Vector(pnew[j])
		ro := la.Vector(pold[j])
		la.VecAdd(d, 1, rn, -1, ro)
		num += la.VecDot(d, d)
		den += la.VecDot(ro, ro)
	}
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Sqrt(num) / math.Sqrt(den)
}
