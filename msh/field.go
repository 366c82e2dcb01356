// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// FieldCopy copies src into dst. Both fields must have the same shape.
func FieldCopy(dst, src [][]float64) {
	for j := range src {
		copy(dst[j], src[j])
	}
}

// FieldFill sets every entry of f to val
func FieldFill(f [][]float64, val float64) {
	for j := range f {
		for i := range f[j] {
			f[j][i] = val
		}
	}
}
