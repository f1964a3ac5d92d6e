// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// contract1D applies the (N+1)x(N+1) differentiation matrix D along one
// axis of a flattened tensor-ordered field f (row-major, last axis
// fastest -- matching reftab's tensor node ordering), without ever
// materializing the full (P x P x d) derivative operator: this is sum
// factorization, reducing the cost from O(N^2d) to O(d N^(d+1)).
func contract1D(f []float64, D [][]float64, axis, N, d int) []float64 {
	n1 := N + 1
	out := make([]float64, len(f))
	// stride of `axis` in the row-major flattening
	stride := 1
	for a := axis + 1; a < d; a++ {
		stride *= n1
	}
	outerStride := stride * n1
	numOuter := len(f) / outerStride
	for outer := 0; outer < numOuter; outer++ {
		base := outer * outerStride
		for inner := 0; inner < stride; inner++ {
			for i := 0; i < n1; i++ {
				var sum float64
				for m := 0; m < n1; m++ {
					sum += D[i][m] * f[base+m*stride+inner]
				}
				out[base+i*stride+inner] = sum
			}
		}
	}
	return out
}
