// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// ComputeGradient returns grad[axis][p] = d(f)/d(x_axis) at every node p,
// for a nodal field f given in tensor order.
//
// Tensor shapes (quad/hex): the three-index contraction
// (grad_ref f)_k = D_k (x) I (x) I ... . f is assembled dimension by
// dimension via sum factorization (never materializing the full
// (P x P x d) operator), then rotated into physical space by J^-1 at
// each node (J varies per node and is recomputed on demand).
//
// Simplices (tri/tet): the dense reference derivative tables are applied,
// then rotated by the single affine J^-1 cached at construction.
func (e *Element) ComputeGradient(f []float64) [][]float64 {
	d := e.Ndim
	gradRef := make([][]float64, d)
	if e.Kind.IsTensor() {
		for axis := 0; axis < d; axis++ {
			gradRef[axis] = contract1D(f, e.tensorDiff, axis, e.N, d)
		}
	} else {
		for axis := 0; axis < d; axis++ {
			gradRef[axis] = make([]float64, e.P)
		}
		for p := 0; p < e.P; p++ {
			for axis := 0; axis < d; axis++ {
				var sum float64
				row := e.simplexDeriv[p][axis]
				for i := 0; i < e.P; i++ {
					sum += row[i] * f[i]
				}
				gradRef[axis][p] = sum
			}
		}
	}

	gradPhys := make([][]float64, d)
	for axis := 0; axis < d; axis++ {
		gradPhys[axis] = make([]float64, e.P)
	}
	for p := 0; p < e.P; p++ {
		Jinv := e.jinvAt(p)
		for k := 0; k < d; k++ {
			var sum float64
			for l := 0; l < d; l++ {
				sum += Jinv[l][k] * gradRef[l][p]
			}
			gradPhys[k][p] = sum
		}
	}
	return gradPhys
}
