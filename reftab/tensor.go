// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

// tensorIndex enumerates the (N+1)^d multi-indices of a tensor shape in
// row-major order (last axis fastest), which is the TENSOR order used
// throughout the element/physics layers for sum-factorization.
func tensorIndex(N, d int) [][]int {
	n1 := N + 1
	total := 1
	for i := 0; i < d; i++ {
		total *= n1
	}
	out := make([][]int, total)
	idx := make([]int, d)
	for p := 0; p < total; p++ {
		cp := append([]int(nil), idx...)
		out[p] = cp
		for axis := d - 1; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] <= N {
				break
			}
			idx[axis] = 0
		}
	}
	return out
}

// tensorNodes returns the P reference coordinates of a tensor shape (quad
// or hex) in tensor order, built as the outer product of the 1D GLL nodes.
func tensorNodes(N int, k Kind) [][]float64 {
	d := k.Ndim()
	nodes1D, _ := GLLNodes(N)
	idxs := tensorIndex(N, d)
	out := make([][]float64, len(idxs))
	for p, idx := range idxs {
		x := make([]float64, d)
		for axis := 0; axis < d; axis++ {
			x[axis] = nodes1D[idx[axis]]
		}
		out[p] = x
	}
	return out
}

// tensorWeights returns the quadrature weight at every tensor node: the
// product of the 1D GLL weights along each axis, applied in the order
// (r, s, t) to keep results bit-reproducible across runs of the same build.
func tensorWeights(N int, k Kind) []float64 {
	d := k.Ndim()
	w1D, _ := GLLWeights(N)
	idxs := tensorIndex(N, d)
	out := make([]float64, len(idxs))
	for p, idx := range idxs {
		w := 1.0
		for axis := 0; axis < d; axis++ {
			w *= w1D[idx[axis]]
		}
		out[p] = w
	}
	return out
}

// tensorInterp evaluates the full tensor-product Lagrange basis at an
// arbitrary reference point xi (length d), in tensor order.
func tensorInterp(xi []float64, N int, k Kind) []float64 {
	d := k.Ndim()
	per := make([][]float64, d)
	for axis := 0; axis < d; axis++ {
		per[axis], _ = Eval1D(xi[axis], N)
	}
	idxs := tensorIndex(N, d)
	out := make([]float64, len(idxs))
	for p, idx := range idxs {
		v := 1.0
		for axis := 0; axis < d; axis++ {
			v *= per[axis][idx[axis]]
		}
		out[p] = v
	}
	return out
}

// tensorDeriv evaluates the k-th reference-coordinate partial derivative
// of the full tensor-product basis at xi, for k = 0..d-1, in tensor order.
func tensorDeriv(xi []float64, N int, k Kind) [][]float64 {
	d := k.Ndim()
	vals := make([][]float64, d)
	derivs := make([][]float64, d)
	for axis := 0; axis < d; axis++ {
		vals[axis], _ = Eval1D(xi[axis], N)
		derivs[axis], _ = EvalDeriv1D(xi[axis], N)
	}
	idxs := tensorIndex(N, d)
	out := make([][]float64, d)
	for partial := 0; partial < d; partial++ {
		out[partial] = make([]float64, len(idxs))
		for p, idx := range idxs {
			v := 1.0
			for axis := 0; axis < d; axis++ {
				if axis == partial {
					v *= derivs[axis][idx[axis]]
				} else {
					v *= vals[axis][idx[axis]]
				}
			}
			out[partial][p] = v
		}
	}
	return out
}
