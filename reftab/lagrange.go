// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import "math"

// barycentricWeights1D computes the barycentric interpolation weights for
// the GLL node set of order N, used by Eval1D/EvalDeriv1D.
func barycentricWeights1D(nodes []float64) []float64 {
	n := len(nodes)
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = 1
		for j := 0; j < n; j++ {
			if j != i {
				w[i] /= nodes[i] - nodes[j]
			}
		}
	}
	return w
}

// Eval1D returns the N+1 Lagrange basis values l_i(xi) at an arbitrary
// reference coordinate xi, using the barycentric formula (stable even
// when xi coincides with a node).
func Eval1D(xi float64, N int) ([]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	nodes, _ := GLLNodes(N)
	w := barycentricWeights1D(nodes)
	l := make([]float64, N+1)
	for i, ri := range nodes {
		if math.Abs(xi-ri) < 1e-14 {
			l[i] = 1
			for k := range l {
				if k != i {
					l[k] = 0
				}
			}
			return l, nil
		}
	}
	var sum float64
	tmp := make([]float64, N+1)
	for i, ri := range nodes {
		tmp[i] = w[i] / (xi - ri)
		sum += tmp[i]
	}
	for i := range l {
		l[i] = tmp[i] / sum
	}
	return l, nil
}

// EvalDeriv1D returns d(l_i)/d(xi) at xi for every basis function i. When
// xi is a GLL node the exact differentiation matrix row is used; otherwise
// the derivative is obtained from the barycentric formula.
func EvalDeriv1D(xi float64, N int) ([]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	nodes, _ := GLLNodes(N)
	for i, ri := range nodes {
		if math.Abs(xi-ri) < 1e-14 {
			D, _ := DiffMatrix1D(N)
			return D[i], nil
		}
	}
	w := barycentricWeights1D(nodes)
	l, _ := Eval1D(xi, N)
	dl := make([]float64, N+1)
	// direct formula: l_i(xi) = (w_i/(xi-r_i)) / S(xi), S = sum_k w_k/(xi-r_k)
	// d l_i/dxi = l_i(xi) * ( -1/(xi-r_i) - S'(xi)/S(xi) )
	S, Sp := 0.0, 0.0
	for i, ri := range nodes {
		t := w[i] / (xi - ri)
		S += t
		Sp += -t / (xi - ri)
	}
	for i, ri := range nodes {
		dl[i] = l[i] * (-1/(xi-ri) - Sp/S)
	}
	return dl, nil
}
