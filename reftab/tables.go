// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

// Nodes returns the P(N,shape) reference-coordinates of every DoF, in
// tensor order (vertex-first-then-edges-then-faces-then-volume ordering
// is the TOPOLOGY order; Closure maps between the two).
func Nodes(N int, k Kind) ([][]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	if k.IsTensor() {
		return tensorNodes(N, k), nil
	}
	t := simplexTablesFor(N, k)
	out := make([][]float64, len(t.nodes))
	for i, x := range t.nodes {
		out[i] = append([]float64(nil), x...)
	}
	return out, nil
}

// Interp returns the Lagrange basis values l_i(xi), i=0..P-1, in tensor
// order, at an arbitrary reference-element point xi.
func Interp(xi []float64, N int, k Kind) ([]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	if k.IsTensor() {
		return tensorInterp(xi, N, k), nil
	}
	t := simplexTablesFor(N, k)
	P := len(t.nodes)
	out := make([]float64, P)
	for j := 0; j < P; j++ {
		var v float64
		for m, e := range t.exps {
			v += t.coefs.At(m, j) * evalMonomial(e, xi)
		}
		out[j] = v
	}
	return out, nil
}

// Deriv returns, for each reference axis k=0..d-1, the vector of
// d(l_i)/d(xi_k) at xi, i=0..P-1, in tensor order.
func Deriv(xi []float64, N int, k Kind) ([][]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	if k.IsTensor() {
		return tensorDeriv(xi, N, k), nil
	}
	t := simplexTablesFor(N, k)
	d := k.Ndim()
	P := len(t.nodes)
	out := make([][]float64, d)
	for axis := 0; axis < d; axis++ {
		out[axis] = make([]float64, P)
		for j := 0; j < P; j++ {
			var v float64
			for m, e := range t.exps {
				v += t.coefs.At(m, j) * evalMonomialDeriv(e, xi, axis)
			}
			out[axis][j] = v
		}
	}
	return out, nil
}

// Weights returns the quadrature weight at every node, w_i > 0, in tensor
// order; for tensor shapes this is the product of 1D GLL weights, for
// simplices it is the moment-fitted weight of simplex.go.
func Weights(N int, k Kind) ([]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	if k.IsTensor() {
		return tensorWeights(N, k), nil
	}
	t := simplexTablesFor(N, k)
	out := append([]float64(nil), t.weights...)
	return out, nil
}

// evalMonomialDeriv evaluates d(monomial)/d(x_axis) at x.
func evalMonomialDeriv(exp []int, x []float64, axis int) float64 {
	if exp[axis] == 0 {
		return 0
	}
	v := float64(exp[axis])
	for i, e := range exp {
		ei := e
		if i == axis {
			ei--
		}
		for p := 0; p < ei; p++ {
			v *= x[i]
		}
	}
	return v
}
