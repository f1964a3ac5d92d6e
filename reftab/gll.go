// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import (
	"math"
	"sync"
)

// gllCache memoizes the 1D tables per order; reference tables are
// read-only singletons per (N, shape).
var gllCache sync.Map // map[int]*gll1D

type gll1D struct {
	nodes   []float64   // r_i, i = 0..N
	weights []float64   // w_i > 0
	diff    [][]float64 // D_ij = l_j'(r_i)
}

// GLLNodes returns the N+1 Gauss-Lobatto-Legendre nodes on [-1,1] for
// polynomial order N, with nodes[0] = -1 and nodes[N] = +1.
func GLLNodes(N int) ([]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	t := gll1DTables(N)
	out := make([]float64, len(t.nodes))
	copy(out, t.nodes)
	return out, nil
}

// GLLWeights returns the N+1 GLL quadrature weights corresponding to
// GLLNodes(N); all weights are strictly positive.
func GLLWeights(N int) ([]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	t := gll1DTables(N)
	out := make([]float64, len(t.weights))
	copy(out, t.weights)
	return out, nil
}

// DiffMatrix1D returns the (N+1)x(N+1) differentiation matrix
// D_ij = l_j'(r_i) for the 1D Lagrange basis built on the GLL nodes.
func DiffMatrix1D(N int) ([][]float64, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	t := gll1DTables(N)
	out := make([][]float64, len(t.diff))
	for i := range t.diff {
		out[i] = append([]float64(nil), t.diff[i]...)
	}
	return out, nil
}

// gll1DTables computes (and memoizes) the GLL nodes, weights and
// differentiation matrix for order N.
func gll1DTables(N int) *gll1D {
	if v, ok := gllCache.Load(N); ok {
		return v.(*gll1D)
	}
	t := &gll1D{}
	t.nodes = computeGLLNodes(N)
	t.weights = computeGLLWeights(N, t.nodes)
	t.diff = computeGLLDiffMatrix(N, t.nodes)
	actual, _ := gllCache.LoadOrStore(N, t)
	return actual.(*gll1D)
}

// computeGLLNodes finds the N+1 GLL nodes: r_0=-1, r_N=+1, and the N-1
// interior roots of P_N'(x), located by Newton iteration from a
// Chebyshev-Gauss-Lobatto initial guess.
func computeGLLNodes(N int) []float64 {
	r := make([]float64, N+1)
	r[0] = -1
	r[N] = 1
	if N == 1 {
		return r
	}
	for i := 1; i < N; i++ {
		// Chebyshev-Gauss-Lobatto initial guess
		x := -math.Cos(math.Pi * float64(i) / float64(N))
		for iter := 0; iter < 100; iter++ {
			_, dp := legendre(N, x)
			// Newton on f(x) = (1-x^2) P_N'(x), whose interior roots are
			// exactly the GLL interior nodes; f'(x) computed by finite
			// perturbation of P_N' avoids a second symbolic derivative.
			h := 1e-7
			_, dpp := legendre(N, x+h)
			_, dpm := legendre(N, x-h)
			ddp := (dpp - dpm) / (2 * h)
			f := (1 - x*x) * dp
			df := -2*x*dp + (1-x*x)*ddp
			if math.Abs(df) < 1e-300 {
				break
			}
			dx := f / df
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		r[i] = x
	}
	return r
}

// computeGLLWeights returns w_i = 2 / (N(N+1) [P_N(r_i)]^2)
func computeGLLWeights(N int, nodes []float64) []float64 {
	w := make([]float64, N+1)
	for i, x := range nodes {
		p := legendreValue(N, x)
		w[i] = 2.0 / (float64(N) * float64(N+1) * p * p)
	}
	return w
}

// computeGLLDiffMatrix returns the GLL differentiation matrix using the
// classical closed form (Canuto, Hussaini, Quarteroni & Zang):
//
//	D_ij = P_N(r_i)/P_N(r_j) * 1/(r_i - r_j)   i != j
//	D_00 = -N(N+1)/4,  D_NN = N(N+1)/4
//	D_ii = 0           otherwise
func computeGLLDiffMatrix(N int, nodes []float64) [][]float64 {
	P := make([]float64, N+1)
	for i, x := range nodes {
		P[i] = legendreValue(N, x)
	}
	D := make([][]float64, N+1)
	for i := 0; i <= N; i++ {
		D[i] = make([]float64, N+1)
		for j := 0; j <= N; j++ {
			if i == j {
				continue
			}
			D[i][j] = P[i] / P[j] / (nodes[i] - nodes[j])
		}
	}
	D[0][0] = -0.25 * float64(N) * float64(N+1)
	D[N][N] = 0.25 * float64(N) * float64(N+1)
	return D
}
