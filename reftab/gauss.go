// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import "math"

// gaussLegendre1D returns n Gauss-Legendre nodes/weights on [-1,1],
// located by Newton iteration from the classical asymptotic initial guess.
// Used only to build the simplex moment-fitting quadrature in simplex.go;
// unlike GLLNodes it has no endpoint nodes, so it never coincides with the
// degenerate Duffy-transform edge.
func gaussLegendre1D(n int) (nodes, weights []float64) {
	nodes = make([]float64, n)
	weights = make([]float64, n)
	for i := 0; i < n; i++ {
		x := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		for iter := 0; iter < 100; iter++ {
			p, dp := legendre(n, x)
			dx := p / dp
			x -= dx
			if math.Abs(dx) < 1e-15 {
				break
			}
		}
		_, dp := legendre(n, x)
		nodes[i] = x
		weights[i] = 2 / ((1 - x*x) * dp * dp)
	}
	return nodes, weights
}

// gaussLegendreUnitSimplex returns a quadrature rule (points, weights) that
// integrates over the unit right simplex {u_i >= 0, sum u_i <= 1} in d
// dimensions, via the collapsed-coordinate (Duffy) transform of a tensor
// Gauss-Legendre rule on [-1,1]^d with n points per axis.
func gaussLegendreUnitSimplex(d, n int) (pts [][]float64, wts []float64) {
	t, w := gaussLegendre1D(n)
	if d == 2 {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a, b := t[i], t[j]
				eta := 0.5 * (1 + b)
				xi := 0.5 * (1 + a) * 0.5 * (1 - b)
				jac := (1 - b) / 8
				pts = append(pts, []float64{xi, eta})
				wts = append(wts, w[i]*w[j]*jac)
			}
		}
		return
	}
	// d == 3
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				a, b, c := t[i], t[j], t[k]
				zeta := 0.5 * (1 + c)
				eta := 0.5 * (1 + b) * 0.5 * (1 - c)
				xi := 0.5 * (1 + a) * 0.5 * (1 - b) * 0.5 * (1 - c)
				jac := (1 - b) * (1 - c) * (1 - c) / 64
				pts = append(pts, []float64{xi, eta, zeta})
				wts = append(wts, w[i]*w[j]*w[k]*jac)
			}
		}
	}
	return
}
