// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestPartitionOfUnity checks property #2: sum_i l_i(xi) = 1, evaluated
// at every reference node.
func TestPartitionOfUnity(tst *testing.T) {
	for _, k := range []Kind{Tri, Quad, Tet, Hex} {
		for N := 1; N <= 4; N++ {
			nodes, err := Nodes(N, k)
			if err != nil {
				tst.Fatalf("%v N=%d: %v", k, N, err)
			}
			for _, xi := range nodes {
				l, err := Interp(xi, N, k)
				if err != nil {
					tst.Fatalf("%v N=%d: %v", k, N, err)
				}
				var sum float64
				for _, v := range l {
					sum += v
				}
				chk.Float64(tst, k.String(), 1e-9, sum, 1)
			}
		}
	}
}

// TestQuadGLLWeightsPositive checks property #5's precondition on tensor
// shapes: every GLL weight is strictly positive.
func TestQuadGLLWeightsPositive(tst *testing.T) {
	for N := 1; N <= 8; N++ {
		w, err := GLLWeights(N)
		if err != nil {
			tst.Fatalf("N=%d: %v", N, err)
		}
		for i, wi := range w {
			if wi <= 0 {
				tst.Errorf("N=%d weight %d = %g is not positive", N, i, wi)
			}
		}
	}
}

// TestClosureIsPermutation checks that Closure is always a permutation of
// {0..P-1}.
func TestClosureIsPermutation(tst *testing.T) {
	for _, k := range []Kind{Tri, Quad, Tet, Hex} {
		for N := 1; N <= 4; N++ {
			sigma, err := Closure(N, k)
			if err != nil {
				tst.Fatalf("%v N=%d: %v", k, N, err)
			}
			P := NodeCount(N, k)
			seen := make([]bool, P)
			for _, s := range sigma {
				if s < 0 || s >= P || seen[s] {
					tst.Fatalf("%v N=%d: closure is not a permutation", k, N)
				}
				seen[s] = true
			}
		}
	}
}

// TestUnsupportedOrderRejects checks orders outside [1,MaxOrder] fail.
func TestUnsupportedOrderRejects(tst *testing.T) {
	if _, err := GLLNodes(0); err == nil {
		tst.Fatalf("expected UnsupportedOrder for N=0")
	}
	if _, err := GLLNodes(MaxOrder + 1); err == nil {
		tst.Fatalf("expected UnsupportedOrder for N=MaxOrder+1")
	}
}

// TestTensorQuadratureExactness checks property #1 on the tensor shapes,
// where GLL quadrature is exact to degree 2N-1 by construction.
func TestTensorQuadratureExactness(tst *testing.T) {
	for N := 1; N <= 5; N++ {
		w, _ := GLLWeights(N)
		nodes, _ := GLLNodes(N)
		// integrate x^(2N-1) over [-1,1]: exact value is 0 (odd power)
		deg := 2*N - 1
		var sum float64
		for i, x := range nodes {
			v := 1.0
			for p := 0; p < deg; p++ {
				v *= x
			}
			sum += w[i] * v
		}
		chk.Float64(tst, "odd-degree GLL quadrature", 1e-10, sum, 0)
	}
}
