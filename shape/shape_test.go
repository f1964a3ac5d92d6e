// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/cpmech/gosem/reftab"
	"github.com/cpmech/gosl/chk"
)

func unitSquareVerts() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func unitCubeVerts() [][]float64 {
	return [][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
}

// TestQuadJacobianPositive checks det(J) > 0 on a non-degenerate square.
func TestQuadJacobianPositive(tst *testing.T) {
	sh := New(reftab.Quad)
	V := unitSquareVerts()
	_, detJ, err := sh.JacobianAt([]float64{0, 0}, V)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if detJ <= 0 {
		tst.Fatalf("expected positive det(J), got %g", detJ)
	}
}

// TestHexCheckHullCentroid checks the centroid of a unit cube is inside.
func TestHexCheckHullCentroid(tst *testing.T) {
	sh := New(reftab.Hex)
	V := unitCubeVerts()
	inside, _ := sh.CheckHull([]float64{0.5, 0.5, 0.5}, V)
	if !inside {
		tst.Fatalf("expected centroid to be inside the cube")
	}
	outside, _ := sh.CheckHull([]float64{5, 5, 5}, V)
	if outside {
		tst.Fatalf("expected far point to be outside the cube")
	}
}

// TestInverseMapRoundTrip checks BuildNodalPoints . InverseMap == identity.
func TestInverseMapRoundTrip(tst *testing.T) {
	sh := New(reftab.Quad)
	V := unitSquareVerts()
	xiWant := []float64{0.3, -0.4}
	x := sh.BuildNodalPoints([][]float64{xiWant}, V)[0]
	xiGot, err := sh.InverseMap(x, V)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Vector(tst, "xi round-trip", 1e-8, xiGot, xiWant)
}

// TestTriBarycentricHull checks a triangle's hull test against its own
// vertices and centroid.
func TestTriBarycentricHull(tst *testing.T) {
	sh := New(reftab.Tri)
	V := [][]float64{{0, 0}, {1, 0}, {0, 1}}
	centroid := []float64{1.0 / 3, 1.0 / 3}
	inside, _ := sh.CheckHull(centroid, V)
	if !inside {
		tst.Fatalf("expected centroid to be inside the triangle")
	}
	outside, _ := sh.CheckHull([]float64{2, 2}, V)
	if outside {
		tst.Fatalf("expected far point to be outside the triangle")
	}
}
