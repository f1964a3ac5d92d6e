// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/cpmech/gosem/reftab"

const hullTol = 1e-8

// CheckHull tests whether a physical point x lies inside (or on the
// boundary of) the element spanned by vertex coordinates V. It is an
// axis-aligned bounding-box early reject followed by a shape-specific
// membership test: barycentric sign test for tri/tet, reference-square/
// cube projection after the inverse map for quad/hex. onBoundary reports
// whether x lies within hullTol of a face,
// which callers use for the "smaller ordinal id owns the boundary" policy.
func (sh *Shape) CheckHull(x []float64, V [][]float64) (inside, onBoundary bool) {
	if !boundingBoxContains(x, V, hullTol) {
		return false, false
	}
	switch sh.Kind {
	case reftab.Tri, reftab.Tet:
		return sh.hullSimplex(x, V)
	default:
		return sh.hullTensor(x, V)
	}
}

func boundingBoxContains(x []float64, V [][]float64, tol float64) bool {
	d := len(x)
	lo := make([]float64, d)
	hi := make([]float64, d)
	for axis := 0; axis < d; axis++ {
		lo[axis] = V[0][axis]
		hi[axis] = V[0][axis]
	}
	for _, v := range V {
		for axis := 0; axis < d; axis++ {
			if v[axis] < lo[axis] {
				lo[axis] = v[axis]
			}
			if v[axis] > hi[axis] {
				hi[axis] = v[axis]
			}
		}
	}
	for axis := 0; axis < d; axis++ {
		if x[axis] < lo[axis]-tol || x[axis] > hi[axis]+tol {
			return false
		}
	}
	return true
}

// hullSimplex uses the barycentric weights directly: x is inside the
// simplex iff every barycentric coordinate is in [0,1].
func (sh *Shape) hullSimplex(x []float64, V [][]float64) (inside, onBoundary bool) {
	xi, err := sh.inverseMapAffine(x, V)
	if err != nil {
		return false, false
	}
	N := sh.InterpolateAt(xi)
	onBoundary = false
	for _, w := range N {
		if w < -hullTol {
			return false, false
		}
		if w < hullTol {
			onBoundary = true
		}
	}
	return true, onBoundary
}

// hullTensor projects onto the reference square/cube after the inverse
// map and checks |xi_k| <= 1 + tol for every axis.
func (sh *Shape) hullTensor(x []float64, V [][]float64) (inside, onBoundary bool) {
	xi, err := sh.inverseMapNewton(x, V)
	if err != nil {
		return false, false
	}
	onBoundary = false
	for _, v := range xi {
		if v < -1-hullTol || v > 1+hullTol {
			return false, false
		}
		if v < -1+hullTol || v > 1-hullTol {
			onBoundary = true
		}
	}
	return true, onBoundary
}
