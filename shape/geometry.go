// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/gosem/reftab"
	"github.com/cpmech/gosem/xerr"
)

// Shape is the geometric map of one concrete element shape; it carries no
// per-element state (vertex coordinates are always passed in explicitly),
// exposing a fixed per-shape function contract.
type Shape struct {
	Kind reftab.Kind
	Ndim int
}

// New returns the Shape handle for a given reference kind.
func New(k reftab.Kind) *Shape {
	return &Shape{Kind: k, Ndim: k.Ndim()}
}

// InterpolateAt returns the vertex-barycentric weights w such that
// x(xi) = sum_i w_i V_i.
func (sh *Shape) InterpolateAt(xi []float64) []float64 {
	N, _ := vertexBasis(xi, sh.Kind)
	return N
}

// JacobianAt returns J_kl = dx_k/dxi_l and det(J) at reference point xi,
// for the given vertex coordinates V (V[i] is vertex i's physical coords).
func (sh *Shape) JacobianAt(xi []float64, V [][]float64) (J [][]float64, detJ float64, err error) {
	_, dNdxi := vertexBasis(xi, sh.Kind)
	d := sh.Ndim
	J = make([][]float64, d)
	for row := 0; row < d; row++ {
		J[row] = make([]float64, d)
	}
	nv := len(V)
	for axis := 0; axis < d; axis++ {
		dN := dNdxi[axis]
		for i := 0; i < nv; i++ {
			for row := 0; row < d; row++ {
				J[row][axis] += dN[i] * V[i][row]
			}
		}
	}
	detJ = det(J)
	if detJ <= 0 {
		return J, detJ, &xerr.GeometryError{DetJ: detJ}
	}
	return J, detJ, nil
}

// InverseJacobianAt returns J^-1 and det(J) at xi.
func (sh *Shape) InverseJacobianAt(xi []float64, V [][]float64) (Jinv [][]float64, detJ float64, err error) {
	J, detJ, err := sh.JacobianAt(xi, V)
	if err != nil {
		return nil, detJ, err
	}
	Jinv = inv(J, detJ)
	return Jinv, detJ, nil
}

// BuildNodalPoints maps every reference-coordinate row of tensorCoords
// (the GLL/simplex node set of some order, in tensor order) to physical
// space using the shape's geometric map.
func (sh *Shape) BuildNodalPoints(tensorCoords [][]float64, V [][]float64) [][]float64 {
	out := make([][]float64, len(tensorCoords))
	for p, xi := range tensorCoords {
		N := sh.InterpolateAt(xi)
		x := make([]float64, sh.Ndim)
		for i, w := range N {
			for row := 0; row < sh.Ndim; row++ {
				x[row] += w * V[i][row]
			}
		}
		out[p] = x
	}
	return out
}

// InverseMap solves x(xi) = x for xi. Affine shapes (tri/tet) solve the
// linear system directly; bilinear/trilinear shapes (quad/hex) use
// Newton's method from the centroid.
func (sh *Shape) InverseMap(x []float64, V [][]float64) ([]float64, error) {
	if sh.Kind == reftab.Tri || sh.Kind == reftab.Tet {
		return sh.inverseMapAffine(x, V)
	}
	return sh.inverseMapNewton(x, V)
}

func (sh *Shape) inverseMapAffine(x []float64, V [][]float64) ([]float64, error) {
	d := sh.Ndim
	xi0 := make([]float64, d)
	J, detJ, err := sh.JacobianAt(xi0, V)
	if err != nil {
		return nil, err
	}
	Jinv := inv(J, detJ)
	x0 := sh.BuildNodalPoints([][]float64{xi0}, V)[0]
	dx := make([]float64, d)
	for i := range dx {
		dx[i] = x[i] - x0[i]
	}
	xi := make([]float64, d)
	for row := 0; row < d; row++ {
		for col := 0; col < d; col++ {
			xi[row] += Jinv[row][col] * dx[col]
		}
	}
	return xi, nil
}

func (sh *Shape) inverseMapNewton(x []float64, V [][]float64) ([]float64, error) {
	d := sh.Ndim
	xi := make([]float64, d)
	for iter := 0; iter < 50; iter++ {
		xcur := sh.BuildNodalPoints([][]float64{xi}, V)[0]
		res := make([]float64, d)
		var resNorm float64
		for i := range res {
			res[i] = x[i] - xcur[i]
			resNorm += res[i] * res[i]
		}
		if math.Sqrt(resNorm) < 1e-13 {
			return xi, nil
		}
		Jinv, _, err := sh.InverseJacobianAt(xi, V)
		if err != nil {
			return nil, err
		}
		for row := 0; row < d; row++ {
			var dxi float64
			for col := 0; col < d; col++ {
				dxi += Jinv[row][col] * res[col]
			}
			xi[row] += dxi
		}
	}
	return xi, nil
}

// det returns the determinant of a small (2x2 or 3x3) dense matrix.
func det(A [][]float64) float64 {
	switch len(A) {
	case 2:
		return A[0][0]*A[1][1] - A[0][1]*A[1][0]
	case 3:
		return A[0][0]*(A[1][1]*A[2][2]-A[1][2]*A[2][1]) -
			A[0][1]*(A[1][0]*A[2][2]-A[1][2]*A[2][0]) +
			A[0][2]*(A[1][0]*A[2][1]-A[1][1]*A[2][0])
	}
	return 0
}

// inv returns the inverse of a small (2x2 or 3x3) dense matrix given its
// precomputed determinant.
func inv(A [][]float64, detA float64) [][]float64 {
	n := len(A)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	switch n {
	case 2:
		out[0][0] = A[1][1] / detA
		out[0][1] = -A[0][1] / detA
		out[1][0] = -A[1][0] / detA
		out[1][1] = A[0][0] / detA
	case 3:
		out[0][0] = (A[1][1]*A[2][2] - A[1][2]*A[2][1]) / detA
		out[0][1] = (A[0][2]*A[2][1] - A[0][1]*A[2][2]) / detA
		out[0][2] = (A[0][1]*A[1][2] - A[0][2]*A[1][1]) / detA
		out[1][0] = (A[1][2]*A[2][0] - A[1][0]*A[2][2]) / detA
		out[1][1] = (A[0][0]*A[2][2] - A[0][2]*A[2][0]) / detA
		out[1][2] = (A[0][2]*A[1][0] - A[0][0]*A[1][2]) / detA
		out[2][0] = (A[1][0]*A[2][1] - A[1][1]*A[2][0]) / detA
		out[2][1] = (A[0][1]*A[2][0] - A[0][0]*A[2][1]) / detA
		out[2][2] = (A[0][0]*A[1][1] - A[0][1]*A[1][0]) / detA
	}
	return out
}
