// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package element implements per-element operator application (component
// C): the gradient, the stiffness action K.u via "apply gradient,
// multiply by constitutive law, apply gradient-of-test and integrate",
// the mass matrix, and the source-delta coefficients, for each concrete
// shape (quad/hex tensor product, tri/tet non-tensor), all driven by the
// element's geometric Jacobian.
package element

import (
	"math"

	"github.com/cpmech/gosem/reftab"
	"github.com/cpmech/gosem/shape"
	"github.com/cpmech/gosem/xerr"
)

// Element holds the geometry and cached reference-table data for one
// spectral/finite element; it is created once after mesh distribution and
// never moved.
type Element struct {
	ID    int
	Kind  reftab.Kind
	N     int // polynomial order
	Ndim  int
	V     [][]float64 // vertex coordinates, [Nverts][Ndim]
	shape *shape.Shape

	P         int         // node count
	RefNodes  [][]float64 // reference (tensor-order) node coordinates
	PhysNodes [][]float64 // physical coordinates of every node
	Weights   []float64   // 1D/tensor-product quadrature weight at every node
	Closure   []int       // topology <-> tensor permutation

	// affine shapes (tri/tet): Jacobian is constant, cached once.
	affineJinv [][]float64
	affineDetJ float64

	// simplexDeriv[p][axis][i] = d(l_i)/d(xi_axis) evaluated at node p's
	// reference coordinates; precomputed once since tri/tet have no
	// sum-factorized differentiation matrix to fall back on.
	simplexDeriv [][][]float64

	// tensorDiff is the 1D GLL differentiation matrix, cached for the
	// sum-factorized gradient contraction on quad/hex.
	tensorDiff [][]float64

	// tensor shapes (quad/hex): Jacobian varies per node; recomputed on
	// demand by detJAt/jinvAt, never cached.
}

// New builds an Element from its id, shape/order and vertex coordinates.
// It fails with *xerr.GeometryError if det(J) <= 0 at any integration
// point (tensor shapes) or at the single affine Jacobian (tri/tet).
func New(id int, k reftab.Kind, N int, V [][]float64) (*Element, error) {
	sh := shape.New(k)
	e := &Element{ID: id, Kind: k, N: N, Ndim: k.Ndim(), V: V, shape: sh}

	refNodes, err := reftab.Nodes(N, k)
	if err != nil {
		return nil, err
	}
	weights, err := reftab.Weights(N, k)
	if err != nil {
		return nil, err
	}
	closure, err := reftab.Closure(N, k)
	if err != nil {
		return nil, err
	}
	e.RefNodes = refNodes
	e.Weights = weights
	e.Closure = closure
	e.P = len(refNodes)
	e.PhysNodes = sh.BuildNodalPoints(refNodes, V)

	if !k.IsTensor() {
		xi0 := make([]float64, e.Ndim)
		_, detJ, err := sh.JacobianAt(xi0, V)
		if err != nil {
			return nil, err
		}
		Jinv, _, err := sh.InverseJacobianAt(xi0, V)
		if err != nil {
			return nil, err
		}
		e.affineDetJ = detJ
		e.affineJinv = Jinv
		e.simplexDeriv = make([][][]float64, e.P)
		for p, xi := range refNodes {
			deriv, err := reftab.Deriv(xi, N, k)
			if err != nil {
				return nil, err
			}
			e.simplexDeriv[p] = deriv
		}
	} else {
		D, err := reftab.DiffMatrix1D(N)
		if err != nil {
			return nil, err
		}
		e.tensorDiff = D
		for p, xi := range refNodes {
			_, detJ, err := sh.JacobianAt(xi, V)
			if err != nil {
				e2 := err.(*xerr.GeometryError)
				e2.ElemID = id
				e2.IntPt = p
				return nil, e2
			}
			_ = detJ
		}
	}
	return e, nil
}

// detJAt returns det(J) at node p.
func (e *Element) detJAt(p int) float64 {
	if !e.Kind.IsTensor() {
		return e.affineDetJ
	}
	_, detJ, _ := e.shape.JacobianAt(e.RefNodes[p], e.V)
	return detJ
}

// jinvAt returns J^-1 at node p.
func (e *Element) jinvAt(p int) [][]float64 {
	if !e.Kind.IsTensor() {
		return e.affineJinv
	}
	Jinv, _, _ := e.shape.InverseJacobianAt(e.RefNodes[p], e.V)
	return Jinv
}

// CFL returns the element's characteristic length h_e used by the CFL
// estimate C*h_e/v_max; h_e is taken as the smallest distance
// between a node and its nearest distinct neighbour node's physical
// coordinates, a cheap proxy for the local grid spacing.
func (e *Element) CFL() float64 {
	h := -1.0
	for i := 0; i < e.P; i++ {
		for j := i + 1; j < e.P; j++ {
			d2 := 0.0
			for axis := 0; axis < e.Ndim; axis++ {
				diff := e.PhysNodes[i][axis] - e.PhysNodes[j][axis]
				d2 += diff * diff
			}
			if d2 <= 0 {
				continue
			}
			if h < 0 || d2 < h*h {
				h = math.Sqrt(d2)
			}
		}
	}
	if h < 0 {
		return 0
	}
	return h
}
