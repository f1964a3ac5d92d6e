// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shape implements the geometric map of a concrete element shape
// (component B): the Jacobian, its inverse, the point-in-hull test, the
// inverse coordinate transform, and nodal coordinate construction.
package shape

import "github.com/cpmech/gosem/reftab"

// vertexBasis evaluates the P1 (simplex) or Q1 (tensor) vertex shape
// functions and their reference derivatives at xi. These are the
// isoparametric basis used for the geometric map x(xi) = sum_i N_i(xi) V_i
// and are distinct from the higher-order GLL basis of package reftab.
func vertexBasis(xi []float64, k reftab.Kind) (N []float64, dNdxi [][]float64) {
	switch k {
	case reftab.Quad:
		return quadVertexBasis(xi)
	case reftab.Hex:
		return hexVertexBasis(xi)
	case reftab.Tri:
		return triVertexBasis(xi)
	case reftab.Tet:
		return tetVertexBasis(xi)
	}
	return nil, nil
}

// quadCorners are the reference corner signs (r_i, s_i) in the vertex
// order used throughout (consistent with reftab's hex/quad closure).
var quadCorners = [][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func quadVertexBasis(xi []float64) ([]float64, [][]float64) {
	r, s := xi[0], xi[1]
	N := make([]float64, 4)
	dNdr := make([]float64, 4)
	dNds := make([]float64, 4)
	for i, c := range quadCorners {
		ri, si := c[0], c[1]
		N[i] = 0.25 * (1 + r*ri) * (1 + s*si)
		dNdr[i] = 0.25 * ri * (1 + s*si)
		dNds[i] = 0.25 * si * (1 + r*ri)
	}
	return N, [][]float64{dNdr, dNds}
}

// hexCorners matches the vertex order assumed by reftab's hex closure
// (bottom face z=-1 first, CCW, then top face z=+1).
var hexCorners = [][3]float64{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

func hexVertexBasis(xi []float64) ([]float64, [][]float64) {
	r, s, t := xi[0], xi[1], xi[2]
	N := make([]float64, 8)
	dNdr := make([]float64, 8)
	dNds := make([]float64, 8)
	dNdt := make([]float64, 8)
	for i, c := range hexCorners {
		ri, si, ti := c[0], c[1], c[2]
		N[i] = 0.125 * (1 + r*ri) * (1 + s*si) * (1 + t*ti)
		dNdr[i] = 0.125 * ri * (1 + s*si) * (1 + t*ti)
		dNds[i] = 0.125 * si * (1 + r*ri) * (1 + t*ti)
		dNdt[i] = 0.125 * ti * (1 + r*ri) * (1 + s*si)
	}
	return N, [][]float64{dNdr, dNds, dNdt}
}

// triCorners matches reftab's simplex-corner convention.
var triCorners = [][2]float64{{-1, -1}, {1, -1}, {-1, 1}}

func triVertexBasis(xi []float64) ([]float64, [][]float64) {
	r, s := xi[0], xi[1]
	L1 := 0.5 * (1 + r)
	L2 := 0.5 * (1 + s)
	L0 := 1 - L1 - L2
	N := []float64{L0, L1, L2}
	dNdr := []float64{-0.5, 0.5, 0}
	dNds := []float64{-0.5, 0, 0.5}
	return N, [][]float64{dNdr, dNds}
}

var tetCorners = [][3]float64{{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}

func tetVertexBasis(xi []float64) ([]float64, [][]float64) {
	r, s, t := xi[0], xi[1], xi[2]
	L1 := 0.5 * (1 + r)
	L2 := 0.5 * (1 + s)
	L3 := 0.5 * (1 + t)
	L0 := 1 - L1 - L2 - L3
	N := []float64{L0, L1, L2, L3}
	dNdr := []float64{-0.5, 0.5, 0, 0}
	dNds := []float64{-0.5, 0, 0.5, 0}
	dNdt := []float64{-0.5, 0, 0, 0.5}
	return N, [][]float64{dNdr, dNds, dNdt}
}
