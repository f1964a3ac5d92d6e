// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reftab implements the reference-element tables: GLL nodes and
// weights, Lagrange interpolation and differentiation tables, and the
// PETSc-closure <-> tensor-closure permutation, for every supported
// polynomial order and element shape (component A of the engine).
//
// Every exported function here is a pure function of (order, shape); no
// mutable state is kept beyond the process-local memoization cache, so
// tables can be freely shared across elements and goroutines.
package reftab

import "github.com/cpmech/gosem/xerr"

// Kind identifies a concrete reference element shape
type Kind int

// supported shapes
const (
	Tri Kind = iota
	Quad
	Tet
	Hex
)

func (k Kind) String() string {
	switch k {
	case Tri:
		return "tri"
	case Quad:
		return "quad"
	case Tet:
		return "tet"
	case Hex:
		return "hex"
	}
	return "unknown"
}

// Ndim returns the shape's ambient/reference dimension
func (k Kind) Ndim() int {
	switch k {
	case Tri, Quad:
		return 2
	case Tet, Hex:
		return 3
	}
	return 0
}

// IsTensor reports whether k admits sum-factorized tensor-product operators
func (k Kind) IsTensor() bool {
	return k == Quad || k == Hex
}

// Nverts returns the number of corner vertices of the shape
func (k Kind) Nverts() int {
	switch k {
	case Tri:
		return 3
	case Quad:
		return 4
	case Tet:
		return 4
	case Hex:
		return 8
	}
	return 0
}

// MaxOrder is the highest polynomial order N for which tables are provided.
// Orders outside [1, MaxOrder] reject with *xerr.UnsupportedOrder.
const MaxOrder = 8

// checkOrder validates N is within the compiled range
func checkOrder(N int) error {
	if N < 1 || N > MaxOrder {
		return &xerr.UnsupportedOrder{Order: N, Max: MaxOrder}
	}
	return nil
}

// NodeCount returns P(N, shape), the number of nodal DoFs
func NodeCount(N int, k Kind) int {
	switch k {
	case Quad:
		return (N + 1) * (N + 1)
	case Hex:
		return (N + 1) * (N + 1) * (N + 1)
	case Tri:
		return (N + 1) * (N + 2) / 2
	case Tet:
		return (N + 1) * (N + 2) * (N + 3) / 6
	}
	return 0
}
