// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dof implements component E: the global section that maps mesh
// points to DoF offsets, local<->global scatter, and the per-element
// closure inject/extract used to move data between an element's
// tensor-ordered local buffer and the partitioned global vectors.
//
// The distributed-mesh topology library itself (true ghost ownership,
// partitioning, neighbour exchange) is an external collaborator per the
// system's scope; BuildSection below substitutes the minimal piece of
// that service the engine actually needs: it identifies DoFs shared
// between elements by coincidence of their physical coordinates, which is
// precisely the set of points a real topology service would report as
// shared mesh entities (vertices, edge- and face-interior points alike)
// for a conforming mesh. The lookup itself is gosl/gm.Bins, the same
// coordinate-keyed spatial index used elsewhere in this ecosystem for
// node and integration-point lookups (NodBins/IpsBins).
package dof

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
)

// binsNdiv is the bins' per-axis division count, matching the default
// used elsewhere in this ecosystem for coordinate-keyed node/ip lookup.
const binsNdiv = 20

// Section is the global DoF numbering shared by every field of a given
// physics.
type Section struct {
	NumGlobal     int
	ElemGlobalIdx [][]int // [elem][local tensor-order node] -> global index
}

// BuildSection dedups the physical node coordinates of every element into
// a single global index per distinct mesh point, using a gm.Bins spatial
// index over the mesh's bounding box (padded by 2*tol), the same pattern
// used to build NodBins/IpsBins before scanning a domain.
func BuildSection(physNodesPerElem [][][]float64, tol float64) *Section {
	s := &Section{ElemGlobalIdx: make([][]int, len(physNodesPerElem))}

	ndim := 0
	for _, nodes := range physNodesPerElem {
		if len(nodes) > 0 {
			ndim = len(nodes[0])
			break
		}
	}
	if ndim == 0 {
		return s
	}

	xmin, xmax := boundingBox(physNodesPerElem, ndim, tol)
	var bins gm.Bins
	if err := bins.Init(xmin, xmax, binsNdiv); err != nil {
		chk.Panic("cannot initialise coordinate bins: %v", err)
	}

	for e, nodes := range physNodesPerElem {
		idx := make([]int, len(nodes))
		for p, x := range nodes {
			g := bins.Find(x)
			if g < 0 {
				g = s.NumGlobal
				s.NumGlobal++
				if err := bins.Append(x, g); err != nil {
					chk.Panic("cannot append node coordinate to bins: %v", err)
				}
			}
			idx[p] = g
		}
		s.ElemGlobalIdx[e] = idx
	}
	return s
}

// boundingBox returns the {min,max} corners across every node of every
// element, padded by 2*tol on each side so that points sitting right on
// the mesh's extreme faces still fall inside every bin (the same
// "delta := TolC * 2" padding convention used in this ecosystem).
func boundingBox(physNodesPerElem [][][]float64, ndim int, tol float64) (xmin, xmax []float64) {
	xmin = make([]float64, ndim)
	xmax = make([]float64, ndim)
	for axis := range xmin {
		xmin[axis] = math.Inf(1)
		xmax[axis] = math.Inf(-1)
	}
	for _, nodes := range physNodesPerElem {
		for _, x := range nodes {
			for axis, v := range x {
				if v < xmin[axis] {
					xmin[axis] = v
				}
				if v > xmax[axis] {
					xmax[axis] = v
				}
			}
		}
	}
	pad := tol * 2
	for axis := range xmin {
		xmin[axis] -= pad
		xmax[axis] += pad
	}
	return xmin, xmax
}

// ClosureSet scatters an element-local (tensor-order) vector f_e into the
// local vector vloc, at the element's global indices, either overwriting
// (ADD=false) or summing (ADD=true) per entry (closure_set).
func (s *Section) ClosureSet(vloc []float64, elem int, fe []float64, add bool) {
	idx := s.ElemGlobalIdx[elem]
	for p, g := range idx {
		if add {
			vloc[g] += fe[p]
		} else {
			vloc[g] = fe[p]
		}
	}
}

// ClosureGet gathers the element-local (tensor-order) view of a local
// vector (closure_get).
func (s *Section) ClosureGet(vloc []float64, elem int) []float64 {
	idx := s.ElemGlobalIdx[elem]
	out := make([]float64, len(idx))
	for p, g := range idx {
		out[p] = vloc[g]
	}
	return out
}

// checkPositive panics via chk.Panic if any entry of v is <= 0, used to
// enforce the "mi strictly positive" invariant right after mass
// assembly.
func checkPositive(v []float64, what string) {
	for i, x := range v {
		if x <= 0 {
			chk.Panic("%s must be strictly positive on every owned DoF; got %s[%d] = %v", what, what, i, x)
		}
	}
}
