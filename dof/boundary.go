// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

// Sideset is a named collection of (element id, local face id) pairs read
// from the mesh.
type Sideset struct {
	Name  string
	Faces []ElemFace
}

// ElemFace names one local face of one element.
type ElemFace struct {
	Elem int
	Face int
}

// BoundaryMap is `boundary_name -> {element_id -> [local face ids]}`.
type BoundaryMap map[string]map[int][]int

// BuildBoundaryMap turns the mesh's named sidesets into the
// element-queryable form cached by set_boundary_conditions.
func BuildBoundaryMap(sidesets []Sideset) BoundaryMap {
	m := make(BoundaryMap, len(sidesets))
	for _, ss := range sidesets {
		byElem := make(map[int][]int)
		for _, ef := range ss.Faces {
			byElem[ef.Elem] = append(byElem[ef.Elem], ef.Face)
		}
		m[ss.Name] = byElem
	}
	return m
}

// FacesOf returns the local face ids of elem pinned by any of the named
// boundaries, used by set_boundary_conditions.
func (m BoundaryMap) FacesOf(elem int, names []string) []int {
	var out []int
	for _, name := range names {
		byElem, ok := m[name]
		if !ok {
			continue
		}
		out = append(out, byElem[elem]...)
	}
	return out
}

// PinnedGlobalDofs maps one element's face node indices (element-local,
// supplied by the caller, since only the element/physics layer knows how
// to enumerate face nodes for its shape) to global DoFs through the
// section, one output entry per input index.
func PinnedGlobalDofs(s *Section, elem int, faceLocalNodes []int) []int {
	idx := s.ElemGlobalIdx[elem]
	out := make([]int, len(faceLocalNodes))
	for i, p := range faceLocalNodes {
		out[i] = idx[p]
	}
	return out
}
