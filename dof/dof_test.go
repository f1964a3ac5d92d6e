// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// TestBuildSectionDedupsSharedVertex checks that two elements sharing
// two physical coordinates collapse to a single global index at each.
func TestBuildSectionDedupsSharedVertex(t *testing.T) {
	elemA := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	elemB := [][]float64{{1, 0}, {2, 0}, {1, 1}}
	s := BuildSection([][][]float64{elemA, elemB}, 1e-8)

	if s.NumGlobal != 4 {
		t.Fatalf("NumGlobal = %d, want 4 (6 local nodes, 2 shared pairs)", s.NumGlobal)
	}
	if s.ElemGlobalIdx[0][1] != s.ElemGlobalIdx[1][0] {
		t.Fatalf("shared vertex (1,0) did not receive the same global index: %d != %d",
			s.ElemGlobalIdx[0][1], s.ElemGlobalIdx[1][0])
	}
	if s.ElemGlobalIdx[0][2] != s.ElemGlobalIdx[1][2] {
		t.Fatalf("shared vertex (1,1) did not receive the same global index: %d != %d",
			s.ElemGlobalIdx[0][2], s.ElemGlobalIdx[1][2])
	}
}

// TestClosureSetGetRoundTrip checks that scattering a local element
// vector into a global buffer and gathering it back reproduces the
// original values when no sharing occurs.
func TestClosureSetGetRoundTrip(t *testing.T) {
	elemA := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	s := BuildSection([][][]float64{elemA}, 1e-8)

	v := make([]float64, s.NumGlobal)
	fe := []float64{1.5, -2.0, 3.25}
	s.ClosureSet(v, 0, fe, false)

	got := s.ClosureGet(v, 0)
	for i := range fe {
		chk.Float64(t, "closure round trip", 1e-12, got[i], fe[i])
	}
}

// TestClosureSetAddAccumulates checks the additive scatter used by
// stiffness-action assembly: two contributions to the same shared node
// must sum rather than overwrite.
func TestClosureSetAddAccumulates(t *testing.T) {
	elemA := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	elemB := [][]float64{{1, 0}, {2, 0}, {1, 1}}
	s := BuildSection([][][]float64{elemA, elemB}, 1e-8)

	v := make([]float64, s.NumGlobal)
	s.ClosureSet(v, 0, []float64{1, 2, 3}, true)
	s.ClosureSet(v, 1, []float64{10, 20, 30}, true)

	shared := s.ElemGlobalIdx[0][1] // elemA's (1,0), shared with elemB's (1,0)
	chk.Float64(t, "shared node accumulated", 1e-12, v[shared], 12)
}

// TestAssembleMassReciprocates checks that AssembleMass inverts the
// summed lumped mass and panics-free on a strictly positive input.
func TestAssembleMassReciprocates(t *testing.T) {
	elemA := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	s := BuildSection([][][]float64{elemA}, 1e-8)

	mi := AssembleMass(s, [][]float64{{2, 4, 8}})
	chk.Float64(t, "mi[0]", 1e-12, mi[0], 0.5)
	chk.Float64(t, "mi[1]", 1e-12, mi[1], 0.25)
	chk.Float64(t, "mi[2]", 1e-12, mi[2], 0.125)
}

// TestFieldLocalToGlobalSingleRank checks that on a single rank
// LocalToGlobal is a plain copy.
func TestFieldLocalToGlobalSingleRank(t *testing.T) {
	elemA := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	s := BuildSection([][][]float64{elemA}, 1e-8)
	f := NewField("a", s)
	f.Local[1] = 42
	f.LocalToGlobal()
	chk.Float64(t, "global copy", 1e-12, f.Global[1], 42)
}

// TestPinnedGlobalDofs checks that PinnedGlobalDofs maps element-local
// face node indices through the section to the right global indices.
func TestPinnedGlobalDofs(t *testing.T) {
	elemA := [][]float64{{0, 0}, {1, 0}, {1, 1}}
	s := BuildSection([][][]float64{elemA}, 1e-8)
	got := PinnedGlobalDofs(s, 0, []int{0, 2})
	want := []int{s.ElemGlobalIdx[0][0], s.ElemGlobalIdx[0][2]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PinnedGlobalDofs[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestBoundaryMapFacesOf checks FacesOf unions multiple named sidesets
// for the same element.
func TestBoundaryMapFacesOf(t *testing.T) {
	m := BuildBoundaryMap([]Sideset{
		{Name: "left", Faces: []ElemFace{{Elem: 0, Face: 0}}},
		{Name: "bottom", Faces: []ElemFace{{Elem: 0, Face: 3}, {Elem: 1, Face: 3}}},
	})
	faces := m.FacesOf(0, []string{"left", "bottom"})
	if len(faces) != 2 {
		t.Fatalf("FacesOf(0) = %v, want 2 entries", faces)
	}
}
