// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dof

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
)

// Field is a named pair (local, global) of distributed vectors sharing a
// Section, stored as la.Vector (gosl's own dense-vector type) so the
// rest of the engine can hand these buffers to any other gosl/la
// routine without copying. On a single rank local and global coincide
// byte-for-byte; across ranks every rank replicates the whole global
// vector and LocalToGlobal performs a real collective sum-reduction, so
// correctness does not depend on a partitioner being present.
type Field struct {
	Name    string
	Section *Section
	Local   la.Vector
	Global  la.Vector
}

// NewField allocates a zeroed field over the given section.
func NewField(name string, s *Section) *Field {
	return &Field{Name: name, Section: s, Local: la.NewVector(s.NumGlobal), Global: la.NewVector(s.NumGlobal)}
}

// Zero clears the local (push) buffer; step 2 of the time loop.
func (f *Field) Zero() {
	for i := range f.Local {
		f.Local[i] = 0
	}
}

// LocalToGlobal sums (ADD) every rank's local contributions into the
// replicated global vector via a collective all-reduce.
func (f *Field) LocalToGlobal() {
	if mpi.IsOn() && mpi.Size() > 1 {
		mpi.AllReduceSum(f.Global, f.Local)
		return
	}
	copy(f.Global, f.Local)
}

// GlobalToLocal copies (INSERT) the assembled global vector back into the
// local buffer, e.g. before pulling fields into element-local buffers.
func (f *Field) GlobalToLocal() {
	copy(f.Local, f.Global)
}

// AssembleMass builds the field's diagonal lumped mass from per-element
// mass contributions, checks the "mi > 0" invariant right after assembly,
// and returns its componentwise reciprocal as a new slice.
func AssembleMass(s *Section, elemMass [][]float64) []float64 {
	mi := NewField("mi", s)
	for e, me := range elemMass {
		s.ClosureSet(mi.Local, e, me, true)
	}
	mi.LocalToGlobal()
	checkPositive(mi.Global, "mi (pre-inversion mass)")
	out := make([]float64, s.NumGlobal)
	for i, m := range mi.Global {
		out[i] = 1 / m
	}
	return out
}
