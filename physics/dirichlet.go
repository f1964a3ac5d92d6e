// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/cpmech/gosem/element"

// Dirichlet wraps an inner Kernel and records which local (tensor-order)
// node indices are pinned by a homogeneous essential boundary condition;
// after every stiffness compute it zeroes the pushed residual on those
// nodes, equivalently forcing acceleration to zero there after the mass
// solve.
type Dirichlet struct {
	Kernel
	pinned map[int]bool
}

// NewDirichlet wraps inner, initially with no pinned nodes.
func NewDirichlet(inner Kernel) *Dirichlet {
	return &Dirichlet{Kernel: inner, pinned: make(map[int]bool)}
}

// SetBoundaryConditions records the element-local node indices pinned on
// this element (e.g. from element.FaceNodes for every boundary face in
// the active homogeneous-Dirichlet sidesets).
func (d *Dirichlet) SetBoundaryConditions(localNodes []int) {
	for _, p := range localNodes {
		d.pinned[p] = true
	}
}

func (d *Dirichlet) StiffnessAction(e *element.Element, pulled map[string][]float64) map[string][]float64 {
	r := d.Kernel.StiffnessAction(e, pulled)
	d.zeroPinned(r)
	return r
}

func (d *Dirichlet) zeroPinned(fields map[string][]float64) {
	for _, v := range fields {
		for p := range d.pinned {
			v[p] = 0
		}
	}
}
