// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh bridges the Exodus seam (meshio) to the engine's own
// types: it builds one element.Element per block entry, a shared
// dof.Section over all of them, and the per-vertex material parameter
// maps each physics.Kernel.Setup needs.
package mesh

import (
	"github.com/cpmech/gosem/dof"
	"github.com/cpmech/gosem/element"
	"github.com/cpmech/gosem/meshio"
	"github.com/cpmech/gosem/reftab"
)

// Block describes one Exodus element block: its shape kind and the
// block id used to locate its connectivity table (the polynomial order
// is passed to Build separately).
type Block struct {
	BlockID int
	Kind    reftab.Kind
}

// Mesh holds everything built from one Exodus mesh file plus the
// companion material-model file.
type Mesh struct {
	Elems    []*element.Element
	Section  *dof.Section
	Boundary dof.BoundaryMap

	// VertexParams holds, per element (same order as Elems), the named
	// material fields sampled at the element's own vertex coordinates -
	// the input physics.Kernel.Setup consumes via element.ParamAtIntPts.
	VertexParams []map[string][]float64
}

// paramNames lists every nodal field the material-model file may carry;
// a kernel's Setup reads only the subset relevant to its wave equation.
var paramNames = []string{"RHO", "VP", "VS", "VPV", "VPH", "VSV", "VSH", "ETA"}

// Build reads connectivity and coordinates from meshR for every block,
// constructs one element.Element per entry (order N, ambient dimension
// dim), reads the named nodal fields from modelR, and assembles the
// shared dof.Section by deduplicating coincident physical coordinates.
func Build(meshR *meshio.ExodusReader, modelR *meshio.ExodusReader, blocks []Block, N, dim int, coordTol float64) (*Mesh, error) {
	coords, err := meshR.Coords(dim)
	if err != nil {
		return nil, err
	}

	fields := make(map[string][]float64)
	for _, name := range paramNames {
		v, err := modelR.NodalField(name)
		if err == nil {
			fields[name] = v
		}
	}

	var elems []*element.Element
	var vertexParams []map[string][]float64
	var physNodesPerElem [][][]float64

	id := 0
	for _, b := range blocks {
		nv := b.Kind.Nverts()
		conn, err := meshR.Connectivity(b.BlockID, nv)
		if err != nil {
			return nil, err
		}
		for _, row := range conn {
			V := make([][]float64, nv)
			for i, gnode := range row {
				V[i] = coords[gnode]
			}
			e, err := element.New(id, b.Kind, N, V)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			physNodesPerElem = append(physNodesPerElem, e.PhysNodes)

			params := make(map[string][]float64, len(fields))
			for name, vals := range fields {
				vertexVals := make([]float64, nv)
				for i, gnode := range row {
					vertexVals[i] = vals[gnode]
				}
				params[name] = vertexVals
			}
			vertexParams = append(vertexParams, params)
			id++
		}
	}

	section := dof.BuildSection(physNodesPerElem, coordTol)

	return &Mesh{
		Elems:        elems,
		Section:      section,
		VertexParams: vertexParams,
	}, nil
}

// BuildBoundary reads every named sideset from meshR and assembles the
// engine's BoundaryMap.
func BuildBoundary(meshR *meshio.ExodusReader, names []string) (dof.BoundaryMap, error) {
	sidesets := make([]dof.Sideset, 0, len(names))
	for _, name := range names {
		elems, faces, err := meshR.Sideset(name)
		if err != nil {
			return nil, err
		}
		ef := make([]dof.ElemFace, len(elems))
		for i := range elems {
			ef[i] = dof.ElemFace{Elem: elems[i], Face: faces[i]}
		}
		sidesets = append(sidesets, dof.Sideset{Name: name, Faces: ef})
	}
	return dof.BuildBoundaryMap(sidesets), nil
}
