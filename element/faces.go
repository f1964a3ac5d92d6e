// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"math"

	"github.com/cpmech/gosem/reftab"
)

// faceSpec describes one face/edge of a shape in terms of the reference
// axis held fixed and the value (0 or N in tensor-index terms / zero
// barycentric index for simplices) that selects it.
type faceSpec struct {
	fixedAxis int     // tensor shapes: which reference axis is pinned
	atMax     bool    // tensor shapes: pinned at xi=+1 (true) or xi=-1 (false)
	baryIndex int     // simplices: which barycentric coordinate is zero on this face
}

// NumFaces returns the number of boundary faces/edges of the shape.
func (e *Element) NumFaces() int {
	switch e.Kind {
	case reftab.Quad, reftab.Tri:
		return e.Kind.Nverts() // one edge per vertex pair, same count as vertices
	case reftab.Hex:
		return 6
	case reftab.Tet:
		return 4
	}
	return 0
}

func faceSpecs(k reftab.Kind) []faceSpec {
	switch k {
	case reftab.Quad:
		return []faceSpec{{0, false, 0}, {1, true, 0}, {0, true, 0}, {1, false, 0}}
	case reftab.Hex:
		return []faceSpec{
			{2, false, 0}, {2, true, 0}, // bottom (k=0), top (k=N)
			{1, false, 0}, {1, true, 0}, // front (j=0), back (j=N)
			{0, false, 0}, {0, true, 0}, // left (i=0), right (i=N)
		}
	case reftab.Tri:
		return []faceSpec{{0, false, 0}, {0, false, 1}, {0, false, 2}}
	case reftab.Tet:
		return []faceSpec{{0, false, 0}, {0, false, 1}, {0, false, 2}, {0, false, 3}}
	}
	return nil
}

// FaceNodes returns the local (tensor-order) node indices lying on face
// id, for callers building the boundary DoF set (dof.PinnedGlobalDofs).
func (e *Element) FaceNodes(faceID int) []int {
	return e.faceNodeIndices(faceID)
}

// faceNodeIndices returns the tensor-order node indices lying on face id.
func (e *Element) faceNodeIndices(faceID int) []int {
	spec := faceSpecs(e.Kind)[faceID]
	var out []int
	if e.Kind.IsTensor() {
		for p, xi := range e.RefNodes {
			target := -1.0
			if spec.atMax {
				target = 1.0
			}
			if math.Abs(xi[spec.fixedAxis]-target) < 1e-9 {
				out = append(out, p)
			}
		}
		return out
	}
	// simplex: node p lies on the face iff its corresponding barycentric
	// index is (numerically) zero; reconstruct via the P1 vertex weights.
	for p, xi := range e.RefNodes {
		w := e.shape.InterpolateAt(xi)
		if w[spec.baryIndex] < 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

// ApplyTestAndIntegrateEdge computes the face/edge integral
// int_{face} f . phi_i dS for one boundary face, restricted to the face's
// own DoFs (all other entries of the returned vector are zero). For
// quad/hex the face's 2D (or 1D) geometric metric is obtained from the
// Jacobian columns of the face's free reference directions, and each face
// node is weighted by the product of the 1D GLL weights along those
// directions; for tri/tet the metric is built from the physical face
// vertices (simplexFaceMetric).
func (e *Element) ApplyTestAndIntegrateEdge(f []float64, faceID int) []float64 {
	nodes := e.faceNodeIndices(faceID)
	r := make([]float64, e.P)
	spec := faceSpecs(e.Kind)[faceID]
	for _, p := range nodes {
		var metric float64
		w := e.Weights[p]
		if e.Kind.IsTensor() {
			J, _, err := e.shape.JacobianAt(e.RefNodes[p], e.V)
			if err != nil {
				continue
			}
			metric = tensorFaceMetric(J, spec, e.Ndim)
			// drop the fixed axis' end-point GLL weight 2/(N(N+1)), leaving
			// the product of the 1D weights along the free axes
			w /= 2 / (float64(e.N) * float64(e.N+1))
		} else {
			metric = simplexFaceMetric(e.V, spec.baryIndex, e.Ndim)
		}
		r[p] = w * metric * f[p]
	}
	return r
}

// tensorFaceMetric extracts a tensor shape's face surface/length scaling
// factor from the full Jacobian J by dropping the column of the axis held
// fixed on the face and taking the norm (2D host shape: scalar) or
// cross-product magnitude (3D host shape: area element) of the remaining
// tangent vectors. Only valid for quad/hex, where every face is a
// fixed-reference-axis hyperplane.
func tensorFaceMetric(J [][]float64, spec faceSpec, d int) float64 {
	if d == 2 {
		free := 1 - spec.fixedAxis
		var sum float64
		for row := 0; row < d; row++ {
			sum += J[row][free] * J[row][free]
		}
		return math.Sqrt(sum)
	}
	// d == 3: two free axes
	var free []int
	for axis := 0; axis < d; axis++ {
		if axis != spec.fixedAxis {
			free = append(free, axis)
		}
	}
	t1 := []float64{J[0][free[0]], J[1][free[0]], J[2][free[0]]}
	t2 := []float64{J[0][free[1]], J[1][free[1]], J[2][free[1]]}
	cx := t1[1]*t2[2] - t1[2]*t2[1]
	cy := t1[2]*t2[0] - t1[0]*t2[2]
	cz := t1[0]*t2[1] - t1[1]*t2[0]
	return math.Sqrt(cx*cx + cy*cy + cz*cz)
}

// simplexFaceMetric computes a triangle/tetrahedron face's surface/length
// scaling factor directly from the physical vertex coordinates, not from
// any single fixed reference axis: a simplex face with barycentric index k
// is spanned by the OTHER vertices (every L_k=0 face excludes vertex k),
// so its tangent direction(s) are differences of those vertices' physical
// positions. This is exact for every face regardless of whether it happens
// to be axis-aligned in the reference coordinate system (only one face out
// of a triangle's three, and a tetrahedron's four, is). Each tangent is
// halved because the corresponding reference corners sit at a distance of
// 2 apart (-1 to 1), matching the tensor shapes' per-axis convention.
func simplexFaceMetric(V [][]float64, baryIndex, d int) float64 {
	var other []int
	for i := range V {
		if i != baryIndex {
			other = append(other, i)
		}
	}
	a := V[other[0]]
	b := V[other[1]]
	t1 := make([]float64, d)
	for axis := 0; axis < d; axis++ {
		t1[axis] = (b[axis] - a[axis]) / 2
	}
	if d == 2 {
		var sum float64
		for _, v := range t1 {
			sum += v * v
		}
		return math.Sqrt(sum)
	}
	// d == 3: triangular face, spanned by two tangents from vertex a.
	c := V[other[2]]
	t2 := make([]float64, d)
	for axis := 0; axis < d; axis++ {
		t2[axis] = (c[axis] - a[axis]) / 2
	}
	cx := t1[1]*t2[2] - t1[2]*t2[1]
	cy := t1[2]*t2[0] - t1[0]*t2[2]
	cz := t1[0]*t2[1] - t1[1]*t2[0]
	return math.Sqrt(cx*cx + cy*cy + cz*cz)
}
