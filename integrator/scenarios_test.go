// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/cpmech/gosem/dof"
	"github.com/cpmech/gosem/element"
	"github.com/cpmech/gosem/physics"
	"github.com/cpmech/gosem/reftab"
)

// acousticEigenmode is the separable standing wave sin(pi(x+1)/2) *
// sin(pi(y+1)/2) on [-1,1]^2 with VP=1 and all-Dirichlet boundaries,
// i.e. -Laplacian(mode) = (pi^2/2) * mode, so u(x,y,t) = cos(omega*t) *
// mode(x,y) solves u_tt = Laplacian(u) exactly, with omega = pi/sqrt(2).
func acousticEigenmode(x, y float64) float64 {
	return math.Sin(math.Pi*(x+1)/2) * math.Sin(math.Pi*(y+1)/2)
}

const eigenmodeOmega = math.Pi / math.Sqrt2

// dirichletFace pairs an element index with one of its local face ids
// that must be pinned to homogeneous Dirichlet conditions.
type dirichletFace struct {
	elem int
	face int
}

// buildGridDriver assembles a Driver from a list of elements, a uniform
// acoustic kernel (VP=1), and a set of boundary faces to pin, seeding the
// initial displacement from ic and leaving velocity at zero.
func buildGridDriver(t *testing.T, elems []*element.Element, dirichlet []dirichletFace, ic func(x, y float64) float64) *Driver {
	t.Helper()

	kernels := make([]physics.Kernel, len(elems))
	physNodes := make([][][]float64, len(elems))
	for i, e := range elems {
		k := physics.NewAcoustic()
		vp := make([]float64, e.Kind.Nverts())
		for j := range vp {
			vp[j] = 1
		}
		if err := k.Setup(e, map[string][]float64{"VP": vp}); err != nil {
			t.Fatalf("Setup failed on element %d: %v", i, err)
		}
		kernels[i] = k
		physNodes[i] = e.PhysNodes
	}

	byElem := make(map[int][]int)
	for _, df := range dirichlet {
		byElem[df.elem] = append(byElem[df.elem], elems[df.elem].FaceNodes(df.face)...)
	}
	for i, nodes := range byElem {
		wrapped := physics.NewDirichlet(kernels[i])
		wrapped.SetBoundaryConditions(nodes)
		kernels[i] = wrapped
	}

	section := dof.BuildSection(physNodes, 1e-8)
	d := New(elems, kernels, section)

	for i, nodes := range byElem {
		d.SetHomogeneousDirichlet(i, nodes)
	}

	for e, elm := range elems {
		idx := section.ElemGlobalIdx[e]
		for p, x := range elm.PhysNodes {
			d.state["u"][idx[p]] = ic(x[0], x[1])
		}
	}
	return d
}

// linfError returns the largest |numeric - exact| over every global dof,
// with exact evaluated at the dof's first owning element's physical node.
func linfError(d *Driver, elems []*element.Element, exact func(x, y float64) float64) float64 {
	seen := make(map[int]bool)
	var worst float64
	for e, elm := range elems {
		idx := d.Section.ElemGlobalIdx[e]
		for p, x := range elm.PhysNodes {
			g := idx[p]
			if seen[g] {
				continue
			}
			seen[g] = true
			diff := math.Abs(d.state["u"][g] - exact(x[0], x[1]))
			if diff > worst {
				worst = diff
			}
		}
	}
	return worst
}

// quad2x2Grid builds the four quad elements tiling [-1,1]^2 as a 2x2
// grid of unit squares, plus the local (elem, face) pairs lying on the
// outer boundary (faceSpecs(Quad): 0=left r=-1, 1=top s=+1, 2=right
// r=+1, 3=bottom s=-1).
func quad2x2Grid(t *testing.T, N int) ([]*element.Element, []dirichletFace) {
	t.Helper()
	type cell struct {
		bl, br, tr, tl [2]float64
		faces          []int // local faces lying on the domain boundary
	}
	cells := []cell{
		{[2]float64{-1, -1}, [2]float64{0, -1}, [2]float64{0, 0}, [2]float64{-1, 0}, []int{0, 3}},  // bottom-left
		{[2]float64{0, -1}, [2]float64{1, -1}, [2]float64{1, 0}, [2]float64{0, 0}, []int{2, 3}},    // bottom-right
		{[2]float64{-1, 0}, [2]float64{0, 0}, [2]float64{0, 1}, [2]float64{-1, 1}, []int{0, 1}},    // top-left
		{[2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1}, []int{1, 2}},      // top-right
	}
	var elems []*element.Element
	var dirichlet []dirichletFace
	for id, c := range cells {
		V := [][]float64{
			{c.bl[0], c.bl[1]}, {c.br[0], c.br[1]}, {c.tr[0], c.tr[1]}, {c.tl[0], c.tl[1]},
		}
		e, err := element.New(id, reftab.Quad, N, V)
		if err != nil {
			t.Fatalf("New(Quad) failed: %v", err)
		}
		elems = append(elems, e)
		for _, f := range c.faces {
			dirichlet = append(dirichlet, dirichletFace{elem: id, face: f})
		}
	}
	return elems, dirichlet
}

// tri2x2Grid splits the same 2x2 grid of unit squares into 8 triangles
// (each square cut along its bl-tr diagonal), exercising the non-tensor
// face-node enumeration for the Dirichlet boundary (faceSpecs(Tri):
// baryIndex 0 opposite V0, 1 opposite V1, 2 opposite V2).
func tri2x2Grid(t *testing.T, N int) ([]*element.Element, []dirichletFace) {
	t.Helper()
	type square struct {
		bl, br, tr, tl [2]float64
		bottomBoundary bool
		topBoundary    bool
		leftBoundary   bool
		rightBoundary  bool
	}
	squares := []square{
		{[2]float64{-1, -1}, [2]float64{0, -1}, [2]float64{0, 0}, [2]float64{-1, 0}, true, false, true, false},
		{[2]float64{0, -1}, [2]float64{1, -1}, [2]float64{1, 0}, [2]float64{0, 0}, true, false, false, true},
		{[2]float64{-1, 0}, [2]float64{0, 0}, [2]float64{0, 1}, [2]float64{-1, 1}, false, true, true, false},
		{[2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1}, false, true, false, true},
	}
	var elems []*element.Element
	var dirichlet []dirichletFace
	id := 0
	for _, sq := range squares {
		// triangle A: bl, br, tr -- face2 (V0-V1) is the bottom edge,
		// face0 (V1-V2) is the right edge, face1 (V0-V2) is the diagonal.
		{
			V := [][]float64{
				{sq.bl[0], sq.bl[1]}, {sq.br[0], sq.br[1]}, {sq.tr[0], sq.tr[1]},
			}
			e, err := element.New(id, reftab.Tri, N, V)
			if err != nil {
				t.Fatalf("New(Tri) failed: %v", err)
			}
			elems = append(elems, e)
			if sq.bottomBoundary {
				dirichlet = append(dirichlet, dirichletFace{elem: id, face: 2})
			}
			if sq.rightBoundary {
				dirichlet = append(dirichlet, dirichletFace{elem: id, face: 0})
			}
			id++
		}
		// triangle B: bl, tr, tl -- face1 (V0-V2) is the left edge,
		// face0 (V1-V2) is the top edge, face2 (V0-V1) is the diagonal.
		{
			V := [][]float64{
				{sq.bl[0], sq.bl[1]}, {sq.tr[0], sq.tr[1]}, {sq.tl[0], sq.tl[1]},
			}
			e, err := element.New(id, reftab.Tri, N, V)
			if err != nil {
				t.Fatalf("New(Tri) failed: %v", err)
			}
			elems = append(elems, e)
			if sq.leftBoundary {
				dirichlet = append(dirichlet, dirichletFace{elem: id, face: 1})
			}
			if sq.topBoundary {
				dirichlet = append(dirichlet, dirichletFace{elem: id, face: 0})
			}
			id++
		}
	}
	return elems, dirichlet
}

// TestEigenmodeConvergenceQuad is scenario E1: a 2x2 quad acoustic
// eigenmode on [-1,1]^2, N=3, homogeneous VP=1, all-Dirichlet, run from
// the exact standing-wave initial condition for duration sqrt(2)/2 at
// omega*duration == pi/2 (where the exact solution is instantaneously
// zero), within the error ceiling below.
func TestEigenmodeConvergenceQuad(t *testing.T) {
	elems, dirichlet := quad2x2Grid(t, 3)
	d := buildGridDriver(t, elems, dirichlet, acousticEigenmode)
	d.Dt = 3e-3
	d.Duration = math.Sqrt2 / 2
	if err := d.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	exact := func(x, y float64) float64 { return math.Cos(eigenmodeOmega*d.T) * acousticEigenmode(x, y) }
	errLinf := linfError(d, elems, exact)
	const tol = 1.1 * 1.80304e-4
	if errLinf > tol {
		t.Fatalf("Linf error = %v, want <= %v", errLinf, tol)
	}
}

// TestEigenmodeConvergenceTri is scenario E2: the same eigenmode problem
// on a 2x2 grid of triangles instead of quads, exercising the simplex
// face-node enumeration for the Dirichlet boundary.
func TestEigenmodeConvergenceTri(t *testing.T) {
	elems, dirichlet := tri2x2Grid(t, 3)
	d := buildGridDriver(t, elems, dirichlet, acousticEigenmode)
	d.Dt = 3e-3
	d.Duration = math.Sqrt2 / 2
	if err := d.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	exact := func(x, y float64) float64 { return math.Cos(eigenmodeOmega*d.T) * acousticEigenmode(x, y) }
	errLinf := linfError(d, elems, exact)
	const tol = 1.1 * 1.83694e-4
	if errLinf > tol {
		t.Fatalf("Linf error = %v, want <= %v", errLinf, tol)
	}
}

// TestTimeReversalReturnsToInitialDisplacement checks property #8: with
// zero sources, zero velocity, and a symmetric initial displacement,
// running N steps forward then flipping the sign of Dt for N steps
// returns u to its initial value within floating-point round error.
func TestTimeReversalReturnsToInitialDisplacement(t *testing.T) {
	d, e := singleAcousticDriver(t)
	d.Dt = 1e-3

	initial := make([]float64, d.Section.NumGlobal)
	for p, xi := range e.RefNodes {
		g := d.Section.ElemGlobalIdx[0][p]
		initial[g] = math.Cos(xi[0]) * math.Cos(xi[1])
	}
	copy(d.state["u"], initial)

	const steps = 20
	for i := 0; i < steps; i++ {
		if err := d.RunStep(); err != nil {
			t.Fatalf("forward step %d failed: %v", i, err)
		}
	}
	d.Dt = -d.Dt
	for i := 0; i < steps; i++ {
		if err := d.RunStep(); err != nil {
			t.Fatalf("backward step %d failed: %v", i, err)
		}
	}
	for g, want := range initial {
		got := d.state["u"][g]
		if math.Abs(got-want) > 1e-6 {
			t.Fatalf("u[%d] = %v after forward+backward run, want %v (time-reversal)", g, got, want)
		}
	}
}
