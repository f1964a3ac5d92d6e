// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosem/element"
	"github.com/cpmech/gosem/reftab"
)

func unitQuad() [][]float64 {
	return [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
}

func unitTri() [][]float64 {
	return [][]float64{{-1, -1}, {1, -1}, {-1, 1}}
}

func constParams(names []string, nv int, vals map[string]float64) map[string][]float64 {
	out := make(map[string][]float64, len(names))
	for _, n := range names {
		v := make([]float64, nv)
		for i := range v {
			v[i] = vals[n]
		}
		out[n] = v
	}
	return out
}

// TestAcousticCFLPositive checks that Setup derives a positive CFL bound
// from VP, for both a tensor and a non-tensor shape.
func TestAcousticCFLPositive(t *testing.T) {
	for _, tc := range []struct {
		k reftab.Kind
		V [][]float64
	}{
		{reftab.Quad, unitQuad()},
		{reftab.Tri, unitTri()},
	} {
		e, err := element.New(0, tc.k, 4, tc.V)
		if err != nil {
			t.Fatalf("%s: New failed: %v", tc.k, err)
		}
		k := NewAcoustic()
		params := constParams([]string{"VP"}, tc.k.Nverts(), map[string]float64{"VP": 2.0})
		if err := k.Setup(e, params); err != nil {
			t.Fatalf("%s: Setup failed: %v", tc.k, err)
		}
		if k.CFL(e) <= 0 {
			t.Fatalf("%s: CFL() = %v, want > 0", tc.k, k.CFL(e))
		}
	}
}

// TestAcousticStiffnessActionZeroOnConstant checks that a spatially
// uniform pressure field produces zero stiffness action (grad is zero).
func TestAcousticStiffnessActionZeroOnConstant(t *testing.T) {
	e, err := element.New(0, reftab.Quad, 4, unitQuad())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	k := NewAcoustic()
	params := constParams([]string{"VP"}, 4, map[string]float64{"VP": 2.0})
	if err := k.Setup(e, params); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	u := make([]float64, e.P)
	for i := range u {
		u[i] = 3.14
	}
	r := k.StiffnessAction(e, map[string][]float64{"u": u})
	for _, v := range r["a"] {
		chk.Float64(t, "stiffness action on constant field", 1e-8, v, 0)
	}
}

// TestElastic2DDerivesLameParameters checks the (lambda, mu) formulas
// against hand-computed values for a simple (RHO, VP, VS) triple.
func TestElastic2DDerivesLameParameters(t *testing.T) {
	e, err := element.New(0, reftab.Quad, 4, unitQuad())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	k := NewElastic2D()
	params := constParams([]string{"VP", "VS", "RHO"}, 4, map[string]float64{"VP": 2, "VS": 1, "RHO": 2})
	if err := k.Setup(e, params); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	wantMu := 2.0     // RHO*VS^2 = 2*1
	wantLambda := 4.0 // RHO*VP^2 - 2*mu = 2*4 - 2*2
	for p := 0; p < e.P; p++ {
		chk.Float64(t, "mu", 1e-8, k.mu[p], wantMu)
		chk.Float64(t, "lambda", 1e-8, k.lambda[p], wantLambda)
	}
}

// TestElastic3DIsotropicRecovery checks that VSH==VSV and ETA==1
// collapses the VTI coefficients to the isotropic Lame relations, i.e.
// c11 - 2*c66 == c12 and c13 == c12.
func TestElastic3DIsotropicRecovery(t *testing.T) {
	V := [][]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	e, err := element.New(0, reftab.Hex, 3, V)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	k := NewElastic3D()
	params := constParams([]string{"VPV", "VPH", "VSV", "VSH", "ETA", "RHO"}, 8, map[string]float64{
		"VPV": 2, "VPH": 2, "VSV": 1, "VSH": 1, "ETA": 1, "RHO": 1,
	})
	if err := k.Setup(e, params); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	for p := 0; p < e.P; p++ {
		chk.Float64(t, "c13 == c12", 1e-8, k.c13[p], k.c12[p])
		chk.Float64(t, "c11-2c66 == c12", 1e-8, k.c11[p]-2*k.c66[p], k.c12[p])
	}
}

// TestDirichletZeroesPinnedNodes checks that wrapping a kernel in
// Dirichlet zeroes the pushed residual at the pinned local nodes,
// leaving the others untouched.
func TestDirichletZeroesPinnedNodes(t *testing.T) {
	e, err := element.New(0, reftab.Quad, 4, unitQuad())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	inner := NewAcoustic()
	params := constParams([]string{"VP"}, 4, map[string]float64{"VP": 2.0})
	if err := inner.Setup(e, params); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	d := NewDirichlet(inner)
	d.SetBoundaryConditions([]int{0})

	u := make([]float64, e.P)
	for i := range u {
		u[i] = float64(i + 1)
	}
	r := d.StiffnessAction(e, map[string][]float64{"u": u})
	if r["a"][0] != 0 {
		t.Fatalf("pinned node 0 not zeroed: got %v", r["a"][0])
	}

	rInner := inner.StiffnessAction(e, map[string][]float64{"u": u})
	for p := 1; p < len(rInner["a"]); p++ {
		chk.Float64(t, "non-pinned node untouched", 1e-12, r["a"][p], rInner["a"][p])
	}
}
