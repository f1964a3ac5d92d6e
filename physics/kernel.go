// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package physics implements component D: the constitutive layer on top
// of the element operators (component C). Each kernel declares the
// fields it pulls from and pushes into the global DoF vectors and knows
// how to turn a pulled displacement/pressure field into the stiffness
// action K·u for its element.
package physics

import "github.com/cpmech/gosem/element"

// Kernel is the physics contract every concrete wave equation satisfies.
type Kernel interface {
	PullFields() []string
	PushFields() []string

	// Setup caches whatever the kernel needs from the element's vertex
	// material parameters; called once
	// per element after construction, before the time loop starts.
	Setup(e *element.Element, vertexParams map[string][]float64) error

	// StiffnessAction returns, for each push field, the vector K·u
	// (before applying the sign and mass inverse), given the pulled
	// fields at the element's nodes in tensor order.
	StiffnessAction(e *element.Element, pulled map[string][]float64) map[string][]float64

	// Mass returns the diagonal lumped mass contribution for every push
	// field.
	Mass(e *element.Element) map[string][]float64

	// CFL returns C * h_e / v_max for the element's own wave speed.
	CFL(e *element.Element) float64
}

// stiffnessOf applies the scalar-coefficient Laplacian-like bilinear form
// int (grad phi_i) . (coef(xi) grad u) dOmega used by the acoustic
// kernel: when a cached dense stiffness matrix is given (simplices, where
// sum factorization gives no win) it applies that; otherwise it goes
// through the sum-factorized gradient/apply pair directly, since
// re-forming K every step would defeat the point of sum factorization.
func stiffnessOf(e *element.Element, coef []float64, Kdense [][]float64, u []float64) []float64 {
	if Kdense != nil {
		r := make([]float64, e.P)
		for i := range r {
			for j, uj := range u {
				r[i] += Kdense[i][j] * uj
			}
		}
		return r
	}
	grad := e.ComputeGradient(u)
	F := make([][]float64, e.Ndim)
	for axis := range F {
		F[axis] = make([]float64, e.P)
		for p := range F[axis] {
			F[axis][p] = coef[p] * grad[axis][p]
		}
	}
	return e.ApplyGradTestAndIntegrate(F)
}
