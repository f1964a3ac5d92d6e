// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/cpmech/gosem/element"

// Elastic2D implements the isotropic 2D elastic wave equation: strain
// from grad(u) per column, stress from Hooke's law with
// (lambda, mu) derived from (VP, VS, RHO). Pulls {ux, uy}, pushes
// {ax, ay}.
//
// Unlike Acoustic, the bilinear form couples ux and uy through lambda,
// so there is no scalar dense K to precompute for simplices; both shape
// families go through ComputeGradient + ApplyGradTestAndIntegrate every
// step.
type Elastic2D struct {
	lambda, mu []float64
	rho        []float64
	h          float64
	vpmax      float64
}

func NewElastic2D() *Elastic2D { return &Elastic2D{} }

func (k *Elastic2D) PullFields() []string { return []string{"ux", "uy"} }
func (k *Elastic2D) PushFields() []string { return []string{"ax", "ay"} }

func (k *Elastic2D) Setup(e *element.Element, vp map[string][]float64) error {
	nodeVP := e.ParamAtIntPts(vp["VP"])
	nodeVS := e.ParamAtIntPts(vp["VS"])
	nodeRho := e.ParamAtIntPts(vp["RHO"])
	n := e.P
	k.lambda = make([]float64, n)
	k.mu = make([]float64, n)
	k.rho = nodeRho
	vpmax := 0.0
	for i := 0; i < n; i++ {
		mu := nodeRho[i] * nodeVS[i] * nodeVS[i]
		lambda := nodeRho[i]*nodeVP[i]*nodeVP[i] - 2*mu
		k.mu[i] = mu
		k.lambda[i] = lambda
		if nodeVP[i] > vpmax {
			vpmax = nodeVP[i]
		}
	}
	k.vpmax = vpmax
	k.h = e.CFL()
	return nil
}

func (k *Elastic2D) StiffnessAction(e *element.Element, pulled map[string][]float64) map[string][]float64 {
	gradX := e.ComputeGradient(pulled["ux"])
	gradY := e.ComputeGradient(pulled["uy"])
	n := e.P
	sigXX := make([]float64, n)
	sigYY := make([]float64, n)
	sigXY := make([]float64, n)
	for p := 0; p < n; p++ {
		exx := gradX[0][p]
		eyy := gradY[1][p]
		exy := 0.5 * (gradX[1][p] + gradY[0][p])
		trace := exx + eyy
		sigXX[p] = k.lambda[p]*trace + 2*k.mu[p]*exx
		sigYY[p] = k.lambda[p]*trace + 2*k.mu[p]*eyy
		sigXY[p] = 2 * k.mu[p] * exy
	}
	Fx := [][]float64{sigXX, sigXY}
	Fy := [][]float64{sigXY, sigYY}
	return map[string][]float64{
		"ax": e.ApplyGradTestAndIntegrate(Fx),
		"ay": e.ApplyGradTestAndIntegrate(Fy),
	}
}

func (k *Elastic2D) Mass(e *element.Element) map[string][]float64 {
	m := e.AssembleMassMatrix(k.rho)
	my := append([]float64(nil), m...)
	return map[string][]float64{"ax": m, "ay": my}
}

func (k *Elastic2D) CFL(e *element.Element) float64 {
	if k.vpmax <= 0 {
		return 0
	}
	return 1.0 * k.h / k.vpmax
}
