// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/cpmech/gosem/element"

// Acoustic implements the scalar wave equation K·u = int grad(phi) . (c^2
// grad u), c = VP, Pulls {u}, pushes {a}.
type Acoustic struct {
	c2    []float64   // VP^2 at every node
	Kdense [][]float64 // non-nil for simplices, cached once in Setup
	h     float64
	vmax  float64
}

func NewAcoustic() *Acoustic { return &Acoustic{} }

func (k *Acoustic) PullFields() []string { return []string{"u"} }
func (k *Acoustic) PushFields() []string { return []string{"a"} }

func (k *Acoustic) Setup(e *element.Element, vertexParams map[string][]float64) error {
	vp := e.ParamAtIntPts(vertexParams["VP"])
	k.c2 = make([]float64, len(vp))
	vmax := 0.0
	for i, v := range vp {
		k.c2[i] = v * v
		if v > vmax {
			vmax = v
		}
	}
	k.vmax = vmax
	k.h = e.CFL()
	if !e.Kind.IsTensor() {
		k.Kdense = e.BuildStiffnessMatrix(k.c2)
	}
	return nil
}

func (k *Acoustic) StiffnessAction(e *element.Element, pulled map[string][]float64) map[string][]float64 {
	return map[string][]float64{"a": stiffnessOf(e, k.c2, k.Kdense, pulled["u"])}
}

func (k *Acoustic) Mass(e *element.Element) map[string][]float64 {
	rho := make([]float64, e.P)
	for i := range rho {
		rho[i] = 1
	}
	return map[string][]float64{"a": e.AssembleMassMatrix(rho)}
}

// CFL returns C*h_e/v_max with C=1.0 for Newmark-2.
func (k *Acoustic) CFL(e *element.Element) float64 {
	if k.vmax <= 0 {
		return 0
	}
	return 1.0 * k.h / k.vmax
}
