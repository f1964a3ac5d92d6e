// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "github.com/cpmech/gosem/element"

// Elastic3D implements the 3D vertically-transverse-isotropic (VTI)
// elastic wave equation: the nine strain components collapse
// to a Voigt-6 vector, stress is the fixed symmetric 6x6 matrix with
// entries (c11, c12, c13, c22, c23, c33, c44, c55, c66) derived from
// (RHO, VPV, VPH, VSV, VSH, ETA) via the standard transverse-isotropy
// parameterization (symmetry axis along z):
//
//	c33 = RHO*VPV^2      c44 = c55 = RHO*VSV^2
//	c11 = c22 = RHO*VPH^2  c66 = RHO*VSH^2
//	c12 = c11 - 2*c66      c13 = c23 = ETA*(c11 - 2*c44)
//
// ETA == 1 and VSH == VSV recovers the isotropic case. Pulls/pushes
// {ux, uy, uz} / {ax, ay, az}.
type Elastic3D struct {
	c11, c12, c13, c33, c44, c66 []float64
	rho                          []float64
	h                            float64
	vpmax                        float64
}

func NewElastic3D() *Elastic3D { return &Elastic3D{} }

func (k *Elastic3D) PullFields() []string { return []string{"ux", "uy", "uz"} }
func (k *Elastic3D) PushFields() []string { return []string{"ax", "ay", "az"} }

func (k *Elastic3D) Setup(e *element.Element, vp map[string][]float64) error {
	vpv := e.ParamAtIntPts(vp["VPV"])
	vph := e.ParamAtIntPts(vp["VPH"])
	vsv := e.ParamAtIntPts(vp["VSV"])
	vsh := e.ParamAtIntPts(vp["VSH"])
	eta := e.ParamAtIntPts(vp["ETA"])
	rho := e.ParamAtIntPts(vp["RHO"])
	n := e.P
	k.c11 = make([]float64, n)
	k.c12 = make([]float64, n)
	k.c13 = make([]float64, n)
	k.c33 = make([]float64, n)
	k.c44 = make([]float64, n)
	k.c66 = make([]float64, n)
	k.rho = rho
	vpmax := 0.0
	for i := 0; i < n; i++ {
		c11 := rho[i] * vph[i] * vph[i]
		c33 := rho[i] * vpv[i] * vpv[i]
		c44 := rho[i] * vsv[i] * vsv[i]
		c66 := rho[i] * vsh[i] * vsh[i]
		k.c11[i] = c11
		k.c33[i] = c33
		k.c44[i] = c44
		k.c66[i] = c66
		k.c12[i] = c11 - 2*c66
		k.c13[i] = eta[i] * (c11 - 2*c44)
		if vph[i] > vpmax {
			vpmax = vph[i]
		}
		if vpv[i] > vpmax {
			vpmax = vpv[i]
		}
	}
	k.vpmax = vpmax
	k.h = e.CFL()
	return nil
}

func (k *Elastic3D) StiffnessAction(e *element.Element, pulled map[string][]float64) map[string][]float64 {
	gx := e.ComputeGradient(pulled["ux"])
	gy := e.ComputeGradient(pulled["uy"])
	gz := e.ComputeGradient(pulled["uz"])
	n := e.P
	sxx := make([]float64, n)
	syy := make([]float64, n)
	szz := make([]float64, n)
	syz := make([]float64, n)
	sxz := make([]float64, n)
	sxy := make([]float64, n)
	for p := 0; p < n; p++ {
		exx, eyy, ezz := gx[0][p], gy[1][p], gz[2][p]
		gyz := gy[2][p] + gz[1][p]
		gxz := gx[2][p] + gz[0][p]
		gxy := gx[1][p] + gy[0][p]
		sxx[p] = k.c11[p]*exx + k.c12[p]*eyy + k.c13[p]*ezz
		syy[p] = k.c12[p]*exx + k.c11[p]*eyy + k.c13[p]*ezz
		szz[p] = k.c13[p]*exx + k.c13[p]*eyy + k.c33[p]*ezz
		syz[p] = k.c44[p] * gyz
		sxz[p] = k.c44[p] * gxz
		sxy[p] = k.c66[p] * gxy
	}
	Fx := [][]float64{sxx, sxy, sxz}
	Fy := [][]float64{sxy, syy, syz}
	Fz := [][]float64{sxz, syz, szz}
	return map[string][]float64{
		"ax": e.ApplyGradTestAndIntegrate(Fx),
		"ay": e.ApplyGradTestAndIntegrate(Fy),
		"az": e.ApplyGradTestAndIntegrate(Fz),
	}
}

func (k *Elastic3D) Mass(e *element.Element) map[string][]float64 {
	m := e.AssembleMassMatrix(k.rho)
	my := append([]float64(nil), m...)
	mz := append([]float64(nil), m...)
	return map[string][]float64{"ax": m, "ay": my, "az": mz}
}

func (k *Elastic3D) CFL(e *element.Element) float64 {
	if k.vpmax <= 0 {
		return 0
	}
	return 1.0 * k.h / k.vpmax
}
