// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import "github.com/cpmech/gosem/reftab"

func interpAtXi(xi []float64, N int, k reftab.Kind) ([]float64, error) {
	return reftab.Interp(xi, N, k)
}

// InterpAt returns the basis values l_i(xi) at an arbitrary reference
// point, used to sample a nodal field at a receiver's localized
// coordinate.
func (e *Element) InterpAt(xi []float64) ([]float64, error) {
	return interpAtXi(xi, e.N, e.Kind)
}

// BuildStiffnessMatrix pre-forms the dense K = int (grad phi_i).c(x).(grad
// phi_j) dOmega once, used thereafter as K.u; sum-factorization gives no
// win on simplices, so tri/tet elements build and keep the dense matrix
// instead. cNodes is the scalar acoustic wave-speed-squared
// (or any scalar constitutive coefficient) at every node.
func (e *Element) BuildStiffnessMatrix(cNodes []float64) [][]float64 {
	K := make([][]float64, e.P)
	for i := range K {
		K[i] = make([]float64, e.P)
	}
	d := e.Ndim
	// grad of every basis function j, in physical coordinates, at every
	// node: gradBasis[j][axis][p]
	gradBasis := make([][][]float64, e.P)
	for j := 0; j < e.P; j++ {
		ej := make([]float64, e.P)
		ej[j] = 1
		gradBasis[j] = e.ComputeGradient(ej)
	}
	for j := 0; j < e.P; j++ {
		F := make([][]float64, d)
		for axis := 0; axis < d; axis++ {
			F[axis] = make([]float64, e.P)
			for p := 0; p < e.P; p++ {
				F[axis][p] = cNodes[p] * gradBasis[j][axis][p]
			}
		}
		col := e.ApplyGradTestAndIntegrate(F)
		for i := 0; i < e.P; i++ {
			K[i][j] = col[i]
		}
	}
	return K
}
