// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// ApplyTestAndIntegrate returns r_i = w_i * det(J_i) * f_i.
func (e *Element) ApplyTestAndIntegrate(f []float64) []float64 {
	r := make([]float64, e.P)
	for p := 0; p < e.P; p++ {
		r[p] = e.Weights[p] * e.detJAt(p) * f[p]
	}
	return r
}

// AssembleMassMatrix returns the diagonal lumped mass m_e, computed as
// apply_test_and_integrate(rho); rho is 1 for the acoustic pressure
// formulation. For tri/tet the mass matrix is diagonal by construction of
// the simplex quadrature collocated with the nodes; for quad/hex it is
// diagonal because the GLL quadrature is collocated with the GLL nodes.
func (e *Element) AssembleMassMatrix(rho []float64) []float64 {
	return e.ApplyTestAndIntegrate(rho)
}

// ApplyGradTestAndIntegrate computes r_i = int_Omega (grad phi_i) . F dOmega
// for a physical vector field F given as F[axis][p] at every node.
//
// Algorithm: F is rotated by J^-1 into reference coordinates at each node,
// contracted with the derivative tables, then weighted by w_i*det(J_i) and
// accumulated. For tensor shapes this is three sum-factorized passes
// (never materializing the full (P x P x d) operator); for simplices the
// dense reference derivative tables are applied directly.
func (e *Element) ApplyGradTestAndIntegrate(F [][]float64) []float64 {
	d := e.Ndim
	// rotate F into reference coordinates and fold in the quadrature
	// weight, in the order (r, s, t) per the bit-reproducibility note.
	g := make([][]float64, d)
	for axis := 0; axis < d; axis++ {
		g[axis] = make([]float64, e.P)
	}
	for p := 0; p < e.P; p++ {
		Jinv := e.jinvAt(p)
		wj := e.Weights[p] * e.detJAt(p)
		for l := 0; l < d; l++ {
			var sum float64
			for k := 0; k < d; k++ {
				sum += Jinv[l][k] * F[k][p]
			}
			g[l][p] = wj * sum
		}
	}

	r := make([]float64, e.P)
	if e.Kind.IsTensor() {
		Dt := transpose(e.tensorDiff)
		for axis := 0; axis < d; axis++ {
			contrib := contract1D(g[axis], Dt, axis, e.N, d)
			for i := range r {
				r[i] += contrib[i]
			}
		}
		return r
	}
	for axis := 0; axis < d; axis++ {
		for p := 0; p < e.P; p++ {
			row := e.simplexDeriv[p][axis]
			gp := g[axis][p]
			for i := range row {
				r[i] += row[i] * gp
			}
		}
	}
	return r
}

// ParamAtIntPts returns p_i = interpolate_at(xi_i) . vertex_params[name],
// i.e. the vertex-to-node interpolation of a per-vertex material
// parameter onto every integration point / node.
func (e *Element) ParamAtIntPts(vertexValues []float64) []float64 {
	out := make([]float64, e.P)
	for p, xi := range e.RefNodes {
		w := e.shape.InterpolateAt(xi)
		var v float64
		for i, wi := range w {
			v += wi * vertexValues[i]
		}
		out[p] = v
	}
	return out
}

// DeltaCoefficients returns c_i = l_i(xi_src) / (w_i det(J_i)) so that
// Sum_i c_i . apply_test_and_integrate(phi_i) reproduces a point source at
// xi_src.
func (e *Element) DeltaCoefficients(xiSrc []float64) ([]float64, error) {
	l, err := interpAtXi(xiSrc, e.N, e.Kind)
	if err != nil {
		return nil, err
	}
	c := make([]float64, e.P)
	for p := range c {
		c[p] = l[p] / (e.Weights[p] * e.detJAt(p))
	}
	return c, nil
}

func transpose(A [][]float64) [][]float64 {
	n := len(A)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = A[j][i]
		}
	}
	return out
}
