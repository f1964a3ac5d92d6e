// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Triangles and tetrahedra are non-tensor shapes: per-order symbolic code
// generation is replaced here by a pure Fn(N) -> Tables computed once and
// memoized. The node set is the equidistant barycentric
// lattice warped towards the 1D GLL spacing along each edge (a reduced
// "warp" step, without the Warburton alpha-blend optimisation); the
// quadrature weights are obtained by moment-fitting against the same
// monomial basis used for the Lagrange interpolation, which is exact for
// every monomial spanned by that basis (total degree <= N). Achieving the
// full 2N-1 exactness of the tensor shapes on an independent simplex node
// set is a much larger undertaking (Dunavant/Xiao-Gimbutas quadrature
// families) and is out of scope here.
type simplexTables struct {
	nodes   [][]float64 // barycentric-lattice node coordinates, length P, each length d
	weights []float64   // moment-fitted quadrature weights, length P
	coefs   *mat.Dense  // P x P; column j holds l_j's monomial coefficients
	exps    [][]int     // P monomial exponent tuples, aligned with coefs rows
}

var simplexCache sync.Map // map[simplexKey]*simplexTables

type simplexKey struct {
	N int
	K Kind
}

func simplexTablesFor(N int, k Kind) *simplexTables {
	key := simplexKey{N, k}
	if v, ok := simplexCache.Load(key); ok {
		return v.(*simplexTables)
	}
	t := buildSimplexTables(N, k)
	actual, _ := simplexCache.LoadOrStore(key, t)
	return actual.(*simplexTables)
}

// buildSimplexTables constructs the node set, monomial exponents,
// Vandermonde inverse and moment-fitted weights for a triangle (d=2) or
// tetrahedron (d=3) of order N.
func buildSimplexTables(N int, k Kind) *simplexTables {
	d := k.Ndim()
	lattice := barycentricLattice(N, d)
	nodes := make([][]float64, len(lattice))
	gllFrac := gllFractions(N)
	for p, bc := range lattice {
		nodes[p] = simplexVertexBlend(bc, gllFrac, d)
	}
	exps := monomialExponents(N, d)
	P := len(nodes)
	V := mat.NewDense(P, P, nil)
	for i := 0; i < P; i++ {
		for j := 0; j < P; j++ {
			V.Set(i, j, evalMonomial(exps[j], nodes[i]))
		}
	}
	var Vinv mat.Dense
	_ = Vinv.Inverse(V) // C = V^-1; l_j(xi) = sum_m C[m][j] * monomial_m(xi)

	moments := monomialMoments(exps, k)
	// solve V^T w = moments
	var Vt mat.Dense
	Vt.CloneFrom(V.T())
	var w mat.VecDense
	_ = w.SolveVec(&Vt, mat.NewVecDense(P, moments))
	weights := make([]float64, P)
	for i := 0; i < P; i++ {
		weights[i] = w.AtVec(i)
	}

	return &simplexTables{nodes: nodes, weights: weights, coefs: &Vinv, exps: exps}
}

// monomialExponents enumerates the monomial basis x^a y^b [z^c] with
// a+b[+c] <= N, matching the simplex node count exactly.
func monomialExponents(N, d int) [][]int {
	var out [][]int
	if d == 2 {
		for a := 0; a <= N; a++ {
			for b := 0; a+b <= N; b++ {
				out = append(out, []int{a, b})
			}
		}
	} else {
		for a := 0; a <= N; a++ {
			for b := 0; a+b <= N; b++ {
				for c := 0; a+b+c <= N; c++ {
					out = append(out, []int{a, b, c})
				}
			}
		}
	}
	return out
}

func evalMonomial(exp []int, x []float64) float64 {
	v := 1.0
	for i, e := range exp {
		for p := 0; p < e; p++ {
			v *= x[i]
		}
	}
	return v
}

// barycentricLattice enumerates the (N+1)(N+2)/2 [or (N+1)(N+2)(N+3)/6]
// integer barycentric indices i_0..i_d with sum N, in a fixed
// lexicographic order.
func barycentricLattice(N, d int) [][]int {
	var out [][]int
	if d == 2 {
		for i := 0; i <= N; i++ {
			for j := 0; i+j <= N; j++ {
				k := N - i - j
				out = append(out, []int{i, j, k})
			}
		}
	} else {
		for i := 0; i <= N; i++ {
			for j := 0; i+j <= N; j++ {
				for kk := 0; i+j+kk <= N; kk++ {
					l := N - i - j - kk
					out = append(out, []int{i, j, kk, l})
				}
			}
		}
	}
	return out
}

// gllFractions maps the equidistant index 0..N to the corresponding GLL
// 1D node remapped into [0,1], used to warp the equidistant lattice
// towards the GLL spacing along every edge.
func gllFractions(N int) []float64 {
	nodes, _ := GLLNodes(N)
	f := make([]float64, N+1)
	for i, x := range nodes {
		f[i] = 0.5 * (x + 1)
	}
	return f
}

// simplexVertexBlend converts an integer barycentric index (length d+1,
// summing to N) into reference coordinates in [-1,1]^d, using the GLL
// fractional spacing along each barycentric axis so that the interior
// nodes cluster towards the boundary like the tensor-shape GLL nodes.
func simplexVertexBlend(bc []int, gllFrac []float64, d int) []float64 {
	// reference-shape corner coordinates: vertex m is the unit vector e_m
	// in barycentric space; physical corners follow gofem's shp
	// convention (tri: (-1,-1),(1,-1),(-1,1); tet analogous).
	corners := simplexCorners(d)
	lam := make([]float64, d+1)
	for i, c := range bc {
		lam[i] = gllFrac[c]
	}
	var sum float64
	for _, l := range lam {
		sum += l
	}
	x := make([]float64, d)
	for i := range lam {
		w := lam[i] / sum
		for axis := 0; axis < d; axis++ {
			x[axis] += w * corners[i][axis]
		}
	}
	return x
}

func simplexCorners(d int) [][]float64 {
	if d == 2 {
		return [][]float64{{-1, -1}, {1, -1}, {-1, 1}}
	}
	return [][]float64{{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
}

// monomialMoments computes int monomial_k(x) dOmega over the reference
// triangle/tetrahedron of gofem's shp convention, via the closed-form
// Dirichlet integral over a simplex.
func monomialMoments(exps [][]int, k Kind) []float64 {
	d := k.Ndim()
	// map reference corners (-1,-1[,-1]) .. to the unit right simplex
	// u_i >= 0, sum u_i <= 1 via u = (x+1)/2 per axis a translation that
	// keeps the simplex shape (since gofem's reference simplex is the
	// image of the unit simplex under x_axis = 2*u_axis - 1).
	// int_Omega x^a y^b [z^c] dOmega = 2^d * int_unit (2u-1)^a (2v-1)^b ... du
	// evaluated here by recursive Gauss-Legendre quadrature (oversampled)
	// rather than a symbolic Dirichlet expansion, for implementation
	// simplicity; order is chosen high enough for the orders supported.
	pts, wts := gaussLegendreUnitSimplex(d, 2*MaxOrder+4)
	out := make([]float64, len(exps))
	for m, e := range exps {
		var s float64
		for p, u := range pts {
			x := make([]float64, d)
			for axis := 0; axis < d; axis++ {
				x[axis] = 2*u[axis] - 1
			}
			s += wts[p] * evalMonomial(e, x) * scaleFactorPow(d)
		}
		out[m] = s
	}
	return out
}

func scaleFactorPow(d int) float64 {
	s := 1.0
	for i := 0; i < d; i++ {
		s *= 2
	}
	return s
}
