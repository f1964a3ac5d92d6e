// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

// simplexClosure classifies every barycentric-lattice node of a tri/tet by
// how many of its d+1 barycentric indices are zero: freeDim = d - numZeros
// (0=vertex, 1=edge, 2=face [tet only], d=cell interior), mirroring
// tensorClosure's entity/within-entity decomposition.
func simplexClosure(N int, k Kind) []int {
	d := k.Ndim()
	lattice := barycentricLattice(N, d)
	entries := make([]closureEntry, len(lattice))
	for p, bc := range lattice {
		var zeroAxes, nonzeroAxes, nonzeroVals []int
		for axis, v := range bc {
			if v == 0 {
				zeroAxes = append(zeroAxes, axis)
			} else {
				nonzeroAxes = append(nonzeroAxes, axis)
				nonzeroVals = append(nonzeroVals, v)
			}
		}
		freeDim := d - len(zeroAxes)
		entityKey := append([]int{freeDim}, zeroAxes...)
		withinKey := nonzeroVals
		entries[p] = closureEntry{
			tensorIdx: p, // "tensor" index here means the lattice enumeration index
			freeDim:   freeDim,
			entityKey: entityKey,
			withinKey: withinKey,
		}
	}
	return sortClosure(entries)
}
