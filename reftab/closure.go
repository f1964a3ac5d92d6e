// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import "sort"

// closureEntry is one node's classification used to sort the TENSOR-order
// node list into TOPOLOGY order (vertices, then edges, then faces, then
// the cell interior). The resulting permutation is reproducible but is a
// local convention, not a claim to match any particular external topology
// library's numbering -- callers must verify against the actual library in
// use rather than trust comments.
type closureEntry struct {
	tensorIdx int
	freeDim   int   // 0=vertex, 1=edge, 2=face (hex only), d=interior
	entityKey []int // identifies which vertex/edge/face this node belongs to
	withinKey []int // orders nodes within one entity
}

func sortClosure(entries []closureEntry) []int {
	sort.SliceStable(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if ea.freeDim != eb.freeDim {
			return ea.freeDim < eb.freeDim
		}
		if c := compareInts(ea.entityKey, eb.entityKey); c != 0 {
			return c < 0
		}
		return compareInts(ea.withinKey, eb.withinKey) < 0
	})
	sigma := make([]int, len(entries))
	for topoPos, e := range entries {
		sigma[topoPos] = e.tensorIdx
	}
	return sigma
}

func compareInts(a, b []int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// Closure returns the permutation sigma such that, if f_topo[i] is the
// i-th DoF in topology order (vertices, edges, faces, volume), then
// f_tensor[sigma(i)] is the same DoF in tensor order.
func Closure(N int, k Kind) ([]int, error) {
	if err := checkOrder(N); err != nil {
		return nil, err
	}
	if k.IsTensor() {
		return tensorClosure(N, k), nil
	}
	return simplexClosure(N, k), nil
}

// tensorClosure classifies every tensor-order node of a quad/hex by how
// many of its axis indices are strictly interior (0 < idx < N): that count
// is the entity dimension (0=vertex .. d=cell interior).
func tensorClosure(N int, k Kind) []int {
	d := k.Ndim()
	idxs := tensorIndex(N, d)
	entries := make([]closureEntry, len(idxs))
	for p, idx := range idxs {
		var free []int
		entityKey := make([]int, 0, d)
		withinKey := make([]int, 0, d)
		for axis, v := range idx {
			if v > 0 && v < N {
				free = append(free, axis)
				withinKey = append(withinKey, v)
			} else {
				atN := 0
				if v == N {
					atN = 1
				}
				entityKey = append(entityKey, axis, atN)
			}
		}
		entries[p] = closureEntry{
			tensorIdx: p,
			freeDim:   len(free),
			entityKey: append([]int{len(free)}, entityKey...),
			withinKey: withinKey,
		}
	}
	return sortClosure(entries)
}
