// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meshio implements component H: thin seams onto the external
// Exodus II mesh/model format (NetCDF-classic) and the HDF5-backed movie
// snapshot and source-catalog files. Mesh discretization and parsing
// logic stay out of this package; it only exposes the raw coordinates,
// connectivity, sidesets and named fields that the rest of the engine
// consumes.
package meshio

import (
	"github.com/cpmech/gosem/xerr"
	"github.com/fhs/go-netcdf/netcdf"
)

// ExodusReader opens an Exodus II mesh or material-model file and
// exposes the handful of arrays the engine needs: vertex coordinates,
// element connectivity blocks, named sidesets, and named nodal fields
// (material properties such as RHO/VP/VS/VPV/VPH/VSV/VSH/ETA).
type ExodusReader struct {
	ds   netcdf.Dataset
	path string
}

// OpenExodus opens path read-only. The caller must Close it.
func OpenExodus(path string) (*ExodusReader, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, &xerr.IOError{Path: path, Op: "open exodus", Err: err}
	}
	return &ExodusReader{ds: ds, path: path}, nil
}

// Close releases the underlying NetCDF handle.
func (r *ExodusReader) Close() error {
	return r.ds.Close()
}

// Coords reads the num_nodes x num_dim vertex coordinate table, one row
// per global node id, columns x[,y[,z]].
func (r *ExodusReader) Coords(dim int) ([][]float64, error) {
	names := []string{"coordx", "coordy", "coordz"}
	cols := make([][]float64, dim)
	var n int
	for axis := 0; axis < dim; axis++ {
		v, err := r.ds.Var(names[axis])
		if err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "read " + names[axis], Err: err}
		}
		lens, err := v.LenDims()
		if err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "dims " + names[axis], Err: err}
		}
		n = int(lens[0])
		buf := make([]float64, n)
		if err := v.ReadFloat64s(buf); err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "values " + names[axis], Err: err}
		}
		cols[axis] = buf
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, dim)
		for axis := 0; axis < dim; axis++ {
			out[i][axis] = cols[axis][i]
		}
	}
	return out, nil
}

// Connectivity reads one element block's connect table (1-based node
// ids in the file, converted to 0-based here) as [numElem][nodesPerElem].
func (r *ExodusReader) Connectivity(blockID int, nodesPerElem int) ([][]int, error) {
	name := connectVarName(blockID)
	v, err := r.ds.Var(name)
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "read " + name, Err: err}
	}
	lens, err := v.LenDims()
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "dims " + name, Err: err}
	}
	total := int(lens[0]) * int(lens[1])
	buf := make([]int32, total)
	if err := v.ReadInt32s(buf); err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "values " + name, Err: err}
	}
	numElem := int(lens[0])
	out := make([][]int, numElem)
	for e := 0; e < numElem; e++ {
		row := make([]int, nodesPerElem)
		for p := 0; p < nodesPerElem; p++ {
			row[p] = int(buf[e*nodesPerElem+p]) - 1
		}
		out[e] = row
	}
	return out, nil
}

// NodalField reads a named per-node variable (e.g. "RHO", "VP", "VS",
// "VPV", "VPH", "VSV", "VSH", "ETA").
func (r *ExodusReader) NodalField(name string) ([]float64, error) {
	v, err := r.ds.Var(name)
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "read field " + name, Err: err}
	}
	lens, err := v.LenDims()
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "dims " + name, Err: err}
	}
	buf := make([]float64, lens[0])
	if err := v.ReadFloat64s(buf); err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "values " + name, Err: err}
	}
	return buf, nil
}

// Sideset reads the (elem, localFace) pairs of a named side set, with
// localFace converted from Exodus's 1-based convention to this engine's
// 0-based element.FaceNodes indexing.
func (r *ExodusReader) Sideset(name string) (elems []int, localFaces []int, err error) {
	elemVar, e1 := r.ds.Var("ss_elem_" + name)
	sideVar, e2 := r.ds.Var("ss_side_" + name)
	if e1 != nil || e2 != nil {
		return nil, nil, &xerr.IOError{Path: r.path, Op: "read sideset " + name, Err: firstNonNil(e1, e2)}
	}
	lens, err := elemVar.LenDims()
	if err != nil {
		return nil, nil, &xerr.IOError{Path: r.path, Op: "dims sideset " + name, Err: err}
	}
	n := int(lens[0])
	elemBuf := make([]int32, n)
	sideBuf := make([]int32, n)
	if err := elemVar.ReadInt32s(elemBuf); err != nil {
		return nil, nil, &xerr.IOError{Path: r.path, Op: "values sideset elems " + name, Err: err}
	}
	if err := sideVar.ReadInt32s(sideBuf); err != nil {
		return nil, nil, &xerr.IOError{Path: r.path, Op: "values sideset sides " + name, Err: err}
	}
	elems = make([]int, n)
	localFaces = make([]int, n)
	for i := 0; i < n; i++ {
		elems[i] = int(elemBuf[i]) - 1
		localFaces[i] = int(sideBuf[i]) - 1
	}
	return elems, localFaces, nil
}

func connectVarName(blockID int) string {
	return "connect" + itoa(blockID)
}

func firstNonNil(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
