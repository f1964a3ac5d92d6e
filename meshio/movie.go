// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"strconv"

	"github.com/cpmech/gosem/xerr"
	"gonum.org/v1/hdf5"
)

// MovieWriter implements integrator.SnapshotWriter against an HDF5 file:
// one dataset per step under "/movie/<field>/<step>", each a flat
// float64 array of the global field values at that step.
type MovieWriter struct {
	file *hdf5.File
	path string
}

// CreateMovie truncates (or creates) path and opens it for snapshot
// writes. The caller must Close it when the run finishes.
func CreateMovie(path string) (*MovieWriter, error) {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &xerr.IOError{Path: path, Op: "create movie", Err: err}
	}
	return &MovieWriter{file: f, path: path}, nil
}

func (w *MovieWriter) Close() error {
	return w.file.Close()
}

// WriteFrame satisfies integrator.SnapshotWriter.
func (w *MovieWriter) WriteFrame(step int, t float64, field string, values []float64) error {
	group, err := openOrCreateGroup(w.file, "/movie/"+field)
	if err != nil {
		return &xerr.IOError{Path: w.path, Op: "movie group " + field, Err: err}
	}
	defer group.Close()

	dims := []uint{uint(len(values))}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return &xerr.IOError{Path: w.path, Op: "movie dataspace", Err: err}
	}
	defer space.Close()

	name := strconv.Itoa(step)
	dset, err := group.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return &xerr.IOError{Path: w.path, Op: "movie dataset " + name, Err: err}
	}
	defer dset.Close()

	if err := dset.Write(values); err != nil {
		return &xerr.IOError{Path: w.path, Op: "movie write " + name, Err: err}
	}
	if err := dset.CreateAttribute("time", hdf5.T_NATIVE_DOUBLE, scalarSpace()).Write(&t); err != nil {
		return &xerr.IOError{Path: w.path, Op: "movie time attr " + name, Err: err}
	}
	return nil
}

func openOrCreateGroup(f *hdf5.File, path string) (*hdf5.Group, error) {
	if g, err := f.OpenGroup(path); err == nil {
		return g, nil
	}
	return f.CreateGroup(path)
}

func scalarSpace() *hdf5.Dataspace {
	sp, _ := hdf5.CreateDataspace(hdf5.S_SCALAR)
	return sp
}
