// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"strconv"

	"github.com/cpmech/gosem/xerr"
	"gonum.org/v1/hdf5"
)

// SourceRecord is one inline-tabulated source entry read from a catalog
// file's "/sources/<id>" group: a location, a direction vector, and a
// fixed-interval sampled time function.
type SourceRecord struct {
	ID        string
	X         []float64
	Direction []float64
	Dt        float64
	Samples   []float64
}

// ReceiverRecord is one receiver entry read from "/receivers/<name>".
type ReceiverRecord struct {
	Name string
	X    []float64
}

// SourceCatalogReader opens an HDF5 file holding "/sources/*" and
// "/receivers/*" groups (the two may coexist in one file, matching how
// Exodus mesh/model files are allowed to coincide).
type SourceCatalogReader struct {
	file *hdf5.File
	path string
}

func OpenCatalog(path string) (*SourceCatalogReader, error) {
	f, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, &xerr.IOError{Path: path, Op: "open catalog", Err: err}
	}
	return &SourceCatalogReader{file: f, path: path}, nil
}

func (r *SourceCatalogReader) Close() error {
	return r.file.Close()
}

// Sources reads every entry under "/sources".
func (r *SourceCatalogReader) Sources() ([]SourceRecord, error) {
	group, err := r.file.OpenGroup("/sources")
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "open /sources", Err: err}
	}
	defer group.Close()

	n, err := group.NumObjects()
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "list /sources", Err: err}
	}
	out := make([]SourceRecord, 0, n)
	for i := uint(0); i < n; i++ {
		name, err := group.ObjectNameByIndex(i)
		if err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "name /sources#" + strconv.Itoa(int(i)), Err: err}
		}
		sub, err := group.OpenGroup(name)
		if err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "open /sources/" + name, Err: err}
		}
		rec := SourceRecord{ID: name}
		rec.X, err = readFloat64Dataset(sub, "x")
		if err != nil {
			sub.Close()
			return nil, err
		}
		rec.Direction, err = readFloat64Dataset(sub, "direction")
		if err != nil {
			sub.Close()
			return nil, err
		}
		dt, err := readFloat64Dataset(sub, "dt")
		if err != nil {
			sub.Close()
			return nil, err
		}
		rec.Dt = dt[0]
		rec.Samples, err = readFloat64Dataset(sub, "samples")
		sub.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Receivers reads every entry under "/receivers".
func (r *SourceCatalogReader) Receivers() ([]ReceiverRecord, error) {
	group, err := r.file.OpenGroup("/receivers")
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "open /receivers", Err: err}
	}
	defer group.Close()

	n, err := group.NumObjects()
	if err != nil {
		return nil, &xerr.IOError{Path: r.path, Op: "list /receivers", Err: err}
	}
	out := make([]ReceiverRecord, 0, n)
	for i := uint(0); i < n; i++ {
		name, err := group.ObjectNameByIndex(i)
		if err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "name /receivers#" + strconv.Itoa(int(i)), Err: err}
		}
		sub, err := group.OpenGroup(name)
		if err != nil {
			return nil, &xerr.IOError{Path: r.path, Op: "open /receivers/" + name, Err: err}
		}
		x, err := readFloat64Dataset(sub, "x")
		sub.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, ReceiverRecord{Name: name, X: x})
	}
	return out, nil
}

func readFloat64Dataset(g *hdf5.Group, name string) ([]float64, error) {
	d, err := g.OpenDataset(name)
	if err != nil {
		return nil, &xerr.IOError{Path: name, Op: "open dataset", Err: err}
	}
	defer d.Close()
	space := d.Space()
	defer space.Close()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, &xerr.IOError{Path: name, Op: "dataset dims", Err: err}
	}
	total := uint(1)
	for _, d := range dims {
		total *= d
	}
	buf := make([]float64, total)
	if err := d.Read(&buf); err != nil {
		return nil, &xerr.IOError{Path: name, Op: "dataset read", Err: err}
	}
	return buf, nil
}

// TraceWriter flushes batched receiver samples to "/traces/<name>" at
// the cadence the driver's supplemented flushing policy chooses.
type TraceWriter struct {
	file *hdf5.File
	path string
}

func CreateTraceFile(path string) (*TraceWriter, error) {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, &xerr.IOError{Path: path, Op: "create traces", Err: err}
	}
	return &TraceWriter{file: f, path: path}, nil
}

func (w *TraceWriter) Close() error {
	return w.file.Close()
}

// Flush writes (or overwrites) the accumulated times/values pair for
// one receiver.
func (w *TraceWriter) Flush(name string, times []float64, traces [][]float64) error {
	group, err := openOrCreateGroup(w.file, "/traces/"+name)
	if err != nil {
		return &xerr.IOError{Path: w.path, Op: "traces group " + name, Err: err}
	}
	defer group.Close()

	if err := writeFloat64Dataset(group, "times", times); err != nil {
		return err
	}
	flat := make([]float64, 0, len(traces)*len(times))
	for _, comp := range traces {
		flat = append(flat, comp...)
	}
	return writeFloat64Dataset(group, "values", flat)
}

func writeFloat64Dataset(g *hdf5.Group, name string, data []float64) error {
	dims := []uint{uint(len(data))}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return &xerr.IOError{Path: name, Op: "dataspace", Err: err}
	}
	defer space.Close()
	d, err := g.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return &xerr.IOError{Path: name, Op: "create dataset", Err: err}
	}
	defer d.Close()
	if err := d.Write(data); err != nil {
		return &xerr.IOError{Path: name, Op: "write dataset", Err: err}
	}
	return nil
}
