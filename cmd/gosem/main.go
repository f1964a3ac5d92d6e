// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosem/config"
	"github.com/cpmech/gosem/glog"
	"github.com/cpmech/gosem/integrator"
	"github.com/cpmech/gosem/mesh"
	"github.com/cpmech/gosem/meshio"
	"github.com/cpmech/gosem/physics"
	"github.com/cpmech/gosem/reftab"
	"github.com/cpmech/gosem/source"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {
	log := glog.New("main")

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.Pfred("ERROR: %v\n", err)
			}
			mpi.Stop(false)
			os.Exit(1)
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\ngosem -- spectral-element wave propagation\n\n")
	}

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		chk.Panic("%v", err)
	}
	if cfg.Verbose {
		log.Level = glog.Verbose
	}

	if err := run(cfg, log); err != nil {
		chk.Panic("%v", err)
	}
}

func run(cfg *config.Model, log glog.Logger) error {
	meshR, err := meshio.OpenExodus(cfg.MeshFile)
	if err != nil {
		return err
	}
	defer meshR.Close()

	modelFile := cfg.ModelFile
	if modelFile == "" {
		modelFile = cfg.MeshFile
	}
	modelR, err := meshio.OpenExodus(modelFile)
	if err != nil {
		return err
	}
	defer modelR.Close()

	blocks := []mesh.Block{{BlockID: 1, Kind: blockKind(cfg.Dimension, cfg.Shape)}}
	m, err := mesh.Build(meshR, modelR, blocks, cfg.PolynomialOrder, cfg.Dimension, 1e-8)
	if err != nil {
		return err
	}
	log.Infof("built %d elements, %d global dofs\n", len(m.Elems), m.Section.NumGlobal)

	kernels := make([]physics.Kernel, len(m.Elems))
	for i, e := range m.Elems {
		k := newKernel(cfg.Dimension, m.VertexParams[i])
		if err := k.Setup(e, m.VertexParams[i]); err != nil {
			return err
		}
		kernels[i] = k
	}

	var pinned []boundaryPin
	if len(cfg.HomogeneousDirichlet) > 0 {
		boundary, err := mesh.BuildBoundary(meshR, cfg.HomogeneousDirichlet)
		if err != nil {
			return err
		}
		for i, e := range m.Elems {
			faces := boundary.FacesOf(e.ID, cfg.HomogeneousDirichlet)
			var localNodes []int
			for _, f := range faces {
				localNodes = append(localNodes, e.FaceNodes(f)...)
			}
			localNodes = utl.IntUnique(localNodes)
			if len(localNodes) > 0 {
				wrapped := physics.NewDirichlet(kernels[i])
				wrapped.SetBoundaryConditions(localNodes)
				kernels[i] = wrapped
				pinned = append(pinned, boundaryPin{elem: i, localNodes: localNodes})
			}
		}
	}

	drv := integrator.New(m.Elems, kernels, m.Section)
	drv.Dt = cfg.TimeStep
	drv.Duration = cfg.Duration
	drv.StrictCFL = cfg.StrictCFL
	drv.Log = log.WithTag("newmark")

	for _, p := range pinned {
		drv.SetHomogeneousDirichlet(p.elem, p.localNodes)
	}

	if cfg.SourceFileName != "" {
		cat, err := meshio.OpenCatalog(cfg.SourceFileName)
		if err != nil {
			return err
		}
		defer cat.Close()

		recs, err := cat.Sources()
		if err != nil {
			return err
		}
		var srcs []*source.Source
		for i, r := range recs {
			srcs = append(srcs, &source.Source{
				ID:        i,
				X:         r.X,
				Direction: r.Direction,
				Fn:        &source.Tabulated{Dt: r.Dt, Samples: r.Samples},
			})
		}
		localized := source.Localize(srcs, m.Elems, log.WithTag("source"))
		for _, s := range localized {
			drv.Sources = append(drv.Sources, s)
		}

		rrecs, err := cat.Receivers()
		if err != nil {
			return err
		}
		var recvs []*source.Receiver
		for _, r := range rrecs {
			recvs = append(recvs, &source.Receiver{Name: r.Name, X: r.X})
		}
		localizedRecv := source.LocalizeReceivers(recvs, m.Elems, log.WithTag("receiver"))
		for _, r := range localizedRecv {
			drv.Receivers = append(drv.Receivers, r)
		}
	}

	if cfg.ReceiverFileName != "" {
		traces, err := meshio.CreateTraceFile(cfg.ReceiverFileName)
		if err != nil {
			return err
		}
		defer traces.Close()
		drv.Traces = traces
		drv.TraceFlushEvery = cfg.SaveFrameEvery
	}

	if cfg.SaveMovie {
		movie, err := meshio.CreateMovie(cfg.MovieFileName)
		if err != nil {
			return err
		}
		defer movie.Close()
		drv.Snapshot = movie
		drv.SnapshotField = cfg.MovieField
		drv.SnapshotEvery = cfg.SaveFrameEvery
	}

	return drv.Run()
}

// blockKind picks the single block's element kind from the ambient
// dimension and the --shape family (tensor: quad/hex, simplex: tri/tet).
// A single Exodus block per run only needs one kind today; a mesh mixing
// both families within one run would need per-block kinds threaded from
// the file itself, which Exodus records as the block's elem_type
// attribute but which this engine does not yet read.
func blockKind(dim int, shapeFamily string) reftab.Kind {
	if shapeFamily == "simplex" {
		if dim == 3 {
			return reftab.Tet
		}
		return reftab.Tri
	}
	if dim == 3 {
		return reftab.Hex
	}
	return reftab.Quad
}

func newKernel(dim int, params map[string][]float64) physics.Kernel {
	if dim == 3 {
		return physics.NewElastic3D()
	}
	if _, haveVS := params["VS"]; haveVS {
		return physics.NewElastic2D()
	}
	return physics.NewAcoustic()
}

// boundaryPin defers SetHomogeneousDirichlet until after the Driver
// exists, since it must be built from the (possibly Dirichlet-wrapped)
// final kernel slice.
type boundaryPin struct {
	elem       int
	localNodes []int
}
