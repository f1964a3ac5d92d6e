// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the ambient CLI-flag and JSON-descriptor
// surface: parsing the command-line options into a Model, and
// validating the mandatory ones unless running under --testing.
package config

import (
	"flag"

	"github.com/cpmech/gosem/xerr"
)

// Model mirrors the full CLI flag surface as a plain struct so it can
// also be loaded from or dumped to JSON for regression tests.
type Model struct {
	MeshFile  string `json:"mesh-file"`
	ModelFile string `json:"model-file"`

	PolynomialOrder int    `json:"polynomial-order"`
	Dimension       int    `json:"dimension"`
	Shape           string `json:"shape"`

	Duration float64 `json:"duration"`
	TimeStep float64 `json:"time-step"`

	HomogeneousDirichlet []string `json:"homogeneous-dirichlet"`

	SaveMovie      bool   `json:"save-movie"`
	MovieFileName  string `json:"movie-file-name"`
	MovieField     string `json:"movie-field"`
	SaveFrameEvery int    `json:"save-frame-every"`

	SourceFileName string `json:"source-file-name"`

	NumberOfSources     int       `json:"number-of-sources"`
	SourceType          string    `json:"source-type"`
	SourceLocationX     []float64 `json:"source-location-x"`
	SourceLocationY     []float64 `json:"source-location-y"`
	SourceLocationZ     []float64 `json:"source-location-z"`
	RickerAmplitude     []float64 `json:"ricker-amplitude"`
	RickerCenterFreq    []float64 `json:"ricker-center-freq"`
	RickerTimeDelay     []float64 `json:"ricker-time-delay"`
	SourceNumComponents int       `json:"source-num-components"`

	NumberOfReceivers int       `json:"number-of-receivers"`
	ReceiverFileName  string    `json:"receiver-file-name"`
	ReceiverNames     []string  `json:"receiver-names"`
	ReceiverLocationX []float64 `json:"receiver-location-x"`
	ReceiverLocationY []float64 `json:"receiver-location-y"`
	ReceiverLocationZ []float64 `json:"receiver-location-z"`

	StrictCFL bool `json:"strict-cfl"`
	Testing   bool `json:"testing"`
	Verbose   bool `json:"verbose"`
}

// csvList collects repeated "--flag a --flag b" occurrences into a slice.
// No flag registered by Parse uses it; --homogeneous-dirichlet is read as
// one string and split on commas by splitCSV.
type csvList []string

func (c *csvList) String() string { return "" }
func (c *csvList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

// Parse builds a Model from the process argument list (excluding argv[0]),
// validating mandatory flags unless --testing is set.
func Parse(args []string) (*Model, error) {
	fs := flag.NewFlagSet("gosem", flag.ContinueOnError)
	m := &Model{}

	fs.StringVar(&m.MeshFile, "mesh-file", "", "Exodus mesh input")
	fs.StringVar(&m.ModelFile, "model-file", "", "Exodus material model")
	fs.IntVar(&m.PolynomialOrder, "polynomial-order", 3, "spectral order")
	fs.IntVar(&m.Dimension, "dimension", 2, "ambient dimension (2 or 3)")
	fs.StringVar(&m.Shape, "shape", "tensor", `element kind family: "tensor" (quad/hex) or "simplex" (tri/tet)`)
	fs.Float64Var(&m.Duration, "duration", 0, "simulation duration in seconds")
	fs.Float64Var(&m.TimeStep, "time-step", 0, "Newmark time step in seconds")

	var dirichlet string
	fs.StringVar(&dirichlet, "homogeneous-dirichlet", "", "comma-separated sideset names")

	fs.BoolVar(&m.SaveMovie, "save-movie", false, "enable volumetric snapshotting")
	fs.StringVar(&m.MovieFileName, "movie-file-name", "", "HDF5 movie output path")
	fs.StringVar(&m.MovieField, "movie-field", "", "field name to snapshot")
	fs.IntVar(&m.SaveFrameEvery, "save-frame-every", 0, "snapshot cadence in steps")

	fs.StringVar(&m.SourceFileName, "source-file-name", "", "HDF5 source catalog path")
	fs.IntVar(&m.NumberOfSources, "number-of-sources", 0, "inline source count")
	fs.StringVar(&m.SourceType, "source-type", "", "ricker or file")
	fs.IntVar(&m.SourceNumComponents, "source-num-components", 1, "source direction vector length")

	fs.IntVar(&m.NumberOfReceivers, "number-of-receivers", 0, "inline receiver count")
	fs.StringVar(&m.ReceiverFileName, "receiver-file-name", "", "HDF5 receiver trace output path")

	fs.BoolVar(&m.StrictCFL, "strict-cfl", false, "abort instead of warn on CFL violation")
	fs.BoolVar(&m.Testing, "testing", false, "suppress mandatory-flag errors")
	fs.BoolVar(&m.Verbose, "verbose", false, "raise log level")

	if err := fs.Parse(args); err != nil {
		return nil, &xerr.ConfigError{Flag: "(parse)", Reason: err.Error()}
	}
	if dirichlet != "" {
		m.HomogeneousDirichlet = splitCSV(dirichlet)
	}

	if !m.Testing {
		if err := m.validate(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Model) validate() error {
	if m.MeshFile == "" {
		return &xerr.ConfigError{Flag: "--mesh-file", Reason: "required"}
	}
	if m.Dimension != 2 && m.Dimension != 3 {
		return &xerr.ConfigError{Flag: "--dimension", Reason: "must be 2 or 3"}
	}
	if m.Shape != "tensor" && m.Shape != "simplex" {
		return &xerr.ConfigError{Flag: "--shape", Reason: `must be one of {"tensor", "simplex"}`}
	}
	if m.Duration <= 0 {
		return &xerr.ConfigError{Flag: "--duration", Reason: "must be positive"}
	}
	if m.TimeStep <= 0 {
		return &xerr.ConfigError{Flag: "--time-step", Reason: "must be positive"}
	}
	if m.SourceType != "" && m.SourceType != "ricker" && m.SourceType != "file" {
		return &xerr.ConfigError{Flag: "--source-type", Reason: `must be one of {"ricker", "file"}`}
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
