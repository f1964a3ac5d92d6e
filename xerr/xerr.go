// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package xerr defines the typed error kinds of the engine.
// Fatal kinds are meant to be handed to github.com/cpmech/gosl/chk.Panic at
// the boundary named in their doc comment; non-fatal kinds are returned as
// ordinary errors and handled by the caller.
package xerr

import "fmt"

// ConfigError reports a missing or malformed CLI / source-file option.
// Fatal: surfaced at startup, the process aborts with the message.
type ConfigError struct {
	Flag   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: flag %q: %s", e.Flag, e.Reason)
}

// UnsupportedOrder reports a polynomial order outside the compiled range.
// Fatal at element construction.
type UnsupportedOrder struct {
	Order int
	Max   int
}

func (e *UnsupportedOrder) Error() string {
	return fmt.Sprintf("unsupported polynomial order %d (max %d)", e.Order, e.Max)
}

// UnsupportedShape reports an unimplemented shape/physics combination.
// Fatal at element construction.
type UnsupportedShape struct {
	Shape   string
	Physics string
}

func (e *UnsupportedShape) Error() string {
	return fmt.Sprintf("unsupported shape/physics combination: %s/%s", e.Shape, e.Physics)
}

// GeometryError reports non-positive det J at an integration point or
// degenerate vertex coordinates. Fatal.
type GeometryError struct {
	ElemID int
	DetJ   float64
	IntPt  int
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error: element %d has non-positive det(J)=%g at integration point %d", e.ElemID, e.DetJ, e.IntPt)
}

// LocalizationError reports a source/receiver that fell outside the mesh.
// Non-fatal: the caller drops the source/receiver with a warning.
type LocalizationError struct {
	Kind     string // "source" or "receiver"
	ID       string
	Location []float64
}

func (e *LocalizationError) Error() string {
	return fmt.Sprintf("%s %q at %v has no owning element", e.Kind, e.ID, e.Location)
}

// IOError wraps a failure reading mesh/model/source files, or writing a
// movie frame. Fatal at input; logged-and-continued on snapshot write
// failure (caller decides which).
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NumericalBlowup reports |u| exceeding the configurable sentinel on some
// DoF. Fatal, with a message directing the user to reduce Δt.
type NumericalBlowup struct {
	Field    string
	DofIdx   int
	Value    float64
	Sentinel float64
}

func (e *NumericalBlowup) Error() string {
	return fmt.Sprintf("numerical blowup: field %q dof %d reached %g (sentinel %g); reduce --time-step", e.Field, e.DofIdx, e.Value, e.Sentinel)
}
