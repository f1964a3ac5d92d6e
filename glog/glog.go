// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package glog threads a small logger handle through the engine instead of
// relying on a process-wide singleton.
package glog

import "github.com/cpmech/gosl/io"

// Level controls verbosity
type Level int

// verbosity levels
const (
	Quiet Level = iota
	Info
	Verbose
)

// Logger is a cheap value type; pass it by value or store a copy on any
// component that needs to report progress or warnings.
type Logger struct {
	Level Level  // current verbosity
	Rank  int    // MPI rank that owns this logger; only rank 0 prints by convention
	Tag   string // short component tag prefixed to every message; e.g. "newmark"
}

// New returns a Logger at Info level for rank 0
func New(tag string) Logger {
	return Logger{Level: Info, Rank: 0, Tag: tag}
}

// WithTag returns a copy of l tagged differently; used when a component
// hands a sub-logger to a collaborator
func (l Logger) WithTag(tag string) Logger {
	l.Tag = tag
	return l
}

// Infof prints an informational message if Level >= Info and Rank == 0
func (l Logger) Infof(msg string, args ...interface{}) {
	if l.Level >= Info && l.Rank == 0 {
		io.Pf("[%s] "+msg, append([]interface{}{l.Tag}, args...)...)
	}
}

// Verbosef prints only when Level == Verbose
func (l Logger) Verbosef(msg string, args ...interface{}) {
	if l.Level >= Verbose && l.Rank == 0 {
		io.Pforan("[%s] "+msg, append([]interface{}{l.Tag}, args...)...)
	}
}

// Warnf prints a warning regardless of level, in yellow
func (l Logger) Warnf(msg string, args ...interface{}) {
	if l.Rank == 0 {
		io.Pfyel("[%s] WARNING: "+msg, append([]interface{}{l.Tag}, args...)...)
	}
}

// Errorf prints a non-fatal error in red
func (l Logger) Errorf(msg string, args ...interface{}) {
	if l.Rank == 0 {
		io.Pfred("[%s] ERROR: "+msg, append([]interface{}{l.Tag}, args...)...)
	}
}
