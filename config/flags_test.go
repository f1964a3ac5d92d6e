// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "testing"

func mandatoryArgs(extra ...string) []string {
	args := []string{
		"--mesh-file", "mesh.exo",
		"--duration", "1",
		"--time-step", "0.01",
	}
	return append(args, extra...)
}

// TestParseDefaultsToTensorShape checks that --shape defaults to "tensor"
// when unset.
func TestParseDefaultsToTensorShape(t *testing.T) {
	m, err := Parse(mandatoryArgs())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Shape != "tensor" {
		t.Fatalf("Shape = %q, want %q", m.Shape, "tensor")
	}
}

// TestParseAcceptsSimplexShape checks that --shape simplex parses cleanly.
func TestParseAcceptsSimplexShape(t *testing.T) {
	m, err := Parse(mandatoryArgs("--shape", "simplex"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Shape != "simplex" {
		t.Fatalf("Shape = %q, want %q", m.Shape, "simplex")
	}
}

// TestParseRejectsUnknownShape checks that an unrecognised --shape value
// is rejected rather than silently falling back to tensor.
func TestParseRejectsUnknownShape(t *testing.T) {
	_, err := Parse(mandatoryArgs("--shape", "nonsense"))
	if err == nil {
		t.Fatalf("expected an error for an unknown --shape value")
	}
}
