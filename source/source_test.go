// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosem/element"
	"github.com/cpmech/gosem/glog"
	"github.com/cpmech/gosem/reftab"
)

func unitQuad() [][]float64 {
	return [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
}

// TestRickerZeroAtInfinity checks that the Ricker wavelet decays to
// (numerically) zero far from its delay.
func TestRickerZeroAtInfinity(t *testing.T) {
	r := &Ricker{Amplitude: 1, CenterFreq: 10, Delay: 0.1}
	v := r.ValueAt(100)
	if v > 1e-6 || v < -1e-6 {
		t.Fatalf("Ricker(100) = %v, want ~0", v)
	}
}

// TestRickerPeakAtDelay checks that the wavelet attains its amplitude at
// t == Delay (the envelope's zero-lag value).
func TestRickerPeakAtDelay(t *testing.T) {
	r := &Ricker{Amplitude: 3, CenterFreq: 5, Delay: 0.2}
	chk.Float64(t, "peak at delay", 1e-10, r.ValueAt(0.2), 3)
}

// TestTabulatedLinearInterpolation checks midpoint interpolation and the
// zero-outside-range edge case.
func TestTabulatedLinearInterpolation(t *testing.T) {
	tf := &Tabulated{Dt: 1.0, Samples: []float64{0, 10, 0}}
	chk.Float64(t, "midpoint", 1e-12, tf.ValueAt(0.5), 5)
	chk.Float64(t, "exact sample", 1e-12, tf.ValueAt(1.0), 10)
	if tf.ValueAt(-1) != 0 {
		t.Fatalf("ValueAt(-1) = %v, want 0", tf.ValueAt(-1))
	}
	if tf.ValueAt(10) != 0 {
		t.Fatalf("ValueAt(10) = %v, want 0", tf.ValueAt(10))
	}
}

// TestLocalizeFindsOwningElement checks that a point strictly inside the
// reference quad localizes to that element with the matching xi.
func TestLocalizeFindsOwningElement(t *testing.T) {
	e, err := element.New(0, reftab.Quad, 3, unitQuad())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := &Source{ID: 0, X: []float64{0.3, -0.1}, Direction: []float64{1}, Fn: &Ricker{Amplitude: 1, CenterFreq: 5}}
	kept := Localize([]*Source{s}, []*element.Element{e}, glog.New("test"))
	if len(kept) != 1 {
		t.Fatalf("Localize dropped the in-mesh source, kept %d", len(kept))
	}
	if kept[0].ElemID() != 0 {
		t.Fatalf("ElemID = %d, want 0", kept[0].ElemID())
	}
	chk.Float64(t, "xi[0]", 1e-6, kept[0].XiLocal()[0], 0.3)
	chk.Float64(t, "xi[1]", 1e-6, kept[0].XiLocal()[1], -0.1)
}

// TestLocalizeDropsOutOfMeshSource checks that a point far outside every
// element is dropped rather than mis-assigned.
func TestLocalizeDropsOutOfMeshSource(t *testing.T) {
	e, err := element.New(0, reftab.Quad, 3, unitQuad())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := &Source{ID: 0, X: []float64{100, 100}, Direction: []float64{1}, Fn: &Ricker{Amplitude: 1, CenterFreq: 5}}
	kept := Localize([]*Source{s}, []*element.Element{e}, glog.New("test"))
	if len(kept) != 0 {
		t.Fatalf("Localize kept an out-of-mesh source")
	}
}

// TestReceiverSampleAccumulatesTrace checks that repeated Sample calls
// append to the time and per-component trace buffers.
func TestReceiverSampleAccumulatesTrace(t *testing.T) {
	r := &Receiver{Name: "r0", X: []float64{0, 0}}
	r.Sample(0.0, []float64{1, 2})
	r.Sample(0.1, []float64{3, 4})
	if len(r.Times) != 2 {
		t.Fatalf("Times has %d entries, want 2", len(r.Times))
	}
	chk.Float64(t, "component 0 trace[1]", 1e-12, r.Traces[0][1], 3)
	chk.Float64(t, "component 1 trace[1]", 1e-12, r.Traces[1][1], 4)
}

// TestSourceValueAtScalesDirection checks that ValueAt scales the fixed
// direction vector by the scalar time function.
func TestSourceValueAtScalesDirection(t *testing.T) {
	s := &Source{Direction: []float64{0, 1}, Fn: &Tabulated{Dt: 1, Samples: []float64{2, 2}}}
	v := s.ValueAt(0.5)
	chk.Float64(t, "x component zero", 1e-12, v[0], 0)
	chk.Float64(t, "y component scaled", 1e-12, v[1], 2)
}
