// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package source implements component G: source time functions,
// localization of sources/receivers in reference coordinates, and the
// delta-projection / interpolation sampling each needs.
package source

import "math"

// TimeFunc is a scalar time-dependent amplitude, shared by Ricker and
// Tabulated.
type TimeFunc interface {
	ValueAt(t float64) float64
}

// Ricker is the classic zero-phase wavelet f(t) = A(1 - 2 pi^2 nu^2
// (t-tau)^2) exp(-pi^2 nu^2 (t-tau)^2).
type Ricker struct {
	Amplitude  float64
	CenterFreq float64
	Delay      float64
}

func (r *Ricker) ValueAt(t float64) float64 {
	tau := t - r.Delay
	a := math.Pi * math.Pi * r.CenterFreq * r.CenterFreq
	return r.Amplitude * (1 - 2*a*tau*tau) * math.Exp(-a*tau*tau)
}

// Tabulated is a fixed-sampling-interval time function with linear
// interpolation between samples and zero outside the tabulated range.
type Tabulated struct {
	Dt      float64
	Samples []float64
}

func (tf *Tabulated) ValueAt(t float64) float64 {
	if len(tf.Samples) == 0 || tf.Dt <= 0 {
		return 0
	}
	idx := t / tf.Dt
	if idx < 0 || idx > float64(len(tf.Samples)-1) {
		return 0
	}
	i0 := int(idx)
	if i0 >= len(tf.Samples)-1 {
		return tf.Samples[len(tf.Samples)-1]
	}
	frac := idx - float64(i0)
	return tf.Samples[i0]*(1-frac) + tf.Samples[i0+1]*frac
}
