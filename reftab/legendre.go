// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reftab

import "math"

// legendreValue evaluates the Legendre polynomial P_n(x) via the standard
// three-term recurrence (n+1)P_{n+1} = (2n+1)x P_n - n P_{n-1}.
func legendreValue(n int, x float64) float64 {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return x
	}
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		kf := float64(k)
		p2 := ((2*kf-1)*x*p1 - (kf-1)*p0) / kf
		p0, p1 = p1, p2
	}
	return p1
}

// legendre returns P_n(x) and its derivative P_n'(x), using
// (x^2-1) P_n'(x) = n(x P_n(x) - P_{n-1}(x)) away from the endpoints, and
// the closed form n(n+1)/2 (with sign) at x = ±1.
func legendre(n int, x float64) (p, dp float64) {
	p = legendreValue(n, x)
	if n == 0 {
		return p, 0
	}
	if math.Abs(x*x-1) < 1e-14 {
		// P_n'(1) = n(n+1)/2 ; P_n'(-1) = (-1)^(n+1) n(n+1)/2
		sign := 1.0
		if x < 0 && (n+1)%2 != 0 {
			sign = -1.0
		}
		dp = sign * 0.5 * float64(n) * float64(n+1)
		return p, dp
	}
	pm1 := legendreValue(n-1, x)
	dp = float64(n) * (x*p - pm1) / (x*x - 1)
	return p, dp
}
