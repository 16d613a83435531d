/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import "math"

// linearTol is the value of |slope * width| below which an exponential
// segment is treated as flat.
const linearTol = 1e-10

// LogAdd returns log(exp(a) + exp(b)) without leaving log space.
func LogAdd(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}
	return a + math.Log1p(math.Exp(b-a))
}

// LogIntegralExp returns the logarithm of the integral of
// exp(h0 + s*(x - x0)) over the interval [lo, hi). Infinite bounds are
// allowed on the side towards which the line decreases; an integral that
// diverges is reported as +Inf and an empty interval as -Inf.
func LogIntegralExp(x0, h0, s, lo, hi float64) float64 {
	w := hi - lo
	if !(w > 0) {
		return math.Inf(-1)
	}
	if math.Abs(s*w) < linearTol || s == 0 {
		if math.IsInf(w, 1) {
			return math.Inf(1)
		}
		return h0 + s*((lo+hi)/2-x0) + math.Log(w)
	}
	if s > 0 {
		if math.IsInf(hi, 1) {
			return math.Inf(1)
		}
		return h0 + s*(hi-x0) - math.Log(s) + math.Log(-math.Expm1(-s*w))
	}
	if math.IsInf(lo, -1) {
		return math.Inf(1)
	}
	return h0 + s*(lo-x0) - math.Log(-s) + math.Log(-math.Expm1(s*w))
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
