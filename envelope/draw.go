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

package envelope

import (
	"math"
	"sort"
)

// flatTol is the value of |slope * width| below which a segment is
// inverted as if it were uniform.
const flatTol = 1e-10

// minUniform replaces a zero uniform so that a candidate never lands on
// a segment end.
const minUniform = 1.0 / (1 << 53)

// Draw returns a candidate sampled from the piecewise exponential
// density exp(upper hull), together with the upper hull value at the
// candidate. u1 selects a segment with probability proportional to its
// weight and u2 selects the position inside the segment; both should
// be independent uniform values in [0, 1).
//
// The candidate always lies strictly inside the support.
func (e *Envelope) Draw(u1, u2 float64) (float64, float64) {
	k := len(e.points)
	target := math.Log(u1) + e.LogArea()
	i := sort.Search(k, func(i int) bool { return e.logCum[i] >= target })
	if i == k {
		i = k - 1
	}

	lo, hi := e.bounds(i)
	p := e.points[i]
	x := invertSegment(p.DH, lo, hi, u2)

	x = math.Max(lo, math.Min(hi, x))
	if x <= e.dom.Lower {
		x = math.Nextafter(e.dom.Lower, math.Inf(1))
	} else if x >= e.dom.Upper {
		x = math.Nextafter(e.dom.Upper, math.Inf(-1))
	}

	return x, p.H + p.DH*(x-p.X)
}

// invertSegment returns the u-quantile of the density proportional to
// exp(s*x) truncated to [lo, hi). The computation is anchored at the
// end where the density is largest, which is finite by construction.
func invertSegment(s, lo, hi, u float64) float64 {
	if u <= 0 {
		u = minUniform
	}
	w := hi - lo
	if s == 0 || math.Abs(s*w) < flatTol {
		return lo + u*w
	}
	if s > 0 {
		return hi + math.Log(u+(1-u)*math.Exp(-s*w))/s
	}
	return lo + math.Log1p(u*math.Expm1(s*w))/s
}
