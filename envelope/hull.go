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

	"github.com/fentec-project/goars/internal"
)

// Segment describes the piece of the envelope in which the tangent at
// one support point forms the upper hull.
type Segment struct {
	// Lo and Hi bound the interval [Lo, Hi) of the segment.
	Lo, Hi float64
	// Slope and Intercept define the tangent Slope*x + Intercept.
	Slope, Intercept float64
	// ChordSlope and ChordIntercept define the chord from this segment's
	// support point to the next one. HasChord is false for the last
	// segment.
	ChordSlope, ChordIntercept float64
	HasChord                   bool
	// LogWeight is the log of the integral of exp(tangent) over [Lo, Hi).
	LogWeight float64
}

// Segments returns the segments of the upper hull in increasing order.
func (e *Envelope) Segments() []Segment {
	segs := make([]Segment, len(e.points))
	for i, p := range e.points {
		lo, hi := e.bounds(i)
		segs[i] = Segment{
			Lo:        lo,
			Hi:        hi,
			Slope:     p.DH,
			Intercept: p.H - p.DH*p.X,
			LogWeight: e.logW[i],
		}
		if i+1 < len(e.points) {
			q := e.points[i+1]
			s := (q.H - p.H) / (q.X - p.X)
			segs[i].ChordSlope = s
			segs[i].ChordIntercept = p.H - s*p.X
			segs[i].HasChord = true
		}
	}
	return segs
}

// segmentIndex returns the index of the segment containing x.
func (e *Envelope) segmentIndex(x float64) int {
	return sort.Search(len(e.z), func(i int) bool { return e.z[i] > x })
}

// UpperHullValue returns the value of the upper hull at x, which is
// -Inf outside the support.
func (e *Envelope) UpperHullValue(x float64) float64 {
	if !e.dom.Contains(x) {
		return math.Inf(-1)
	}
	p := e.points[e.segmentIndex(x)]
	return p.H + p.DH*(x-p.X)
}

// LowerHullValue returns the value of the lower hull at x. The lower
// hull is only defined between the outermost support points; elsewhere
// the second return value is false.
func (e *Envelope) LowerHullValue(x float64) (float64, bool) {
	k := len(e.points)
	if !(x >= e.points[0].X && x <= e.points[k-1].X) {
		return math.Inf(-1), false
	}
	j := sort.Search(k, func(i int) bool { return e.points[i].X >= x })
	q := e.points[j]
	if q.X == x {
		return q.H, true
	}
	p := e.points[j-1]
	return ((q.X-x)*p.H + (x-p.X)*q.H) / (q.X - p.X), true
}

// CDF returns the cumulative distribution function at x of the
// normalized piecewise exponential density exp(upper hull).
func (e *Envelope) CDF(x float64) float64 {
	if x <= e.dom.Lower {
		return 0
	}
	if x >= e.dom.Upper {
		return 1
	}
	i := e.segmentIndex(x)
	lo, _ := e.bounds(i)
	p := e.points[i]

	acc := math.Inf(-1)
	if i > 0 {
		acc = e.logCum[i-1]
	}
	acc = internal.LogAdd(acc, internal.LogIntegralExp(p.X, p.H, p.DH, lo, x))
	return math.Min(1, math.Exp(acc-e.LogArea()))
}
