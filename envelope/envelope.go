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

	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/internal"
	"github.com/pkg/errors"
)

const (
	// duplicateTol is the relative distance below which two abscissae
	// are considered equal.
	duplicateTol = 1e-12
	// slopeTol is the relative tolerance used when comparing derivatives
	// of neighbouring support points.
	slopeTol = 1e-10
	// hullTol is the relative tolerance by which a log-density value may
	// exceed the upper hull before concavity is considered violated.
	hullTol = 1e-8
)

// SupportPoint is an abscissa X with the log-density H and its
// derivative DH evaluated at X.
type SupportPoint struct {
	X  float64
	H  float64
	DH float64
}

// Envelope holds the upper and lower hull of a concave log-density.
type Envelope struct {
	dom       density.Domain
	maxPoints int

	points []SupportPoint
	// z[i] is the boundary between the tangents of points i and i+1.
	z []float64
	// logW[i] is the log of the integral of exp(upper hull) over
	// segment i and logCum[i] the log of the sum of logW[0..i].
	logW   []float64
	logCum []float64
}

// New returns an Envelope built from the given support points on the
// domain dom. It accepts at least two points, which are sorted and
// deduplicated. Growth by Insert stops when the envelope holds
// maxPoints points; maxPoints <= 0 means no limit.
//
// It returns an error wrapping ErrNonConcaveDensity if the derivatives
// of neighbouring points increase, and one wrapping ErrInvalidParameter
// if the points cannot bound an integrable envelope.
func New(points []SupportPoint, dom density.Domain, maxPoints int) (*Envelope, error) {
	if len(points) < 2 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter,
			"envelope needs at least two support points, got %d", len(points))
	}
	for _, p := range points {
		if err := checkPoint(p, dom); err != nil {
			return nil, err
		}
	}

	sorted := make([]SupportPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	pts := sorted[:1]
	for _, p := range sorted[1:] {
		if !sameAbscissa(pts[len(pts)-1].X, p.X) {
			pts = append(pts, p)
		}
	}
	if len(pts) < 2 {
		return nil, errors.Wrap(internal.ErrInvalidParameter,
			"envelope needs at least two distinct support points")
	}

	z := make([]float64, len(pts)-1)
	for i := range z {
		zi, err := intersect(pts[i], pts[i+1])
		if err != nil {
			return nil, err
		}
		z[i] = zi
	}

	e := &Envelope{
		dom:       dom,
		maxPoints: maxPoints,
		points:    pts,
		z:         z,
		logW:      make([]float64, len(pts)),
		logCum:    make([]float64, len(pts)),
	}
	if err := e.checkTails(); err != nil {
		return nil, err
	}
	for i := range e.points {
		e.logW[i] = e.segmentLogWeight(i)
	}
	e.accumulate(0)
	if err := e.checkArea(); err != nil {
		return nil, err
	}

	return e, nil
}

// Insert adds a support point to the envelope and updates the hulls
// next to it. It returns false without changing the envelope if a
// point with the same abscissa is already present or if the envelope
// is full.
//
// It returns an error wrapping ErrNonConcaveDensity if p lies above the
// current upper hull or breaks the ordering of derivatives. The
// envelope is left unchanged on error.
func (e *Envelope) Insert(p SupportPoint) (bool, error) {
	if err := checkPoint(p, e.dom); err != nil {
		return false, err
	}

	k := len(e.points)
	j := sort.Search(k, func(i int) bool { return e.points[i].X >= p.X })
	if (j < k && sameAbscissa(e.points[j].X, p.X)) || (j > 0 && sameAbscissa(e.points[j-1].X, p.X)) {
		return false, nil
	}
	if e.Full() {
		return false, nil
	}

	uh := e.UpperHullValue(p.X)
	if p.H > uh+hullTol*(1+math.Abs(uh)) {
		return false, errors.Wrapf(internal.ErrNonConcaveDensity,
			"log-density %v at x=%v lies above the upper hull %v", p.H, p.X, uh)
	}

	var zl, zr float64
	var err error
	if j > 0 {
		if zl, err = intersect(e.points[j-1], p); err != nil {
			return false, err
		}
	}
	if j < k {
		if zr, err = intersect(p, e.points[j]); err != nil {
			return false, err
		}
	}
	if (j == 0 && math.IsInf(e.dom.Lower, -1) && p.DH <= 0) ||
		(j == k && math.IsInf(e.dom.Upper, 1) && p.DH >= 0) {
		return false, errors.Wrapf(internal.ErrNonConcaveDensity,
			"outermost derivative %v at x=%v does not decay towards the unbounded tail", p.DH, p.X)
	}

	e.points = append(e.points, SupportPoint{})
	copy(e.points[j+1:], e.points[j:])
	e.points[j] = p

	switch {
	case j == 0:
		e.z = insertAt(e.z, 0, zr)
	case j == k:
		e.z = append(e.z, zl)
	default:
		e.z[j-1] = zl
		e.z = insertAt(e.z, j, zr)
	}

	e.logW = insertAt(e.logW, j, 0)
	e.logCum = append(e.logCum, 0)
	first := j - 1
	if first < 0 {
		first = 0
	}
	last := j + 1
	if last > k {
		last = k
	}
	for i := first; i <= last; i++ {
		e.logW[i] = e.segmentLogWeight(i)
	}
	e.accumulate(first)

	return true, e.checkArea()
}

// Full reports whether the envelope reached its maximal number of
// support points.
func (e *Envelope) Full() bool {
	return e.maxPoints > 0 && len(e.points) >= e.maxPoints
}

// Len returns the number of support points.
func (e *Envelope) Len() int {
	return len(e.points)
}

// Domain returns the support the envelope was built on.
func (e *Envelope) Domain() density.Domain {
	return e.dom
}

// Points returns a copy of the support points in increasing order.
func (e *Envelope) Points() []SupportPoint {
	pts := make([]SupportPoint, len(e.points))
	copy(pts, e.points)
	return pts
}

// LogArea returns the logarithm of the integral of exp(upper hull)
// over the whole support.
func (e *Envelope) LogArea() float64 {
	return e.logCum[len(e.logCum)-1]
}

// bounds returns the interval [lo, hi) covered by segment i.
func (e *Envelope) bounds(i int) (float64, float64) {
	lo, hi := e.dom.Lower, e.dom.Upper
	if i > 0 {
		lo = e.z[i-1]
	}
	if i < len(e.z) {
		hi = e.z[i]
	}
	return lo, hi
}

func (e *Envelope) segmentLogWeight(i int) float64 {
	lo, hi := e.bounds(i)
	p := e.points[i]
	return internal.LogIntegralExp(p.X, p.H, p.DH, lo, hi)
}

// accumulate refreshes the cumulative table from segment first onward.
func (e *Envelope) accumulate(first int) {
	acc := math.Inf(-1)
	if first > 0 {
		acc = e.logCum[first-1]
	}
	for i := first; i < len(e.logW); i++ {
		acc = internal.LogAdd(acc, e.logW[i])
		e.logCum[i] = acc
	}
}

func (e *Envelope) checkTails() error {
	first, last := e.points[0], e.points[len(e.points)-1]
	if math.IsInf(e.dom.Lower, -1) && first.DH <= 0 {
		return errors.Wrapf(internal.ErrInvalidParameter,
			"leftmost support point x=%v should have a positive derivative, got %v", first.X, first.DH)
	}
	if math.IsInf(e.dom.Upper, 1) && last.DH >= 0 {
		return errors.Wrapf(internal.ErrInvalidParameter,
			"rightmost support point x=%v should have a negative derivative, got %v", last.X, last.DH)
	}
	return nil
}

func (e *Envelope) checkArea() error {
	area := e.LogArea()
	if !internal.IsFinite(area) {
		return errors.Wrapf(internal.ErrNumericOverflow, "envelope log-area is %v", area)
	}
	return nil
}

// intersect returns the boundary between the tangents at a and b,
// with a.X < b.X. The boundary always lies in [a.X, b.X]; parallel
// tangents meet halfway.
func intersect(a, b SupportPoint) (float64, error) {
	d := a.DH - b.DH
	if d < -slopeTol*(1+math.Abs(a.DH)+math.Abs(b.DH)) {
		return 0, errors.Wrapf(internal.ErrNonConcaveDensity,
			"derivative increases from %v at x=%v to %v at x=%v", a.DH, a.X, b.DH, b.X)
	}

	z := (a.X + b.X) / 2
	if d > 0 {
		zi := (b.H - a.H - b.X*b.DH + a.X*a.DH) / d
		if internal.IsFinite(zi) {
			z = math.Max(a.X, math.Min(b.X, zi))
		}
	}
	return z, nil
}

func checkPoint(p SupportPoint, dom density.Domain) error {
	if !internal.IsFinite(p.X) || !internal.IsFinite(p.H) || !internal.IsFinite(p.DH) {
		return errors.Wrapf(internal.ErrNumericOverflow,
			"support point (x=%v, h=%v, h'=%v) is not finite", p.X, p.H, p.DH)
	}
	if !dom.Contains(p.X) {
		return errors.Wrapf(internal.ErrInvalidParameter,
			"support point x=%v lies outside (%v, %v)", p.X, dom.Lower, dom.Upper)
	}
	return nil
}

func sameAbscissa(a, b float64) bool {
	return math.Abs(a-b) <= duplicateTol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func insertAt(s []float64, i int, v float64) []float64 {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
