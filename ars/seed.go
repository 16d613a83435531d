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

package ars

import (
	"math"
	"sort"

	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/envelope"
	"github.com/fentec-project/goars/internal"
	"github.com/pkg/errors"
)

// maxBracketSteps bounds the number of times a seed is pushed outwards
// while looking for a decaying tangent.
const maxBracketSteps = 64

// initialPoints evaluates the seeds of d and, on unbounded sides of the
// support, adds points further out until the outermost tangents decay.
func initialPoints(d density.LogDensity) ([]envelope.SupportPoint, error) {
	seeds := d.Seeds()
	if len(seeds) < 2 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter,
			"density should provide at least two seeds, got %d", len(seeds))
	}

	dom := d.Domain()
	pts := make([]envelope.SupportPoint, 0, len(seeds)+2)
	for _, x := range seeds {
		p, err := evaluateSeed(d, x)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	step := math.Max(1, pts[len(pts)-1].X-pts[0].X)

	if math.IsInf(dom.Lower, -1) {
		x := pts[0].X
		for i := 0; pts[0].DH <= 0; i++ {
			if i == maxBracketSteps {
				return nil, errors.Wrapf(internal.ErrInvalidParameter,
					"no increasing tangent found left of x=%v", pts[0].X)
			}
			x -= step * math.Ldexp(1, i)
			p, err := evaluateSeed(d, x)
			if err != nil {
				return nil, err
			}
			pts = append([]envelope.SupportPoint{p}, pts...)
		}
	}

	if math.IsInf(dom.Upper, 1) {
		x := pts[len(pts)-1].X
		for i := 0; pts[len(pts)-1].DH >= 0; i++ {
			if i == maxBracketSteps {
				return nil, errors.Wrapf(internal.ErrInvalidParameter,
					"no decreasing tangent found right of x=%v", pts[len(pts)-1].X)
			}
			x += step * math.Ldexp(1, i)
			p, err := evaluateSeed(d, x)
			if err != nil {
				return nil, err
			}
			pts = append(pts, p)
		}
	}

	return pts, nil
}

func evaluateSeed(d density.LogDensity, x float64) (envelope.SupportPoint, error) {
	if !d.Domain().Contains(x) {
		return envelope.SupportPoint{}, errors.Wrapf(internal.ErrInvalidParameter,
			"seed x=%v lies outside the support", x)
	}
	h, dh := d.Evaluate(x)
	if !internal.IsFinite(h) || !internal.IsFinite(dh) {
		return envelope.SupportPoint{}, errors.Wrapf(internal.ErrInvalidParameter,
			"log-density at seed x=%v is not finite: h=%v, h'=%v", x, h, dh)
	}
	return envelope.SupportPoint{X: x, H: h, DH: dh}, nil
}
