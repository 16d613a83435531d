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

package density

import (
	"math"

	"github.com/fentec-project/goars/internal"
	"github.com/pkg/errors"
)

//go:generate mockgen -source density.go -destination density_mock.go -package density

// LogDensity is a log-density of a univariate distribution.
type LogDensity interface {
	// Evaluate returns h = log f(x) and its derivative at x.
	// Outside the support h is -Inf.
	Evaluate(x float64) (h, dh float64)
	// Domain returns the open support of the distribution.
	Domain() Domain
	// Seeds returns at least two abscissae inside the support,
	// close to the mode.
	Seeds() []float64
}

// Domain is an open interval (Lower, Upper). Either bound may be infinite.
type Domain struct {
	Lower float64
	Upper float64
}

// Real is the whole real line.
var Real = Domain{Lower: math.Inf(-1), Upper: math.Inf(1)}

// Positive is the open half line (0, Inf).
var Positive = Domain{Lower: 0, Upper: math.Inf(1)}

// Unit is the open interval (0, 1).
var Unit = Domain{Lower: 0, Upper: 1}

// Contains reports whether x lies strictly inside the domain.
func (d Domain) Contains(x float64) bool {
	return x > d.Lower && x < d.Upper
}

// outside is the value reported by Evaluate outside the support.
func outside() (float64, float64) {
	return math.Inf(-1), math.NaN()
}

// checkParams returns an error if any of the named parameters is
// not a positive finite number.
func checkParams(family string, names []string, values ...float64) error {
	for i, v := range values {
		if !internal.IsFinite(v) || v <= 0 {
			return errors.Wrapf(internal.ErrInvalidParameter,
				"%s: %s should be positive and finite, got %v", family, names[i], v)
		}
	}
	return nil
}
