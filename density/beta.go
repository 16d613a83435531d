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
)

// Beta is the log-density of the Beta distribution with shape
// parameters alpha and beta, supported on (0, 1). It is log-concave
// when both parameters are at least one.
type Beta struct {
	alpha   float64
	beta    float64
	logNorm float64
}

// NewBeta returns an instance of Beta.
// It returns an error if alpha or beta is not positive.
func NewBeta(alpha, beta float64) (*Beta, error) {
	if err := checkParams("beta", []string{"alpha", "beta"}, alpha, beta); err != nil {
		return nil, err
	}
	la, _ := math.Lgamma(alpha)
	lb, _ := math.Lgamma(beta)
	lab, _ := math.Lgamma(alpha + beta)

	return &Beta{
		alpha:   alpha,
		beta:    beta,
		logNorm: lab - la - lb,
	}, nil
}

// Evaluate returns (alpha-1)*ln(x) + (beta-1)*ln(1-x) + C and its
// derivative.
func (b *Beta) Evaluate(x float64) (float64, float64) {
	if !Unit.Contains(x) {
		return outside()
	}
	h := (b.alpha-1)*math.Log(x) + (b.beta-1)*math.Log1p(-x) + b.logNorm
	dh := (b.alpha-1)/x - (b.beta-1)/(1-x)
	return h, dh
}

// Domain returns (0, 1).
func (b *Beta) Domain() Domain {
	return Unit
}

// Seeds returns two abscissae on either side of the mode, or the
// quartiles when the density has no interior mode.
func (b *Beta) Seeds() []float64 {
	if b.alpha <= 1 || b.beta <= 1 {
		return []float64{0.25, 0.75}
	}
	mode := (b.alpha - 1) / (b.alpha + b.beta - 2)
	return []float64{mode / 2, (mode + 1) / 2}
}
