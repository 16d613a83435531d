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

// Normal is the log-density of the Normal (Gaussian) distribution
// with mean mu and standard deviation sigma.
type Normal struct {
	mu    float64
	sigma float64
}

// NewNormal returns an instance of Normal.
// It returns an error if sigma is not positive or mu is not finite.
func NewNormal(mu, sigma float64) (*Normal, error) {
	if err := checkParams("normal", []string{"sigma"}, sigma); err != nil {
		return nil, err
	}
	if !internal.IsFinite(mu) {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "normal: mu should be finite, got %v", mu)
	}

	return &Normal{mu: mu, sigma: sigma}, nil
}

// Evaluate returns -z^2/2 - ln(sigma*sqrt(2*pi)) with z = (x-mu)/sigma,
// and its derivative.
func (n *Normal) Evaluate(x float64) (float64, float64) {
	if !Real.Contains(x) {
		return outside()
	}
	z := (x - n.mu) / n.sigma
	return -z*z/2 - math.Log(n.sigma) - math.Log(2*math.Pi)/2, -z / n.sigma
}

// Domain returns the whole real line.
func (n *Normal) Domain() Domain {
	return Real
}

// Seeds returns the abscissae one standard deviation around the mean.
func (n *Normal) Seeds() []float64 {
	return []float64{n.mu - n.sigma, n.mu + n.sigma}
}
