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

// gammaSeedShape is the shape above which the seeds of Gamma are placed
// symmetrically around the mode.
const gammaSeedShape = 5.83

// Gamma is the log-density of the Gamma distribution with the given
// shape and rate, supported on (0, Inf). It is log-concave for
// shape >= 1.
type Gamma struct {
	shape   float64
	rate    float64
	logNorm float64
	// mode and the log-density at the mode, set for shape > 1.
	mode    float64
	logPeak float64
}

// NewGamma returns an instance of Gamma.
// It returns an error if shape or rate is not positive.
func NewGamma(shape, rate float64) (*Gamma, error) {
	if err := checkParams("gamma", []string{"shape", "rate"}, shape, rate); err != nil {
		return nil, err
	}
	lg, _ := math.Lgamma(shape)

	g := &Gamma{
		shape:   shape,
		rate:    rate,
		logNorm: shape*math.Log(rate) - lg,
	}
	if shape > 1 {
		g.mode = (shape - 1) / rate
		g.logPeak = (shape-1)*(math.Log(g.mode)-1) + g.logNorm
	}

	return g, nil
}

// Shape returns the shape parameter.
func (g *Gamma) Shape() float64 { return g.shape }

// Rate returns the rate parameter.
func (g *Gamma) Rate() float64 { return g.rate }

// Evaluate returns (shape-1)*ln(x) - rate*x + C and its derivative.
//
// For shape > 1 the value is computed relative to the mode m as
// (shape-1)*(ln(x/m) - (x-m)/m) plus the log-density at m, which keeps
// it accurate when shape*ln(x) and rate*x are large.
func (g *Gamma) Evaluate(x float64) (float64, float64) {
	if !Positive.Contains(x) {
		return outside()
	}
	dh := (g.shape-1)/x - g.rate
	if g.shape <= 1 {
		return (g.shape-1)*math.Log(x) - g.rate*x + g.logNorm, dh
	}

	d := (x - g.mode) / g.mode
	var l float64
	if math.Abs(d) < 0.5 {
		l = math.Log1p(d)
	} else {
		l = math.Log(x) - math.Log(g.mode)
	}
	return (g.shape-1)*(l-d) + g.logPeak, dh
}

// Domain returns (0, Inf).
func (g *Gamma) Domain() Domain {
	return Positive
}

// Seeds returns two abscissae around the mode, spread by one standard
// deviation.
func (g *Gamma) Seeds() []float64 {
	mode := (g.shape - 1) / g.rate
	sd := math.Sqrt(g.shape) / g.rate

	switch {
	case mode <= 0:
		return []float64{sd / 2, 2 * sd}
	case g.shape <= gammaSeedShape:
		return []float64{mode / 2, mode + sd}
	default:
		return []float64{mode - sd, mode + sd}
	}
}
