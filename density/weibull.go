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

// Weibull is the log-density of the Weibull distribution with scale
// lambda and shape k, supported on (0, Inf). It is log-concave for k >= 1.
type Weibull struct {
	scale   float64
	shape   float64
	logNorm float64
}

// NewWeibull returns an instance of Weibull.
// It returns an error if scale or shape is not positive.
func NewWeibull(scale, shape float64) (*Weibull, error) {
	if err := checkParams("weibull", []string{"scale", "shape"}, scale, shape); err != nil {
		return nil, err
	}

	return &Weibull{
		scale:   scale,
		shape:   shape,
		logNorm: math.Log(shape) - shape*math.Log(scale),
	}, nil
}

// Evaluate returns (k-1)*ln(x) - (x/lambda)^k + C and its derivative.
func (w *Weibull) Evaluate(x float64) (float64, float64) {
	if !Positive.Contains(x) {
		return outside()
	}
	z := x / w.scale
	zk1 := math.Pow(z, w.shape-1)

	h := (w.shape-1)*math.Log(x) - zk1*z + w.logNorm
	dh := (w.shape-1)/x - w.shape*zk1/w.scale
	return h, dh
}

// Domain returns (0, Inf).
func (w *Weibull) Domain() Domain {
	return Positive
}

// Seeds returns half of the mode and the mode shifted by the scale.
func (w *Weibull) Seeds() []float64 {
	if w.shape <= 1 {
		return []float64{w.scale / 2, 2 * w.scale}
	}
	mode := w.scale * math.Pow((w.shape-1)/w.shape, 1/w.shape)
	return []float64{mode / 2, mode + w.scale}
}
