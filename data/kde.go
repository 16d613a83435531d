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

package data

import (
	"github.com/fentec-project/goars/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// KDE returns a Gaussian kernel density estimate of the distribution
// the vector was sampled from. The kernel bandwidth is the sample
// standard deviation multiplied by factor.
func (v Vector) KDE(factor float64) (func(x float64) float64, error) {
	if len(v) < 2 {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "density estimate needs at least two samples")
	}
	if !(factor > 0) {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "bandwidth factor should be positive, got %v", factor)
	}
	bw := factor * v.StdDev()
	if !(bw > 0) {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "samples have no spread")
	}
	pts := v.Copy()
	norm := 1 / (bw * float64(len(pts)))

	return func(x float64) float64 {
		sum := 0.0
		for _, xi := range pts {
			sum += distuv.UnitNormal.Prob((x - xi) / bw)
		}
		return sum * norm
	}, nil
}
