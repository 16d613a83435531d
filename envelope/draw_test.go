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

package envelope_test

import (
	"math"
	"testing"

	"github.com/fentec-project/goars/data"
	"github.com/fentec-project/goars/density"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEnvelope_Draw(t *testing.T) {
	for _, test := range hullCases {
		t.Run(test.name, func(t *testing.T) {
			env := seeded(t, test.d, 0)
			for _, p := range supportPoints(test.d, test.extra...) {
				_, err := env.Insert(p)
				require.NoError(t, err)
			}
			dom := test.d.Domain()

			extremes := []float64{0, 1e-300, 1e-12, 0.5, 1 - 1e-12, math.Nextafter(1, 0)}
			for _, u1 := range extremes {
				for _, u2 := range extremes {
					x, uh := env.Draw(u1, u2)
					assert.True(t, dom.Contains(x), "draw(%v, %v) = %v", u1, u2, x)
					assert.InDelta(t, env.UpperHullValue(x), uh, 1e-9*(1+math.Abs(uh)))
				}
			}
		})
	}
}

func TestEnvelope_DrawFollowsCDF(t *testing.T) {
	for _, test := range hullCases {
		t.Run(test.name, func(t *testing.T) {
			env := seeded(t, test.d, 0)
			for _, p := range supportPoints(test.d, test.extra[:2]...) {
				_, err := env.Insert(p)
				require.NoError(t, err)
			}

			rng := rand.New(rand.NewSource(42))
			xs := make(data.Vector, 20000)
			for i := range xs {
				xs[i], _ = env.Draw(rng.Float64(), rng.Float64())
			}

			require.NoError(t, xs.CheckBound(test.d.Domain().Lower, test.d.Domain().Upper))
			_, p := xs.KolmogorovSmirnov(env.CDF)
			assert.Greater(t, p, 0.01)
		})
	}
}

func TestEnvelope_DrawLinear(t *testing.T) {
	d, err := density.NewGamma(1, 1)
	require.NoError(t, err)
	env := seeded(t, d, 0)

	// the hull is exact, so draws follow the exponential distribution
	rng := rand.New(rand.NewSource(7))
	xs := make(data.Vector, 20000)
	for i := range xs {
		xs[i], _ = env.Draw(rng.Float64(), rng.Float64())
	}
	_, p := xs.KolmogorovSmirnov(func(x float64) float64 { return 1 - math.Exp(-x) })
	assert.Greater(t, p, 0.01)
	assert.InDelta(t, 1.0, xs.Mean(), 0.05)
}
