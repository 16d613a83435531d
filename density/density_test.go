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

package density_test

import (
	"math"
	"testing"

	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

type logProber interface {
	LogProb(x float64) float64
}

func newGamma(t *testing.T, shape, rate float64) *density.Gamma {
	d, err := density.NewGamma(shape, rate)
	require.NoError(t, err)
	return d
}

func newWeibull(t *testing.T, scale, shape float64) *density.Weibull {
	d, err := density.NewWeibull(scale, shape)
	require.NoError(t, err)
	return d
}

func newNormal(t *testing.T, mu, sigma float64) *density.Normal {
	d, err := density.NewNormal(mu, sigma)
	require.NoError(t, err)
	return d
}

func newBeta(t *testing.T, alpha, beta float64) *density.Beta {
	d, err := density.NewBeta(alpha, beta)
	require.NoError(t, err)
	return d
}

func TestLogDensity_MatchesReference(t *testing.T) {
	var tests = []struct {
		name string
		d    density.LogDensity
		ref  logProber
		xs   []float64
	}{
		{
			name: "Gamma(5,2)",
			d:    newGamma(t, 5, 2),
			ref:  distuv.Gamma{Alpha: 5, Beta: 2},
			xs:   []float64{0.01, 0.5, 1.5, 2.5, 7, 30},
		},
		{
			name: "Gamma(1,3)",
			d:    newGamma(t, 1, 3),
			ref:  distuv.Gamma{Alpha: 1, Beta: 3},
			xs:   []float64{0.001, 0.2, 1, 10},
		},
		{
			name: "Weibull(2,1.5)",
			d:    newWeibull(t, 2, 1.5),
			ref:  distuv.Weibull{Lambda: 2, K: 1.5},
			xs:   []float64{0.05, 1, 2, 5},
		},
		{
			name: "Normal(1,3)",
			d:    newNormal(t, 1, 3),
			ref:  distuv.Normal{Mu: 1, Sigma: 3},
			xs:   []float64{-20, -1, 0.5, 4, 12},
		},
		{
			name: "Beta(2,5)",
			d:    newBeta(t, 2, 5),
			ref:  distuv.Beta{Alpha: 2, Beta: 5},
			xs:   []float64{0.001, 0.3, 0.5, 0.999},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, x := range test.xs {
				h, dh := test.d.Evaluate(x)
				assert.InDelta(t, test.ref.LogProb(x), h, 1e-9, "log-density at %v", x)

				// central difference of the log-density
				eps := 1e-6 * math.Max(1, math.Abs(x))
				if x-eps <= test.d.Domain().Lower || x+eps >= test.d.Domain().Upper {
					eps = x * 1e-4
				}
				hp, _ := test.d.Evaluate(x + eps)
				hm, _ := test.d.Evaluate(x - eps)
				assert.InEpsilon(t, (hp-hm)/(2*eps), dh, 1e-4, "derivative at %v", x)
			}
		})
	}
}

func TestLogDensity_OutsideSupport(t *testing.T) {
	var tests = []struct {
		name string
		d    density.LogDensity
		xs   []float64
	}{
		{name: "gamma", d: newGamma(t, 5, 2), xs: []float64{0, -1, math.Inf(1), math.NaN()}},
		{name: "weibull", d: newWeibull(t, 1, 2), xs: []float64{0, -3}},
		{name: "normal", d: newNormal(t, 0, 1), xs: []float64{math.Inf(-1), math.Inf(1)}},
		{name: "beta", d: newBeta(t, 2, 2), xs: []float64{0, 1, 1.5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, x := range test.xs {
				h, _ := test.d.Evaluate(x)
				assert.True(t, math.IsInf(h, -1), "log-density at %v should be -Inf", x)
			}
		})
	}
}

func TestLogDensity_Seeds(t *testing.T) {
	var tests = []struct {
		name string
		d    density.LogDensity
	}{
		{name: "gamma small shape", d: newGamma(t, 2, 1)},
		{name: "gamma large shape", d: newGamma(t, 50, 0.5)},
		{name: "gamma unit shape", d: newGamma(t, 1, 2)},
		{name: "gamma convex shape", d: newGamma(t, 0.5, 2)},
		{name: "weibull", d: newWeibull(t, 3, 2)},
		{name: "weibull exponential", d: newWeibull(t, 3, 1)},
		{name: "normal", d: newNormal(t, -4, 0.1)},
		{name: "beta", d: newBeta(t, 3, 9)},
		{name: "beta uniform", d: newBeta(t, 1, 1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			seeds := test.d.Seeds()
			require.GreaterOrEqual(t, len(seeds), 2)
			for i, x := range seeds {
				assert.True(t, test.d.Domain().Contains(x), "seed %v outside support", x)
				if i > 0 {
					assert.Less(t, seeds[i-1], x)
				}
			}
		})
	}
}

func TestLogDensity_InvalidParameters(t *testing.T) {
	var tests = []struct {
		name  string
		build func() error
	}{
		{name: "gamma zero shape", build: func() error { _, err := density.NewGamma(0, 1); return err }},
		{name: "gamma negative rate", build: func() error { _, err := density.NewGamma(2, -1); return err }},
		{name: "gamma NaN shape", build: func() error { _, err := density.NewGamma(math.NaN(), 1); return err }},
		{name: "weibull zero scale", build: func() error { _, err := density.NewWeibull(0, 2); return err }},
		{name: "normal zero sigma", build: func() error { _, err := density.NewNormal(0, 0); return err }},
		{name: "normal infinite mu", build: func() error { _, err := density.NewNormal(math.Inf(1), 1); return err }},
		{name: "beta negative alpha", build: func() error { _, err := density.NewBeta(-2, 1); return err }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.build()
			assert.Error(t, err)
			assert.Equal(t, internal.ErrInvalidParameter, errors.Cause(err))
		})
	}
}

func TestGamma_LargeShape(t *testing.T) {
	for _, shape := range []float64{1e8, 1e10} {
		g := newGamma(t, shape, 1)
		mode := shape - 1
		sd := math.Sqrt(shape)

		h0, dh0 := g.Evaluate(mode)
		assert.InDelta(t, 0, dh0, 1e-12, "shape %v", shape)
		// -ln(sd*sqrt(2*pi)) for the normal approximation at the mode
		assert.InDelta(t, -math.Log(sd*math.Sqrt(2*math.Pi)), h0, 1e-2, "shape %v", shape)

		// one standard deviation away the log-density drops by about 1/2
		hr, _ := g.Evaluate(mode + sd)
		hl, _ := g.Evaluate(mode - sd)
		assert.InDelta(t, -0.5, hr-h0, 1e-2, "shape %v", shape)
		assert.InDelta(t, -0.5, hl-h0, 1e-2, "shape %v", shape)

		// second differences stay negative at small steps
		for _, k := range []float64{1, 10, 100} {
			hp, dhp := g.Evaluate(mode + k)
			hm, dhm := g.Evaluate(mode - k)
			assert.Less(t, hp+hm-2*h0, 0.0, "shape %v, step %v", shape, k)
			assert.InDelta(t, -k*k/mode, hp+hm-2*h0, 1e-3*k*k/mode, "shape %v, step %v", shape, k)
			assert.Less(t, dhp, dh0)
			assert.Greater(t, dhm, dh0)
		}
	}
}

func TestGamma_NearZero(t *testing.T) {
	for _, shape := range []float64{1.5, 5, 1e8} {
		h, _ := newGamma(t, shape, 2).Evaluate(math.SmallestNonzeroFloat64)
		assert.False(t, math.IsInf(h, 0), "shape %v", shape)
		assert.False(t, math.IsNaN(h), "shape %v", shape)
	}
}
