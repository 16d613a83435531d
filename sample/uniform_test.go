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

package sample_test

import (
	"testing"

	"github.com/fentec-project/goars/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type uniformBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

// testUniformSource checks the range, the first two moments and the
// bucket counts of values drawn from src.
func testUniformSource(t *testing.T, src sample.UniformSource, expect uniformBounds) {
	const n = 100000
	const buckets = 20

	vec := make([]float64, n)
	counts := make([]float64, buckets)
	for i := range vec {
		vec[i] = src.Float64()
		require.True(t, vec[i] >= 0 && vec[i] < 1, "value %v outside [0, 1)", vec[i])
		counts[int(vec[i]*buckets)]++
	}

	me, v := stat.MeanVariance(vec, nil)
	assert.True(t, me > expect.meanLow, "mean value of the uniform distribution is too small")
	assert.True(t, me < expect.meanHigh, "mean value of the uniform distribution is too big")
	assert.True(t, v > expect.varLow, "variance of the uniform distribution is too small")
	assert.True(t, v < expect.varHigh, "variance of the uniform distribution is too big")

	expected := float64(n) / buckets
	chi2 := 0.0
	for _, c := range counts {
		chi2 += (c - expected) * (c - expected) / expected
	}
	// alpha of 0.001 with buckets-1 degrees of freedom
	critical := distuv.ChiSquared{K: buckets - 1}.Quantile(0.999)
	assert.Less(t, chi2, critical, "bucket counts are biased")
}

func TestUniform(t *testing.T) {
	var tests = []struct {
		name   string
		src    sample.UniformSource
		expect uniformBounds
	}{
		{
			name: "crypto",
			src:  sample.NewUniform(),
			expect: uniformBounds{
				meanLow:  0.49,
				meanHigh: 0.51,
				varLow:   0.08,
				varHigh:  0.087,
			},
		},
		{
			name: "salsa20",
			src:  sample.NewUniformDet(sample.KeyFromSeed(7)),
			expect: uniformBounds{
				meanLow:  0.49,
				meanHigh: 0.51,
				varLow:   0.08,
				varHigh:  0.087,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testUniformSource(t, test.src, test.expect)
		})
	}
}

func TestUniform_Sample(t *testing.T) {
	var s sample.Sampler = sample.NewUniform()
	for i := 0; i < 100; i++ {
		v, err := s.Sample()
		assert.NoError(t, err)
		assert.True(t, v >= 0 && v < 1)
	}
}
