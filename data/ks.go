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
	"math"
)

// ksTerms bounds the number of terms of the Kolmogorov series.
const ksTerms = 100

// KolmogorovSmirnov returns the one-sample Kolmogorov-Smirnov
// statistic of the vector against the continuous distribution
// function cdf, together with its asymptotic p-value.
func (v Vector) KolmogorovSmirnov(cdf func(float64) float64) (float64, float64) {
	n := len(v)
	if n == 0 {
		return 0, 1
	}
	s := v.Sorted()
	nf := float64(n)

	d := 0.0
	for i, x := range s {
		f := cdf(x)
		d = math.Max(d, math.Max(float64(i+1)/nf-f, f-float64(i)/nf))
	}

	sqrtN := math.Sqrt(nf)
	return d, kolmogorovQ((sqrtN + 0.12 + 0.11/sqrtN) * d)
}

// kolmogorovQ returns the survival function of the Kolmogorov
// distribution, 2 * sum_{j>=1} (-1)^(j-1) exp(-2 j^2 lambda^2).
func kolmogorovQ(lambda float64) float64 {
	if lambda < 0.2 {
		return 1
	}
	sum := 0.0
	sign := 1.0
	for j := 1; j <= ksTerms; j++ {
		term := sign * math.Exp(-2*float64(j*j)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12*math.Abs(sum) {
			break
		}
		sign = -sign
	}
	return math.Max(0, math.Min(1, 2*sum))
}
