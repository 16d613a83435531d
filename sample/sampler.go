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

package sample

//go:generate mockgen -source sampler.go -destination uniform_mock.go -package sample

// UniformSource supplies independent uniform values in [0, 1).
type UniformSource interface {
	Float64() float64
}

// Sampler samples random values from some probability distribution.
type Sampler interface {
	Sample() (float64, error)
}

// float64Shift drops the bits of a uint64 that do not fit in a mantissa.
const float64Shift = 11

// toFloat64 maps a random uint64 to [0, 1).
func toFloat64(r uint64) float64 {
	return float64(r>>float64Shift) / (1 << 53)
}
