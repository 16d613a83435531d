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
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fentec-project/goars/internal"
	"github.com/fentec-project/goars/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Vector wraps a slice of float64 samples.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	if len < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "vector length should be non-negative, got %d", len)
	}
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// NewRandomDetVector returns a new Vector instance
// with (deterministic) random elements from [0, 1) produced by
// a salsa20 key stream. key determines the values.
func NewRandomDetVector(len int, key *[32]byte) (Vector, error) {
	return NewRandomVector(len, sample.NewUniformDet(key))
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Sorted returns a sorted copy of the vector.
func (v Vector) Sorted() Vector {
	s := v.Copy()
	sort.Float64s(s)
	return s
}

// Min returns the smallest element, or NaN for an empty vector.
func (v Vector) Min() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Min(v)
}

// Max returns the largest element, or NaN for an empty vector.
func (v Vector) Max() float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	return floats.Max(v)
}

// Mean returns the sample mean.
func (v Vector) Mean() float64 {
	return stat.Mean(v, nil)
}

// Variance returns the unbiased sample variance.
func (v Vector) Variance() float64 {
	return stat.Variance(v, nil)
}

// StdDev returns the unbiased sample standard deviation.
func (v Vector) StdDev() float64 {
	return stat.StdDev(v, nil)
}

// CheckBound checks whether all vector elements lie strictly
// inside the interval (lower, upper).
// It returns error if at least one element lies outside.
func (v Vector) CheckBound(lower, upper float64) error {
	for i, c := range v {
		if !(c > lower && c < upper) {
			return fmt.Errorf("element %d = %v should lie in (%v, %v)", i, c, lower, upper)
		}
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := make([]string, len(v))
	for i, yi := range v {
		vStr[i] = fmt.Sprintf("%g", yi)
	}
	return "[" + strings.Join(vStr, " ") + "]"
}
