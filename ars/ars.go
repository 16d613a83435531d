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

package ars

import (
	"context"

	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/internal"
	"github.com/fentec-project/goars/sample"
	"github.com/pkg/errors"
)

// Sample draws count independent samples from d, taking randomness
// from src. A nil params means DefaultParams. For count == 0 it returns
// an empty slice without reading from src.
//
// If ctx is done before the run completes, the samples accepted so far
// are returned with the context error. On any other error no samples
// are returned.
func Sample(ctx context.Context, d density.LogDensity, count int, src sample.UniformSource, params *Params) ([]float64, error) {
	if err := checkRun(d, count); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "uniform source should not be nil")
	}
	if _, err := params.normalize(); err != nil {
		return nil, err
	}
	if count == 0 {
		return []float64{}, nil
	}

	s, err := NewSampler(d, src, params)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, count)
}

// GetGamma returns count samples from the Gamma distribution with the
// given shape and rate. It returns an error wrapping
// ErrNonConcaveDensity for shape < 1.
func GetGamma(shape, rate float64, count int, src sample.UniformSource) ([]float64, error) {
	g, err := density.NewGamma(shape, rate)
	if err != nil {
		return nil, err
	}
	return Sample(context.Background(), g, count, src, nil)
}

// GetWeibull returns count samples from the Weibull distribution with
// the given scale and shape. It returns an error wrapping
// ErrNonConcaveDensity for shape < 1.
func GetWeibull(scale, shape float64, count int, src sample.UniformSource) ([]float64, error) {
	w, err := density.NewWeibull(scale, shape)
	if err != nil {
		return nil, err
	}
	return Sample(context.Background(), w, count, src, nil)
}

func checkRun(d density.LogDensity, count int) error {
	if d == nil {
		return errors.Wrap(internal.ErrInvalidParameter, "density should not be nil")
	}
	if count < 0 {
		return errors.Wrapf(internal.ErrInvalidParameter, "sample count should be non-negative, got %d", count)
	}
	return nil
}
