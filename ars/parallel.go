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
	"runtime"

	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/internal"
	"github.com/fentec-project/goars/sample"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SampleParallel draws count samples from d in chunks running
// concurrently. Chunk i samples with its own envelope and with the
// source returned by newSource(i); sample.NewUniformDetStream gives
// independent reproducible streams. Results are concatenated in chunk
// order, so the output only depends on the sources.
//
// The first failing chunk cancels the others. If ctx is done, the
// samples accepted by every chunk so far are returned with the context
// error.
func SampleParallel(ctx context.Context, d density.LogDensity, count, chunks int,
	newSource func(chunk int) sample.UniformSource, params *Params) ([]float64, error) {
	if err := checkRun(d, count); err != nil {
		return nil, err
	}
	if chunks < 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "number of chunks should be positive, got %d", chunks)
	}
	if newSource == nil {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "source factory should not be nil")
	}
	p, err := params.normalize()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []float64{}, nil
	}

	sizes := chunkSizes(count, chunks)
	results := make([][]float64, len(sizes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, size := range sizes {
		i, size := i, size
		g.Go(func() error {
			s, err := NewSampler(d, newSource(i), p)
			if err != nil {
				return errors.Wrapf(err, "chunk %d", i)
			}
			out, err := s.Run(gctx, size)
			results[i] = out
			if err != nil {
				return errors.Wrapf(err, "chunk %d", i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return concat(results), ctxErr
		}
		return nil, err
	}
	p.Log.Debugf("drew %d samples in %d chunks", count, len(sizes))

	return concat(results), nil
}

// chunkSizes splits count into at most chunks sizes differing by at
// most one, larger ones first.
func chunkSizes(count, chunks int) []int {
	if chunks > count {
		chunks = count
	}
	sizes := make([]int, chunks)
	for i := range sizes {
		sizes[i] = count / chunks
		if i < count%chunks {
			sizes[i]++
		}
	}
	return sizes
}

func concat(parts [][]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
