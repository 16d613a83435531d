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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fentec-project/goars/ars"
	"github.com/fentec-project/goars/data"
	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/internal"
	"github.com/fentec-project/goars/logger"
	"github.com/fentec-project/goars/sample"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// runGamma samples the Gamma distribution given by the flags, reports
// descriptive statistics and optionally writes the comparison chart.
func runGamma(ctx *cli.Context) error {
	level := ctx.String(logger.LogLevelFlag.Name)
	log := logger.NewLogger(level, "ars-gamma")

	shape, rate := ctx.Float64(shapeFlag.Name), ctx.Float64(rateFlag.Name)
	count, chunks := ctx.Int(countFlag.Name), ctx.Int(chunksFlag.Name)

	g, err := density.NewGamma(shape, rate)
	if err != nil {
		return err
	}
	newSource, err := sourceFactory(ctx)
	if err != nil {
		return err
	}
	params := ars.DefaultParams()
	params.Log = logger.NewLogger(level, "ars")

	log.Infof("Drawing %s samples of Gamma(%v, %v) in %d chunk(s)", humanize.Comma(int64(count)), shape, rate, chunks)
	start := time.Now()
	var out []float64
	if chunks != 1 {
		out, err = ars.SampleParallel(ctx.Context, g, count, chunks, newSource, params)
	} else {
		out, err = ars.Sample(ctx.Context, g, count, newSource(0), params)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	v := data.NewVector(out)
	ref := distuv.Gamma{Alpha: shape, Beta: rate}
	ks, p := v.KolmogorovSmirnov(ref.CDF)

	h, m, s := logger.ParseTime(elapsed)
	w := ctx.App.Writer
	fmt.Fprintf(w, "time:     %vh %vm %vs (%v)\n", h, m, s, elapsed)
	fmt.Fprintf(w, "len:      %s\n", humanize.Comma(int64(len(v))))
	fmt.Fprintf(w, "min:      %.6g\n", v.Min())
	fmt.Fprintf(w, "max:      %.6g\n", v.Max())
	fmt.Fprintf(w, "mean:     %.6g (expected %.6g)\n", v.Mean(), ref.Mean())
	fmt.Fprintf(w, "var:      %.6g (expected %.6g)\n", v.Variance(), ref.Variance())
	fmt.Fprintf(w, "ks:       %.6g (p-value %.4g)\n", ks, p)

	path := ctx.Path(plotFlag.Name)
	if path == "" {
		return nil
	}
	kde, err := v.KDE(ctx.Float64(bandwidthFlag.Name))
	if err != nil {
		return err
	}
	if err := writeChart(path, shape, rate, ref.Prob, kde); err != nil {
		return err
	}
	if stat, err := os.Stat(path); err == nil {
		log.Noticef("Chart written to %s (%s)", path, humanize.Bytes(uint64(stat.Size())))
	}

	return nil
}

// sourceFactory returns the uniform sources of the chunks: keyed salsa20
// streams for --key, seeded pseudo-random sources for --seed and the
// system randomness otherwise.
func sourceFactory(ctx *cli.Context) (func(chunk int) sample.UniformSource, error) {
	if k := ctx.String(keyFlag.Name); k != "" {
		raw, err := hex.DecodeString(k)
		if err != nil {
			return nil, errors.Wrapf(internal.ErrInvalidParameter, "cannot decode key: %v", err)
		}
		if len(raw) != 32 {
			return nil, errors.Wrapf(internal.ErrInvalidParameter, "key should have 32 bytes, got %d", len(raw))
		}
		var key [32]byte
		copy(key[:], raw)
		return func(chunk int) sample.UniformSource {
			return sample.NewUniformDetStream(&key, uint64(chunk))
		}, nil
	}

	if seed := ctx.Uint64(seedFlag.Name); seed != 0 {
		return func(chunk int) sample.UniformSource {
			return rand.New(rand.NewSource(seed + uint64(chunk)))
		}, nil
	}

	return func(int) sample.UniformSource {
		return sample.NewUniform()
	}, nil
}
