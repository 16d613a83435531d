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
	"math"

	"github.com/fentec-project/goars/density"
	"github.com/fentec-project/goars/envelope"
	"github.com/fentec-project/goars/internal"
	"github.com/fentec-project/goars/sample"
	"github.com/pkg/errors"
)

// hullTol is the relative amount by which the log-density may exceed
// the upper hull before the hull is considered broken.
const hullTol = 1e-8

// State is the state of a Sampler.
type State int

const (
	// Sampling means the sampler can produce further values.
	Sampling State = iota
	// Done means the last run filled its buffer.
	Done
	// Aborted means an error ended sampling for good.
	Aborted
)

func (s State) String() string {
	switch s {
	case Sampling:
		return "sampling"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stats holds the counters of a Sampler.
type Stats struct {
	Trials        int
	Accepted      int
	Squeezed      int
	Evaluations   int
	SupportPoints int
}

// Sampler draws samples from a log-concave density by adaptive
// rejection sampling. It owns its envelope and is not safe for
// concurrent use.
type Sampler struct {
	d      density.LogDensity
	src    sample.UniformSource
	params *Params
	env    *envelope.Envelope

	state      State
	err        error
	stats      Stats
	rejections int
	full       bool
}

// NewSampler builds the initial envelope of d and returns a Sampler
// that takes its randomness from src. A nil params means
// DefaultParams.
//
// It returns an error if the parameters are invalid, if the seeds of d
// cannot be bracketed, or if the initial envelope shows that d is not
// log-concave.
func NewSampler(d density.LogDensity, src sample.UniformSource, params *Params) (*Sampler, error) {
	if d == nil {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "density should not be nil")
	}
	if src == nil {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "uniform source should not be nil")
	}
	p, err := params.normalize()
	if err != nil {
		return nil, err
	}

	pts, err := initialPoints(d)
	if err != nil {
		return nil, err
	}
	env, err := envelope.New(pts, d.Domain(), p.MaxSupportPoints)
	if err != nil {
		return nil, err
	}
	p.Log.Debugf("envelope initialized with %d support points, log-area %v", env.Len(), env.LogArea())

	return &Sampler{
		d:      d,
		src:    src,
		params: p,
		env:    env,
		state:  Sampling,
		full:   env.Full(),
	}, nil
}

// State returns the current state of the sampler.
func (s *Sampler) State() State {
	return s.state
}

// Err returns the error that aborted the sampler, if any.
func (s *Sampler) Err() error {
	return s.err
}

// Stats returns the counters accumulated so far.
func (s *Sampler) Stats() Stats {
	st := s.stats
	st.SupportPoints = s.env.Len()
	return st
}

// Envelope returns the envelope of the sampler. It must not be
// modified while the sampler is in use.
func (s *Sampler) Envelope() *envelope.Envelope {
	return s.env
}

// Run draws count samples. The context is checked before every
// iteration; if it is done, Run returns the samples accepted so far
// together with the context error and the sampler may be run again.
// Any other error aborts the sampler and no samples are returned.
func (s *Sampler) Run(ctx context.Context, count int) ([]float64, error) {
	if count < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "sample count should be non-negative, got %d", count)
	}
	if s.state == Aborted {
		return nil, s.err
	}
	s.state = Sampling

	out := make([]float64, 0, count)
	for len(out) < count {
		if err := ctx.Err(); err != nil {
			s.params.Log.Infof("run interrupted after %d of %d samples", len(out), count)
			return out, err
		}
		st, err := s.iterate()
		if err != nil {
			return nil, err
		}
		if st.Accepted {
			out = append(out, st.Candidate)
		}
		s.notify(st)
	}

	s.state = Done
	s.params.Log.Infof("drew %d samples in %d trials, %d support points",
		count, s.stats.Trials, s.env.Len())

	return out, nil
}

// Sample draws a single value.
func (s *Sampler) Sample() (float64, error) {
	if s.state == Aborted {
		return 0, s.err
	}
	for {
		st, err := s.iterate()
		if err != nil {
			return 0, err
		}
		s.notify(st)
		if st.Accepted {
			return st.Candidate, nil
		}
	}
}

// Rand draws a single value. It panics if sampling fails.
func (s *Sampler) Rand() float64 {
	x, err := s.Sample()
	if err != nil {
		panic(err)
	}
	return x
}

// iterate runs one proposal with its squeeze and exact tests and
// adapts the envelope.
func (s *Sampler) iterate() (Step, error) {
	s.stats.Trials++
	u1, u2, w := s.src.Float64(), s.src.Float64(), s.src.Float64()
	x, uh := s.env.Draw(u1, u2)
	lw := math.Log(w)
	st := Step{Candidate: x}

	if lh, ok := s.env.LowerHullValue(x); ok && lw <= lh-uh {
		st.Accepted = true
		st.Squeezed = true
		s.stats.Squeezed++
	}

	var h, dh float64
	if !st.Accepted {
		var err error
		if h, dh, err = s.evaluate(x, uh); err != nil {
			return st, s.abort(err)
		}
		st.Evaluated = true
		st.Accepted = lw <= h-uh
	}

	adapt := s.params.Adapt == AdaptAlways || !st.Accepted
	if adapt && !s.env.Full() {
		if !st.Evaluated {
			var err error
			if h, dh, err = s.evaluate(x, uh); err != nil {
				return st, s.abort(err)
			}
			st.Evaluated = true
		}
		// A candidate next to a support boundary can have an infinite
		// slope. It is still accepted or rejected but not inserted.
		if internal.IsFinite(dh) {
			if _, err := s.env.Insert(envelope.SupportPoint{X: x, H: h, DH: dh}); err != nil {
				return st, s.abort(err)
			}
		} else {
			s.params.Log.Debugf("candidate %g has slope %g, envelope unchanged", x, dh)
		}
		if s.env.Full() && !s.full {
			s.full = true
			s.params.Log.Warningf("envelope reached %d support points, adaptation stops", s.env.Len())
		}
	}
	st.SupportPoints = s.env.Len()

	if st.Accepted {
		s.stats.Accepted++
		s.rejections = 0
		return st, nil
	}

	s.rejections++
	if s.rejections > s.params.MaxTrials {
		s.params.Log.Warningf("%d consecutive rejections at %d support points", s.rejections, s.env.Len())
		return st, s.abort(errors.Wrapf(internal.ErrRejectionLimit,
			"more than %d consecutive rejections", s.params.MaxTrials))
	}

	return st, nil
}

// evaluate returns the log-density at a candidate whose upper hull
// value is uh, checking that the hull still bounds it.
func (s *Sampler) evaluate(x, uh float64) (float64, float64, error) {
	s.stats.Evaluations++
	h, dh := s.d.Evaluate(x)
	switch {
	case math.IsInf(h, -1):
		return 0, 0, errors.Wrapf(internal.ErrNonConcaveDensity,
			"candidate x=%v lies outside the support of the log-density", x)
	case !internal.IsFinite(h):
		return 0, 0, errors.Wrapf(internal.ErrNumericOverflow, "log-density at x=%v is %v", x, h)
	case h > uh+hullTol*(1+math.Abs(uh)):
		return 0, 0, errors.Wrapf(internal.ErrNonConcaveDensity,
			"log-density %v at x=%v exceeds the upper hull %v", h, x, uh)
	}
	return h, dh, nil
}

func (s *Sampler) abort(err error) error {
	s.state = Aborted
	s.err = err
	s.params.Log.Errorf("sampling aborted: %v", err)
	return err
}

func (s *Sampler) notify(st Step) {
	if s.params.Observer != nil {
		s.params.Observer(st)
	}
}
