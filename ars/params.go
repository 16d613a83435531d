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
	"fmt"
	"sync"

	"github.com/fentec-project/goars/internal"
	"github.com/fentec-project/goars/logger"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	// DefaultMaxSupportPoints caps the growth of the envelope.
	DefaultMaxSupportPoints = 500
	// DefaultMaxTrials is the number of consecutive rejections
	// after which a run gives up.
	DefaultMaxTrials = 1000
)

// AdaptPolicy decides which candidates are added to the envelope.
type AdaptPolicy int

const (
	// AdaptAlways adds every candidate, accepted or rejected.
	AdaptAlways AdaptPolicy = iota
	// AdaptOnReject adds only rejected candidates.
	AdaptOnReject
)

func (a AdaptPolicy) String() string {
	switch a {
	case AdaptAlways:
		return "always"
	case AdaptOnReject:
		return "on-reject"
	default:
		return fmt.Sprintf("AdaptPolicy(%d)", int(a))
	}
}

// Step is the outcome of one iteration of the accept/reject loop.
type Step struct {
	Candidate float64
	Accepted  bool
	// Squeezed is true if the candidate was accepted by the lower hull
	// alone.
	Squeezed bool
	// Evaluated is true if the log-density was evaluated at Candidate.
	Evaluated bool
	// SupportPoints is the size of the envelope after the iteration.
	SupportPoints int
}

// Params represents configuration parameters of a sampling run.
type Params struct {
	// Maximal number of envelope support points.
	MaxSupportPoints int
	// Maximal number of consecutive rejections.
	MaxTrials int
	Adapt     AdaptPolicy
	// Observer, if set, is called after every iteration. In parallel
	// runs it is called from several goroutines.
	Observer func(Step)
	Log      *logging.Logger
}

var (
	defaultLogOnce sync.Once
	defaultLog     *logging.Logger
)

func defaultLogger() *logging.Logger {
	defaultLogOnce.Do(func() {
		defaultLog = logger.NewLogger("WARNING", "ars")
	})
	return defaultLog
}

// DefaultParams returns the parameters used when none are given.
func DefaultParams() *Params {
	return &Params{
		MaxSupportPoints: DefaultMaxSupportPoints,
		MaxTrials:        DefaultMaxTrials,
		Adapt:            AdaptAlways,
		Log:              defaultLogger(),
	}
}

// normalize returns a copy of p with zero fields replaced by defaults.
// A nil p means DefaultParams.
func (p *Params) normalize() (*Params, error) {
	out := DefaultParams()
	if p == nil {
		return out, nil
	}

	if p.MaxSupportPoints < 0 || p.MaxSupportPoints == 1 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter,
			"MaxSupportPoints should be at least 2, got %d", p.MaxSupportPoints)
	}
	if p.MaxTrials < 0 {
		return nil, errors.Wrapf(internal.ErrInvalidParameter,
			"MaxTrials should be non-negative, got %d", p.MaxTrials)
	}
	if p.Adapt != AdaptAlways && p.Adapt != AdaptOnReject {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "unknown adapt policy %v", p.Adapt)
	}

	if p.MaxSupportPoints != 0 {
		out.MaxSupportPoints = p.MaxSupportPoints
	}
	if p.MaxTrials != 0 {
		out.MaxTrials = p.MaxTrials
	}
	out.Adapt = p.Adapt
	out.Observer = p.Observer
	if p.Log != nil {
		out.Log = p.Log
	}

	return out, nil
}
