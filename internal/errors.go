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

package internal

import (
	"errors"
)

var violatedStr = "is violated"

// ErrInvalidParameter is returned when distribution parameters, sample
// counts or seed points are unusable. No work is done before it is raised.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrNonConcaveDensity is returned when the envelope observes that the
// log-density is not concave, or that the hull no longer bounds it.
var ErrNonConcaveDensity = errors.New("log-concavity " + violatedStr)

// ErrNumericOverflow is returned when log-density or hull arithmetic
// produces NaN or infinity where a finite value is required.
var ErrNumericOverflow = errors.New("finite arithmetic " + violatedStr)

// ErrRejectionLimit is returned when too many consecutive candidates
// are rejected while drawing a single sample.
var ErrRejectionLimit = errors.New("rejection limit reached")
