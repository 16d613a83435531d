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

// Package ars draws exact independent samples from univariate
// distributions with a concave log-density by adaptive rejection
// sampling.
//
// A run seeds an envelope.Envelope from the density's seed abscissae,
// proposes candidates from the exponentiated upper hull and accepts
// them by the squeeze test or, failing that, by evaluating the
// density. Rejected and, by default, accepted candidates are added to
// the envelope so the hull tightens as the run proceeds.
//
// Randomness always comes from the sample.UniformSource passed to a
// run. Runs with the same density, parameters and source state produce
// the same output.
package ars
