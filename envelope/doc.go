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

// Package envelope includes the piecewise-linear bounds used by
// adaptive rejection sampling.
//
// An Envelope owns an ordered set of support points of a concave
// log-density h. The tangents at the support points form the upper
// hull, which bounds h from above on the whole support; the chords
// between neighbouring support points form the lower hull (squeeze),
// which bounds h from below between the outermost abscissae.
//
// exp(upper hull) is an un-normalized piecewise exponential density.
// Envelope keeps the integral of every piece in log space together
// with a cumulative table, so that Draw can sample a candidate from it
// by inverting the cumulative distribution.
//
// New support points are added with Insert. Only the intersections and
// weights next to the new point are recomputed, since the intersection
// of two tangents depends on the two neighbouring points alone.
package envelope
