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

// Package density includes log-densities of univariate distributions
// that can be sampled by adaptive rejection sampling.
//
// Package density provides the LogDensity interface along with
// implementations for several distribution families (Gamma, Weibull,
// Normal, Beta). A LogDensity evaluates log f(x) and its derivative
// up to an additive constant, describes the support of the
// distribution and proposes seed abscissae around the mode from which
// an envelope can be built.
//
// Constructors validate the parameters of a family, but they do not
// check log-concavity. Parameterizations whose log-density is convex
// somewhere (for instance Gamma with shape < 1) are detected by the
// envelope while it is being built.
package density
