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

// Package sample includes sources of uniform random values consumed
// by the samplers of this module.
//
// Package sample provides the UniformSource interface along with
// different implementations of this interface. Uniform draws from the
// cryptographically secure generator of the operating system, while
// UniformDet expands a key into a reproducible salsa20 key stream, so
// that sampling runs can be repeated and split into independent
// streams.
//
// Any *math/rand.Rand or *golang.org/x/exp/rand.Rand implements
// UniformSource as well.
//
// Implementations of the Sampler interface can be used,
// for instance, to fill vectors with the desired random data.
package sample
