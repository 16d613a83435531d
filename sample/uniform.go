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

package sample

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Uniform samples random values from the interval [0, 1) using the
// cryptographically secure generator of the operating system.
// Sequences produced by Uniform cannot be reproduced.
type Uniform struct {
	buf [8]byte
}

// NewUniform returns an instance of the Uniform sampler.
func NewUniform() *Uniform {
	return &Uniform{}
}

// Sample samples a value from [0, 1).
func (u *Uniform) Sample() (float64, error) {
	if _, err := rand.Read(u.buf[:]); err != nil {
		return 0, errors.Wrap(err, "error while sampling")
	}
	return toFloat64(binary.LittleEndian.Uint64(u.buf[:])), nil
}

// Float64 samples a value from [0, 1). It panics if the operating
// system cannot provide randomness.
func (u *Uniform) Float64() float64 {
	v, err := u.Sample()
	if err != nil {
		panic(err)
	}
	return v
}
