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
	"encoding/binary"

	"golang.org/x/crypto/salsa20/salsa"
)

// blocksPerRefill is the number of 64 byte salsa20 blocks generated at once.
const blocksPerRefill = 64

// UniformDet samples (deterministic) random values from the interval
// [0, 1) using a salsa20 key stream. The key together with the stream
// number determines the sequence; different stream numbers of the same
// key give independent sequences.
type UniformDet struct {
	key     [32]byte
	counter [16]byte
	buf     []byte
	pos     int
}

// NewUniformDet returns an instance of the UniformDet sampler reading
// stream 0 of the given key.
func NewUniformDet(key *[32]byte) *UniformDet {
	return NewUniformDetStream(key, 0)
}

// NewUniformDetStream returns an instance of the UniformDet sampler
// reading the given stream of key. The stream number is used as the
// salsa20 nonce.
func NewUniformDetStream(key *[32]byte, stream uint64) *UniformDet {
	u := &UniformDet{
		key: *key,
		buf: make([]byte, blocksPerRefill*64),
	}
	binary.LittleEndian.PutUint64(u.counter[:8], stream)
	u.pos = len(u.buf)
	return u
}

// KeyFromSeed expands a numeric seed into a key for UniformDet. The key
// is the first 32 bytes of the key stream of the seed itself.
func KeyFromSeed(seed uint64) *[32]byte {
	var seedKey, key, in [32]byte
	var counter [16]byte
	binary.LittleEndian.PutUint64(seedKey[:8], seed)
	salsa.XORKeyStream(key[:], in[:], &counter, &seedKey)
	return &key
}

// Sample samples a value from [0, 1). It never fails.
func (u *UniformDet) Sample() (float64, error) {
	return u.Float64(), nil
}

// Float64 samples a value from [0, 1).
func (u *UniformDet) Float64() float64 {
	if u.pos+8 > len(u.buf) {
		u.refill()
	}
	r := binary.LittleEndian.Uint64(u.buf[u.pos : u.pos+8])
	u.pos += 8
	return toFloat64(r)
}

// refill generates the next blocks of the key stream and advances the
// block counter kept in the upper half of counter.
func (u *UniformDet) refill() {
	in := make([]byte, len(u.buf))
	salsa.XORKeyStream(u.buf, in, &u.counter, &u.key)

	block := binary.LittleEndian.Uint64(u.counter[8:])
	binary.LittleEndian.PutUint64(u.counter[8:], block+blocksPerRefill)
	u.pos = 0
}
