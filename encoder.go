// Copyright 2014 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package fountain implements a Luby Transform (LT) rateless erasure code: an
encoder that fragments a payload into fixed-size blocks and emits an
unbounded stream of XOR-combined packets, and a decoder that recovers the
original payload from any sufficient subset of those packets, in any order,
with duplicates tolerated.
*/
package fountain

import "math/rand"

// Encoder is a stateful, pull-driven producer of LT-encoded packets for a
// fixed payload. Each call to Next samples a fresh degree and index set
// from the encoder's Robust Soliton Distribution and returns the XOR of
// the chosen blocks. Packets are mutually independent given (K,
// BlockSize, the PMF) aside from sharing the encoder's RNG stream.
//
// An Encoder is not safe for concurrent use; its blocks and PMF are
// read-only after construction and may be shared across readers, but the
// RNG is mutated by every call to Next.
type Encoder struct {
	blocks    []block
	blockSize int
	mu        []float64
	random    *rand.Rand
}

// NewEncoder builds an Encoder for payload, partitioned into fixed-size
// blocks of blockSize bytes (the last zero-padded). random supplies the
// degree and index randomness; pass rand.New(NewMersenneTwister(seed))
// for deterministic, reproducible encoding. mu is the degree PMF to
// sample from; use RobustSolitonDistribution(K, c, delta) to build one.
//
// Returns a *ConfigError if blockSize <= 0 or payload is empty.
func NewEncoder(payload []byte, blockSize int, random *rand.Rand, mu []float64) (*Encoder, error) {
	if blockSize <= 0 {
		return nil, &ConfigError{Msg: "block_size must be positive"}
	}
	if len(payload) == 0 {
		return nil, &ConfigError{Msg: "file_size must be positive"}
	}

	blocks := blocksFromPayload(payload, blockSize)
	if len(mu) != len(blocks) {
		return nil, &ConfigError{Msg: "degree distribution length must equal K"}
	}

	return &Encoder{
		blocks:    blocks,
		blockSize: blockSize,
		mu:        mu,
		random:    random,
	}, nil
}

// K returns the number of source blocks the payload was split into.
func (e *Encoder) K() int {
	return len(e.blocks)
}

// BlockSize returns the fixed size, in bytes, of every block (and every
// emitted packet's payload).
func (e *Encoder) BlockSize() int {
	return e.blockSize
}

// Next samples a degree d from the encoder's PMF, picks d distinct block
// indices uniformly without replacement, and returns those indices along
// with the XOR of the corresponding blocks. The returned payload always
// has length BlockSize(). Next never returns an error: any (K, BlockSize,
// mu) accepted by NewEncoder can be sampled from indefinitely.
func (e *Encoder) Next() ([]int, []byte) {
	d := pickDegree(e.random, e.mu)
	indices := sampleIndices(e.random, d, len(e.blocks))

	var symbol block
	for _, i := range indices {
		symbol.xor(e.blocks[i])
	}

	out := make([]byte, e.blockSize)
	copy(out, symbol.bytes())
	return indices, out
}
