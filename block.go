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

package fountain

// A block represents a contiguous range of data being encoded or decoded,
// or a block of coded data.
type block struct {
	// Data content of this source or code block.
	data []byte

	// How many padding bytes this block has at the end.
	padding int
}

// newBlock creates a new block with a given length. The block will initially be
// all padding.
func newBlock(len int) *block {
	return &block{padding: len}
}

// length returns the length of the block in bytes. Counts data bytes as well
// as any padding.
func (b *block) length() int {
	return len(b.data) + b.padding
}

func (b *block) empty() bool {
	return b.length() == 0
}

// bytes returns the block's content padded out to its full length with
// zero bytes.
func (b *block) bytes() []byte {
	out := make([]byte, b.length())
	copy(out, b.data)
	return out
}

// A common operation is to XOR entire code blocks together with other blocks.
// When this is done, padding bytes count as 0 (that is XOR identity), and the
// destination block will be modified so that its data is large enough to
// contain the result of the XOR.
func (b *block) xor(a block) {
	if len(b.data) < len(a.data) {
		var inc = len(a.data) - len(b.data)
		b.data = append(b.data, make([]byte, inc)...)
		if b.padding > inc {
			b.padding -= inc
		} else {
			b.padding = 0
		}
	}

	for i := 0; i < len(a.data); i++ {
		b.data[i] ^= a.data[i]
	}
}

// blocksFromPayload partitions payload into K = ceil(len(payload)/blockSize)
// fixed-size blocks of blockSize bytes each, the last zero-padded on the
// right. Unlike the near-equal partitioning schemes used elsewhere in this
// package's ancestry, block size here is a fixed input (chosen by the
// planner, see planner.go) rather than derived from a target block count.
func blocksFromPayload(payload []byte, blockSize int) []block {
	k := (len(payload) + blockSize - 1) / blockSize
	if len(payload) == 0 {
		k = 0
	}
	blocks := make([]block, k)
	for i := range blocks {
		start := i * blockSize
		end := start + blockSize
		if end > len(payload) {
			end = len(payload)
		}
		blocks[i].data = payload[start:end]
		blocks[i].padding = blockSize - len(blocks[i].data)
	}
	return blocks
}
