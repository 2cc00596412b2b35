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

// residual is a mutable, decoder-private packet: the subset of indices
// (S') still outstanding and the payload (P') such that P' equals the XOR
// of the blocks at those indices. A residual becomes inert (empty or
// tombstoned) once it has been fully peeled or found redundant.
type residual struct {
	indices []int
	payload block
	empty   bool
}

// Decoder is an incremental, event-driven peeling engine over the
// residual bipartite graph of packets-to-blocks. Ingested packets shrink
// as their indices are recovered; a residual packet that shrinks to a
// single remaining index releases that block, which in turn may shrink
// other residual packets -- the ripple -- until no more singletons
// remain.
//
// A Decoder is exclusively owned by its caller; concurrent calls to
// Ingest are undefined. Ingest is synchronous: all transitively-reachable
// releases complete before it returns, so IsComplete immediately after
// Ingest reflects the terminal state for packets received so far.
type Decoder struct {
	k int

	// recovered holds frozen, write-once block contents, indexed by block
	// address. A nil entry means the block has not yet been recovered.
	recovered [][]byte

	// residuals is append-only; entries are tombstoned (emptied), never
	// removed, so that adjacency identifiers stay stable.
	residuals []residual

	// adj[b] is the set of residual indices whose S' currently contains b.
	adj []map[int]bool

	// ripple is the FIFO of block addresses recovered but not yet
	// propagated through peel().
	ripple []int

	numRecovered int
}

// NewDecoder creates a Decoder for a transmission with K source blocks.
// K is learned out-of-band (typically from the header frame) before any
// packets arrive.
func NewDecoder(k int) (*Decoder, error) {
	if k <= 0 {
		return nil, &ConfigError{Msg: "K must be positive"}
	}

	adj := make([]map[int]bool, k)
	for i := range adj {
		adj[i] = make(map[int]bool)
	}

	return &Decoder{
		k:         k,
		recovered: make([][]byte, k),
		adj:       adj,
	}, nil
}

// K returns the number of source blocks this decoder was constructed for.
func (d *Decoder) K() int {
	return d.k
}

// Ingest feeds one encoded packet (indices, payload) to the decoder.
// payload is expected to have the block size agreed upon out-of-band, but
// Ingest does not itself learn or check that size. A packet whose indices
// are all already recovered is redundant and is silently discarded,
// leaving decoder state unchanged -- this is not an error. Ingest aborts
// with a *ProtocolError (decoder state unchanged) if an index is outside
// [0, K).
func (d *Decoder) Ingest(indices []int, payload []byte) error {
	for _, i := range indices {
		if i < 0 || i >= d.k {
			return &ProtocolError{Msg: "index out of range [0, K)"}
		}
	}

	p := block{data: append([]byte(nil), payload...)}

	var remaining []int
	for _, i := range indices {
		if d.recovered[i] != nil {
			p.xor(block{data: d.recovered[i]})
		} else {
			remaining = append(remaining, i)
		}
	}

	if len(remaining) == 0 {
		// Redundant: every referenced block was already recovered, so
		// this packet carries no new information.
		return nil
	}

	idx := len(d.residuals)
	d.residuals = append(d.residuals, residual{indices: remaining, payload: p})
	for _, i := range remaining {
		d.adj[i][idx] = true
	}

	if len(remaining) == 1 {
		d.release(remaining[0], p)
	}

	d.peel()
	return nil
}

// release marks block b recovered with the frozen contents of p, and
// enqueues it onto the ripple. A no-op if b is already recovered.
func (d *Decoder) release(b int, p block) {
	if d.recovered[b] != nil {
		return
	}

	// Copy into a fresh buffer: p's backing array belongs to a residual
	// packet that may still be XOR-mutated by later peeling, and
	// recovered entries must never change once written.
	frozen := make([]byte, p.length())
	copy(frozen, p.bytes())
	d.recovered[b] = frozen
	d.numRecovered++
	d.ripple = append(d.ripple, b)
}

// peel drains the ripple, XORing each newly-recovered block out of every
// residual packet that still references it and releasing any new
// singletons this produces.
func (d *Decoder) peel() {
	for len(d.ripple) > 0 {
		b := d.ripple[0]
		d.ripple = d.ripple[1:]

		r := block{data: d.recovered[b]}

		// Snapshot: the loop body deletes from adj[b] (see below), so
		// iterate over a copy of its keys rather than the live map.
		affected := make([]int, 0, len(d.adj[b]))
		for p := range d.adj[b] {
			affected = append(affected, p)
		}

		for _, p := range affected {
			res := &d.residuals[p]
			if res.empty || !containsInt(res.indices, b) {
				continue // already updated out-of-band
			}

			res.indices = removeInt(res.indices, b)
			res.payload.xor(r)
			delete(d.adj[b], p)

			if len(res.indices) == 1 {
				d.release(res.indices[0], res.payload)
			} else if len(res.indices) == 0 {
				res.empty = true
			}
		}
	}
}

// IsComplete reports whether every block address has been recovered.
func (d *Decoder) IsComplete() bool {
	return d.numRecovered == d.k
}

// Reconstruct returns recovered[0] || recovered[1] || ... || recovered[K-1].
// It is an error to call Reconstruct before IsComplete returns true; the
// caller is responsible for truncating the result to the original
// file_size (the last block may carry zero padding, which Reconstruct
// does not strip).
func (d *Decoder) Reconstruct() ([]byte, error) {
	if !d.IsComplete() {
		return nil, &ProtocolError{Msg: "decoder is not complete"}
	}

	var out []byte
	for i := 0; i < d.k; i++ {
		out = append(out, d.recovered[i]...)
	}
	return out, nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func removeInt(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
