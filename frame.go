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

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Header describes the fields carried by a header frame: the out-of-band
// metadata the receiver needs before it can interpret packet frames.
type Header struct {
	FileName  string
	FileSize  int
	K         int
	BlockSize int
}

// EncodeHeader renders a Header as the ASCII record
// "HEADER:<file_name>:<file_size>:<K>:<block_size>". fileName must not
// contain ':'.
func EncodeHeader(fileName string, fileSize, k, blockSize int) (string, error) {
	if strings.Contains(fileName, ":") {
		return "", &FrameError{Msg: "file_name must not contain ':'"}
	}
	return fmt.Sprintf("HEADER:%s:%d:%d:%d", fileName, fileSize, k, blockSize), nil
}

// DecodeHeader parses a header frame produced by EncodeHeader.
func DecodeHeader(s string) (Header, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return Header{}, &FrameError{Msg: "header must have exactly 5 ':'-separated fields"}
	}
	if parts[0] != "HEADER" {
		return Header{}, &FrameError{Msg: "header must start with 'HEADER'"}
	}

	fileSize, err := strconv.Atoi(parts[2])
	if err != nil {
		return Header{}, &FrameError{Msg: "file_size is not a valid integer"}
	}
	k, err := strconv.Atoi(parts[3])
	if err != nil {
		return Header{}, &FrameError{Msg: "K is not a valid integer"}
	}
	blockSize, err := strconv.Atoi(parts[4])
	if err != nil {
		return Header{}, &FrameError{Msg: "block_size is not a valid integer"}
	}

	return Header{
		FileName:  parts[1],
		FileSize:  fileSize,
		K:         k,
		BlockSize: blockSize,
	}, nil
}

// IndicesToBitmask packs a set of distinct block indices in [0, K) into a
// ceil(K/8)-byte bitmask. Bit i is set at byte i/8, bit position i%8 of a
// little-endian scratch buffer, which is then byte-reversed: byte 0 of
// the result carries the highest-order block indices, matching the
// bit-exact layout this frame format requires across implementations.
func IndicesToBitmask(indices []int, k int) ([]byte, error) {
	numBytes := (k + 7) / 8
	raw := make([]byte, numBytes)

	for _, i := range indices {
		if i < 0 || i >= k {
			return nil, &ProtocolError{Msg: "index out of range [0, K)"}
		}
		raw[i/8] |= 1 << uint(i%8)
	}

	out := make([]byte, numBytes)
	for i := range raw {
		out[i] = raw[numBytes-1-i]
	}
	return out, nil
}

// BitmaskToIndices is the inverse of IndicesToBitmask: it returns the
// ascending list of set block indices in [0, K) encoded by bitmask.
func BitmaskToIndices(bitmask []byte, k int) ([]int, error) {
	numBytes := (k + 7) / 8
	if len(bitmask) != numBytes {
		return nil, &ProtocolError{Msg: "bitmask length does not match ceil(K/8)"}
	}

	raw := make([]byte, numBytes)
	for i := range bitmask {
		raw[i] = bitmask[numBytes-1-i]
	}

	indices := []int{}
	for i := 0; i < k; i++ {
		if raw[i/8]&(1<<uint(i%8)) != 0 {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices, nil
}
