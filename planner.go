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

// DefaultMaxPayloadSize and DefaultMaxFileSize are the tunable defaults
// used by the QR-code transport collaborator this core was designed
// for: MAX_PAYLOAD_SIZE fits a base64-expanded frame into a QR v40-L
// envelope with margin, and MAX_FILE_SIZE is the file-size limit that
// collaborator paired with it. The two are not feasible together: at
// DefaultMaxFileSize every block_size needs at least 2212 bytes of
// bitmask+block, so ChooseBlockSize(DefaultMaxFileSize,
// DefaultMaxPayloadSize) returns a *ConfigError. The core
// itself accepts any max_payload_size the caller proves feasible; these
// are just the values the original QR-code collaborator used.
const (
	DefaultMaxPayloadSize = 2210
	DefaultMaxFileSize    = 9_785_888
)

// ChooseBlockSize returns the largest block_size such that
// ceil(K/8) + block_size <= maxPayloadSize, where K = ceil(fileSize /
// block_size). It returns a *ConfigError if fileSize is 0, maxPayloadSize
// is less than 2, or no block size satisfies the constraint.
func ChooseBlockSize(fileSize, maxPayloadSize int) (int, error) {
	if fileSize <= 0 {
		return 0, &ConfigError{Msg: "file_size must be positive"}
	}
	if maxPayloadSize < 2 {
		return 0, &ConfigError{Msg: "max_payload_size must be at least 2"}
	}

	for blockSize := maxPayloadSize - 1; blockSize >= 1; blockSize-- {
		k := (fileSize + blockSize - 1) / blockSize
		bitmaskBytes := (k + 7) / 8
		if bitmaskBytes+blockSize <= maxPayloadSize {
			return blockSize, nil
		}
	}

	return 0, &ConfigError{Msg: "no block size satisfies the bitmask+block constraint for the given file_size and max_payload_size"}
}
