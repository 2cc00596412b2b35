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

import "fmt"

// ConfigError reports that the parameters given to construct an encoder,
// decoder, or block-size plan are internally inconsistent. Construction
// refuses to proceed rather than produce an object in a broken state.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("fountain: config error: %s", e.Msg)
}

// FrameError reports that a header or bitmask frame could not be parsed.
type FrameError struct {
	Msg string
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("fountain: frame error: %s", e.Msg)
}

// ProtocolError reports that an ingested packet violates the agreed-upon
// protocol parameters, such as an index outside [0, K). Ingest leaves
// decoder state unchanged when this occurs.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("fountain: protocol error: %s", e.Msg)
}
