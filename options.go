// Copyright 2026 Blink Labs Software
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

package urregistry

import (
	"log/slog"
)

// DefaultMaxPayloadSize is the largest payload a Codec decodes unless configured
// otherwise
const DefaultMaxPayloadSize = 1024 * 1024

// CodecOptionFunc is a type that represents functions that modify the Codec config
type CodecOptionFunc func(*Codec)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) CodecOptionFunc {
	return func(c *Codec) {
		c.logger = logger
	}
}

// WithMaxPayloadSize specifies the largest payload that will be decoded. Larger
// payloads are rejected as malformed input without being read. A size of 0 or less
// disables the limit
func WithMaxPayloadSize(size int) CodecOptionFunc {
	return func(c *Codec) {
		c.maxPayloadSize = size
	}
}

// WithIndefiniteLength specifies whether records are encoded as indefinite-length
// (break-terminated) maps, as emitted by some device firmware. The default is
// definite-length maps
func WithIndefiniteLength(indefiniteLength bool) CodecOptionFunc {
	return func(c *Codec) {
		c.indefiniteLength = indefiniteLength
	}
}
