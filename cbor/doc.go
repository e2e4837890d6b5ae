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

// Package cbor provides the CBOR plumbing used by the UR registry records.
//
// It wraps github.com/fxamacker/cbor/v2 for leaf values and adds the pieces the
// upstream library does not expose: in-place parsing of collection and tag heads,
// and a pair of collection walkers.
//
// # Key Types
//
//   - StreamDecoder: sequential decoding with position tracking
//   - Encoder: piecewise encoding with a sticky error
//   - MapConsumer / ArrayConsumer: per key or per index callbacks for WalkMap
//     and WalkArray
//
// # Walking collections
//
// WalkMap and WalkArray accept both the definite form (count in the head) and the
// indefinite form (terminated by a 0xff stop marker). The consumer must read
// exactly one data item for the key or index it is given. If it reads nothing the
// item is skipped, so unknown map keys are ignored:
//
//	err := d.WalkMap(func(key uint64, d *cbor.StreamDecoder) error {
//	    switch key {
//	    case 1:
//	        v, err := d.DecodeBytes()
//	        ...
//	    }
//	    return nil
//	})
//
// # Encoding Gotchas
//
//  1. The head written by MapHeader/ArrayHeader is trusted by every decoder. The
//     number of items written afterwards must match it exactly.
//  2. Tag only writes the tag head. The following item is the tag content.
//  3. Trailing bytes after the first data item are never an error for Decode.
package cbor
