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

// Package test holds helpers shared by the package tests.
package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/blinklabs-io/urregistry/cbor"
)

// DecodeHexString decodes a hex test vector. Whitespace anywhere in the
// string is ignored so vectors can be split per field. It panics on invalid
// input, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	hexData = strings.Map(
		func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		},
		hexData,
	)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// CountMapPairs walks the map at the start of data, counting the key/value pairs
// actually present in it. It also returns the number of bytes the map spans, which
// is less than len(data) when anything follows the map
func CountMapPairs(data []byte) (int, int, error) {
	d, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return 0, 0, err
	}
	pairs := 0
	err = d.WalkMap(func(_ uint64, _ *cbor.StreamDecoder) error {
		pairs++
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return pairs, d.Position(), nil
}
