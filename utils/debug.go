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

// Package utils provides debugging helpers for registry payloads
package utils

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/blinklabs-io/urregistry/cbor"
)

// DumpCbor decodes a single CBOR data item and returns an indented outline of
// its structure
func DumpCbor(data []byte) (string, error) {
	var tmp any
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return "", err
	}
	return DumpCborStructure(tmp, ""), nil
}

// DumpCborStructure returns an indented outline of a value decoded from CBOR
// into an empty interface. Byte strings are shown by length only
func DumpCborStructure(data any, prefix string) string {
	var ret bytes.Buffer
	newPrefix := prefix + "  "
	switch v := data.(type) {
	case int64, uint64:
		return fmt.Sprintf("%s0x%x (%d),\n", prefix, v, v)
	case []byte:
		return fmt.Sprintf("%s<bytes> (length %d),\n", prefix, len(v))
	case string:
		return fmt.Sprintf("%s%q,\n", prefix, v)
	case cbor.Tag:
		ret.WriteString(fmt.Sprintf("%stag(%d) ", prefix, v.Number))
		ret.WriteString(strings.TrimPrefix(DumpCborStructure(v.Content, prefix), prefix))
	case []any:
		ret.WriteString(fmt.Sprintf("%s[\n", prefix))
		for _, val := range v {
			ret.WriteString(DumpCborStructure(val, newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s],\n", prefix))
	case map[any]any:
		ret.WriteString(fmt.Sprintf("%s{\n", prefix))
		keys := make([]any, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		// Map iteration order is random
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		for _, key := range keys {
			ret.WriteString(fmt.Sprintf("%s%#v =>\n", newPrefix, key))
			ret.WriteString(DumpCborStructure(v[key], newPrefix+"  "))
		}
		ret.WriteString(fmt.Sprintf("%s},\n", prefix))
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
