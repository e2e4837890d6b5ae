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

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/urregistry/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf("expected to read %d bytes, read %d instead", test.BytesRead, bytesRead)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf("CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v", dest, test.Object)
		}
	}
}

func TestStreamDecoderLeaves(t *testing.T) {
	// [1234, -2, h'0102', "ab", true]
	cborData, err := hex.DecodeString("851904d221420102626162f5")
	require.NoError(t, err)
	d, err := cbor.NewStreamDecoder(cborData)
	require.NoError(t, err)
	items, indef, err := d.DecodeArrayHeader()
	require.NoError(t, err)
	assert.False(t, indef)
	assert.Equal(t, 5, items)
	u, err := d.DecodeUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), u)
	i, err := d.DecodeInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-2), i)
	b, err := d.DecodeBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	s, err := d.DecodeText()
	require.NoError(t, err)
	assert.Equal(t, "ab", s)
	assert.True(t, d.PeekBool())
	v, err := d.DecodeBool()
	require.NoError(t, err)
	assert.True(t, v)
	assert.True(t, d.EOF())
	assert.Equal(t, len(cborData), d.Position())
}

func TestStreamDecoderTypeMismatch(t *testing.T) {
	// "ab" where a byte string is expected
	d, err := cbor.NewStreamDecoder([]byte{0x62, 0x61, 0x62})
	require.NoError(t, err)
	_, err = d.DecodeBytes()
	var serr *cbor.StructureError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.Offset)
	// A failed decode must not move the position
	assert.Equal(t, 0, d.Position())
}

func TestStreamDecoderTags(t *testing.T) {
	// 37(h'00'), 304({})
	cborData, err := hex.DecodeString("d8254100d90130a0")
	require.NoError(t, err)
	d, err := cbor.NewStreamDecoder(cborData)
	require.NoError(t, err)
	tagNum, ok := d.PeekTag()
	assert.True(t, ok)
	assert.Equal(t, uint64(cbor.CborTagUUID), tagNum)
	require.NoError(t, d.ExpectTag(cbor.CborTagUUID))
	_, err = d.DecodeBytes()
	require.NoError(t, err)
	// Wrong tag number leaves the position on the tag
	pos := d.Position()
	require.Error(t, d.ExpectTag(cbor.CborTagUUID))
	assert.Equal(t, pos, d.Position())
	tagNum, err = d.DecodeTag()
	require.NoError(t, err)
	assert.Equal(t, uint64(304), tagNum)
}

func TestStreamDecoderTruncated(t *testing.T) {
	tests := []string{
		// Empty input
		"",
		// Truncated 2-byte length head
		"19",
		// Byte string cut short
		"4401",
		// Array missing its second element
		"8201",
	}
	for _, test := range tests {
		cborData, err := hex.DecodeString(test)
		require.NoError(t, err)
		d, err := cbor.NewStreamDecoder(cborData)
		require.NoError(t, err)
		_, _, err = d.Skip()
		assert.Error(t, err, "input %q", test)
	}
}

func TestDecodeArrayHeaderOversized(t *testing.T) {
	// Array declaring 65536 items with no data following
	d, err := cbor.NewStreamDecoder([]byte{0x9a, 0x00, 0x01, 0x00, 0x00})
	require.NoError(t, err)
	_, _, err = d.DecodeArrayHeader()
	require.ErrorIs(t, err, cbor.ErrUnexpectedEnd)
	assert.Equal(t, 0, d.Position())
}

func TestCollectionHeaders(t *testing.T) {
	tests := []struct {
		cborHex    string
		isMap      bool
		count      int
		headerSize int
		indef      bool
		wantErr    bool
	}{
		{cborHex: "83010203", count: 3, headerSize: 1},
		{cborHex: "9f01ff", count: 0, headerSize: 1, indef: true},
		{cborHex: "a0", isMap: true, count: 0, headerSize: 1},
		{cborHex: "b8020102020304", isMap: true, count: 2, headerSize: 2},
		{cborHex: "bfff", isMap: true, count: 0, headerSize: 1, indef: true},
		// Wrong major type
		{cborHex: "a0", wantErr: true},
		{cborHex: "80", isMap: true, wantErr: true},
	}
	for _, test := range tests {
		cborData, err := hex.DecodeString(test.cborHex)
		require.NoError(t, err)
		d, err := cbor.NewStreamDecoder(cborData)
		require.NoError(t, err)
		var count int
		var indef bool
		if test.isMap {
			count, indef, err = d.DecodeMapHeader()
		} else {
			count, indef, err = d.DecodeArrayHeader()
		}
		if test.wantErr {
			require.Error(t, err, test.cborHex)
			continue
		}
		require.NoError(t, err, test.cborHex)
		assert.Equal(t, test.count, count, test.cborHex)
		assert.Equal(t, test.indef, indef, test.cborHex)
		assert.Equal(t, test.headerSize, d.Position(), test.cborHex)
	}
}
