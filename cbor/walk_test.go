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
	"errors"
	"testing"

	"github.com/blinklabs-io/urregistry/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walkedMap struct {
	First  []byte
	Second string
	Keys   []uint64
}

func walkTestMap(t *testing.T, cborHex string) (walkedMap, error) {
	t.Helper()
	cborData, err := hex.DecodeString(cborHex)
	require.NoError(t, err)
	d, err := cbor.NewStreamDecoder(cborData)
	require.NoError(t, err)
	var ret walkedMap
	err = d.WalkMap(func(key uint64, d *cbor.StreamDecoder) error {
		ret.Keys = append(ret.Keys, key)
		switch key {
		case 1:
			v, err := d.DecodeBytes()
			if err != nil {
				return err
			}
			ret.First = v
		case 2:
			v, err := d.DecodeText()
			if err != nil {
				return err
			}
			ret.Second = v
		}
		return nil
	})
	return ret, err
}

func TestWalkMapDefiniteAndIndefinite(t *testing.T) {
	// {1: h'0102', 2: "ab"}
	definite, err := walkTestMap(t, "a20142010202626162")
	require.NoError(t, err)
	indefinite, err := walkTestMap(t, "bf0142010202626162ff")
	require.NoError(t, err)
	assert.Equal(t, definite, indefinite)
	assert.Equal(t, []byte{0x01, 0x02}, definite.First)
	assert.Equal(t, "ab", definite.Second)
}

func TestWalkMapSkipsUnknownKeys(t *testing.T) {
	// {1: h'0102', 9: [1, 2], 2: "ab"}
	ret, err := walkTestMap(t, "a3014201020982010202626162")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 9, 2}, ret.Keys)
	assert.Equal(t, "ab", ret.Second)
	// Same with a nested map as the unknown value, indefinite form
	ret, err = walkTestMap(t, "bf01420102"+"0aa10102"+"02626162ff")
	require.NoError(t, err)
	assert.Equal(t, "ab", ret.Second)
}

func TestWalkMapErrors(t *testing.T) {
	tests := []struct {
		name    string
		cborHex string
	}{
		{name: "text key", cborHex: "a1616101"},
		{name: "not a map", cborHex: "820102"},
		{name: "truncated value", cborHex: "a2014201"},
		{name: "missing stop marker", cborHex: "bf014201020262"},
		{name: "unterminated", cborHex: "bf01420102"},
		{name: "wrong value type", cborHex: "a1016161"},
	}
	for _, test := range tests {
		_, err := walkTestMap(t, test.cborHex)
		assert.Error(t, err, test.name)
	}
}

func TestWalkMapConsumerErrorPassthrough(t *testing.T) {
	errTest := errors.New("consumer failure")
	d, err := cbor.NewStreamDecoder([]byte{0xa1, 0x01, 0x01})
	require.NoError(t, err)
	err = d.WalkMap(func(key uint64, d *cbor.StreamDecoder) error {
		return errTest
	})
	assert.Same(t, errTest, err)
}

func TestWalkArrayDefiniteAndIndefinite(t *testing.T) {
	walk := func(cborHex string) ([]uint64, []int) {
		cborData, err := hex.DecodeString(cborHex)
		require.NoError(t, err)
		d, err := cbor.NewStreamDecoder(cborData)
		require.NoError(t, err)
		var values []uint64
		var indexes []int
		err = d.WalkArray(func(index int, d *cbor.StreamDecoder) error {
			v, err := d.DecodeUint()
			if err != nil {
				return err
			}
			values = append(values, v)
			indexes = append(indexes, index)
			return nil
		})
		require.NoError(t, err)
		assert.True(t, d.EOF())
		return values, indexes
	}
	definiteValues, definiteIndexes := walk("83010203")
	indefiniteValues, indefiniteIndexes := walk("9f010203ff")
	assert.Equal(t, []uint64{1, 2, 3}, definiteValues)
	assert.Equal(t, []int{0, 1, 2}, definiteIndexes)
	assert.Equal(t, definiteValues, indefiniteValues)
	assert.Equal(t, definiteIndexes, indefiniteIndexes)
}

func TestWalkArrayLeavesTrailingData(t *testing.T) {
	// [1] followed by an unrelated item
	d, err := cbor.NewStreamDecoder([]byte{0x81, 0x01, 0x02})
	require.NoError(t, err)
	count := 0
	err = d.WalkArray(func(index int, d *cbor.StreamDecoder) error {
		count++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, d.Position())
	assert.False(t, d.EOF())
}
