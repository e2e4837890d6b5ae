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

package common_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hardened(index uint32) common.PathComponent {
	return common.PathComponent{Index: index, Hardened: true}
}

func plain(index uint32) common.PathComponent {
	return common.PathComponent{Index: index}
}

func TestParseKeyPath(t *testing.T) {
	tests := []struct {
		path       string
		components []common.PathComponent
	}{
		{
			path: "m/44'/60'/0'/0/0",
			components: []common.PathComponent{
				hardened(44), hardened(60), hardened(0), plain(0), plain(0),
			},
		},
		{
			path:       "",
			components: []common.PathComponent{},
		},
		{
			path:       "m",
			components: []common.PathComponent{},
		},
		{
			path: "M/44'/60'/0'",
			components: []common.PathComponent{
				hardened(44), hardened(60), hardened(0),
			},
		},
		{
			path: "44h/501H/0'/0'",
			components: []common.PathComponent{
				hardened(44), hardened(501), hardened(0), hardened(0),
			},
		},
		{
			path: "m/1852'/1815'/0'/2/0",
			components: []common.PathComponent{
				hardened(1852), hardened(1815), hardened(0), plain(2), plain(0),
			},
		},
		{
			path:       "m/2147483647",
			components: []common.PathComponent{plain(2147483647)},
		},
	}
	for _, test := range tests {
		path, err := common.ParseKeyPath(test.path)
		require.NoError(t, err, test.path)
		assert.Equal(t, test.components, path.Components, test.path)
		assert.Nil(t, path.SourceFingerprint)
		assert.Nil(t, path.Depth)
	}
}

func TestParseKeyPathErrors(t *testing.T) {
	tests := []string{
		"m/",
		"m//0",
		"m/abc",
		"m/-1",
		"m/+1",
		"m/1''",
		"m/2147483648",
		"m/4294967296",
		"m/*",
		"x/0",
		" m/0",
	}
	for _, test := range tests {
		_, err := common.ParseKeyPath(test)
		require.Error(t, err, test)
		assert.ErrorIs(t, err, common.ErrMalformedInput, test)
	}
}

func TestKeyPathShortLayout(t *testing.T) {
	path, err := common.ParseKeyPath("M/44'/60'/0'")
	require.NoError(t, err)
	require.Len(t, path.Components, 3)
	purpose, ok := path.Purpose()
	assert.True(t, ok)
	assert.Equal(t, uint32(44), purpose)
	coinType, ok := path.CoinType()
	assert.True(t, ok)
	assert.Equal(t, uint32(60), coinType)
	account, ok := path.Account()
	assert.True(t, ok)
	assert.Equal(t, uint32(0), account)
	// Absent trailing levels are reported as absent, not as zero
	_, ok = path.Change()
	assert.False(t, ok)
	_, ok = path.AddressIndex()
	assert.False(t, ok)
}

func TestKeyPathString(t *testing.T) {
	path, err := common.ParseKeyPath("44h/60H/0'/0/7")
	require.NoError(t, err)
	assert.Equal(t, "m/44'/60'/0'/0/7", path.String())
	path.Components = append(path.Components, common.WildcardComponent())
	assert.Equal(t, "m/44'/60'/0'/0/7/*", path.String())
	assert.Equal(t, "m", common.KeyPath{}.String())
}

func TestKeyPathWithSourceFingerprint(t *testing.T) {
	path, err := common.ParseKeyPath("m/44'/60'/0'")
	require.NoError(t, err)
	withFp := path.WithSourceFingerprint(common.NewFingerprint(0x12345678))
	require.NotNil(t, withFp.SourceFingerprint)
	assert.Equal(t, uint32(0x12345678), withFp.SourceFingerprint.Uint32())
	// The original is untouched and the copy does not share components
	assert.Nil(t, path.SourceFingerprint)
	withFp.Components[0].Index = 49
	assert.Equal(t, uint32(44), path.Components[0].Index)
}

func TestKeyPathEncode(t *testing.T) {
	path, err := common.ParseKeyPath("m/44'/60'/0'/0/0")
	require.NoError(t, err)
	path = path.WithSourceFingerprint(common.NewFingerprint(0x12345678))
	cborData, err := common.Marshal(&path)
	require.NoError(t, err)
	assert.Equal(
		t,
		"a2018a182cf5183cf500f500f400f4021a12345678",
		hex.EncodeToString(cborData),
	)
	assert.Equal(t, 2, path.FieldCount())
	var decoded common.KeyPath
	require.NoError(t, common.Unmarshal(cborData, &decoded))
	assert.Equal(t, path, decoded)
}

func TestKeyPathDecodeHardenedForms(t *testing.T) {
	expected := []common.PathComponent{
		hardened(44), hardened(60), hardened(0), plain(0), plain(5),
	}
	tests := []struct {
		name    string
		cborHex string
	}{
		{
			name:    "boolean pairs",
			cborHex: "a1018a182cf5183cf500f500f405f4",
		},
		{
			name:    "hardened offset",
			cborHex: "a101851a8000002c1a8000003c1a800000000005",
		},
		{
			name:    "hardened offset with redundant flags",
			cborHex: "a1018a1a8000002cf51a8000003cf41a80000000f500f405f4",
		},
		{
			name:    "mixed, indefinite components",
			cborHex: "a1019f182cf51a8000003c1a8000000000f405ff",
		},
	}
	for _, test := range tests {
		cborData, err := hex.DecodeString(test.cborHex)
		require.NoError(t, err, test.name)
		var path common.KeyPath
		require.NoError(t, common.Unmarshal(cborData, &path), test.name)
		assert.Equal(t, expected, path.Components, test.name)
	}
}

func TestKeyPathWildcard(t *testing.T) {
	path := common.KeyPath{
		Components: []common.PathComponent{
			hardened(48), plain(1), common.WildcardComponent(),
		},
		Depth: new(uint8),
	}
	*path.Depth = 5
	cborData, err := common.Marshal(&path)
	require.NoError(t, err)
	// Wildcard index is an empty array
	assert.Equal(t, "a201861830f501f480f40305", hex.EncodeToString(cborData))
	var decoded common.KeyPath
	require.NoError(t, common.Unmarshal(cborData, &decoded))
	assert.Equal(t, path, decoded)
}

func TestKeyPathEmptyComponents(t *testing.T) {
	cborData, err := common.Marshal(&common.KeyPath{})
	require.NoError(t, err)
	assert.Equal(t, "a10180", hex.EncodeToString(cborData))
	var decoded common.KeyPath
	require.NoError(t, common.Unmarshal(cborData, &decoded))
	assert.NotNil(t, decoded.Components)
	assert.Equal(t, common.KeyPath{Components: []common.PathComponent{}}, decoded)
	assert.Equal(t, "m", decoded.String())
}

func TestKeyPathDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		cborHex string
	}{
		{name: "flag without index", cborHex: "a10182f500"},
		{name: "hardened wildcard", cborHex: "a1018280f5"},
		{name: "index range", cborHex: "a101828200f4f4"},
		{name: "text element", cborHex: "a101826161f4"},
		{name: "index too large", cborHex: "a101821b0000000100000000f4"},
		{name: "missing components", cborHex: "a1021a12345678"},
		{name: "fingerprint too large", cborHex: "a20180021b0000000100000000"},
	}
	for _, test := range tests {
		cborData, err := hex.DecodeString(test.cborHex)
		require.NoError(t, err, test.name)
		var path common.KeyPath
		err = common.Unmarshal(cborData, &path)
		assert.ErrorIs(t, err, common.ErrMalformedInput, test.name)
	}
}
