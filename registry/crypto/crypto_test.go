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

package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/urregistry/internal/test"
	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/blinklabs-io/urregistry/registry/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseKeyPath(t *testing.T, s string) common.KeyPath {
	t.Helper()
	ret, err := common.ParseKeyPath(s)
	require.NoError(t, err)
	return ret
}

func ptr[T any](v T) *T {
	return &v
}

func TestPSBTEncode(t *testing.T) {
	payload := append(
		[]byte{0x70, 0x73, 0x62, 0x74, 0xff, 0x01},
		bytes.Repeat([]byte{0xab}, 161)...,
	)
	require.Len(t, payload, 167)
	psbt := &crypto.PSBT{Data: payload}
	assert.True(t, psbt.HasMagic())
	cborData, err := psbt.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, "58a7"+hex.EncodeToString(payload), hex.EncodeToString(cborData))
	var decoded crypto.PSBT
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, payload, decoded.Data)
}

func TestPSBTDecodeErrors(t *testing.T) {
	var decoded crypto.PSBT
	// A text string is not a PSBT
	err := decoded.UnmarshalCBOR(test.DecodeHexString("6170"))
	assert.ErrorIs(t, err, common.ErrMalformedInput)
	// Truncated byte string
	err = decoded.UnmarshalCBOR(test.DecodeHexString("58a77073"))
	assert.ErrorIs(t, err, common.ErrMalformedInput)
	// Any byte string is accepted, the payload is not interpreted
	require.NoError(t, decoded.UnmarshalCBOR(test.DecodeHexString("43010203")))
	assert.False(t, decoded.HasMagic())
}

func TestBytes(t *testing.T) {
	b := &crypto.Bytes{Data: []byte{0xde, 0xad}}
	cborData, err := b.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, "42dead", hex.EncodeToString(cborData))
	var decoded crypto.Bytes
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, b.Data, decoded.Data)
	assert.False(t, decoded.RegistryType().IsTagged())
}

func TestHDKeyEncode(t *testing.T) {
	key := &crypto.HDKey{
		KeyData: []byte{0x02, 0x01},
		UseInfo: &crypto.CoinInfo{CoinType: ptr(crypto.CoinTypeEthereum)},
		Origin:  &common.KeyPath{Components: []common.PathComponent{{Index: 44, Hardened: true}}},
	}
	assert.Equal(t, 3, key.FieldCount())
	cborData, err := key.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(
		t,
		"a303420201"+"05d90131a101183c"+"06d90130a10182182cf5",
		hex.EncodeToString(cborData),
	)
	var decoded crypto.HDKey
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, key, &decoded)
}

func TestHDKeyRoundTrip(t *testing.T) {
	origin := mustParseKeyPath(t, "m/44'/60'/0'").WithSourceFingerprint(common.NewFingerprint(0x12345678))
	children := mustParseKeyPath(t, "m/0")
	children.Components = append(children.Components, common.WildcardComponent())
	tests := []*crypto.HDKey{
		{KeyData: bytes.Repeat([]byte{0x02}, 33)},
		{
			IsMaster:          false,
			IsPrivate:         true,
			KeyData:           bytes.Repeat([]byte{0x01}, 33),
			ChainCode:         bytes.Repeat([]byte{0x03}, 32),
			UseInfo:           &crypto.CoinInfo{CoinType: ptr(crypto.CoinTypeBitcoin), Network: ptr(crypto.NetworkTestnet)},
			Origin:            &origin,
			Children:          &children,
			ParentFingerprint: ptr(common.NewFingerprint(0xdeadbeef)),
			Name:              ptr("account 0"),
			Note:              ptr("account.standard"),
		},
		{IsMaster: true, KeyData: bytes.Repeat([]byte{0x03}, 33), ChainCode: bytes.Repeat([]byte{0x04}, 32)},
	}
	for idx, key := range tests {
		cborData, err := key.MarshalCBOR()
		require.NoError(t, err, "key %d", idx)
		count, size, err := test.CountMapPairs(cborData)
		require.NoError(t, err, "key %d", idx)
		assert.Equal(t, key.FieldCount(), count, "key %d", idx)
		assert.Equal(t, len(cborData), size, "key %d", idx)
		var decoded crypto.HDKey
		require.NoError(t, decoded.UnmarshalCBOR(cborData), "key %d", idx)
		assert.Equal(t, key, &decoded, "key %d", idx)
	}
}

func TestHDKeyWithOrigin(t *testing.T) {
	origin := mustParseKeyPath(t, "m/84'/0'/0'")
	key := crypto.HDKey{KeyData: []byte{0x02}}
	withOrigin := key.WithOrigin(origin)
	assert.Nil(t, key.Origin)
	require.NotNil(t, withOrigin.Origin)
	origin.Components[0].Index = 49
	assert.Equal(t, uint32(84), withOrigin.Origin.Components[0].Index)
	_, ok := withOrigin.SourceFingerprint()
	assert.False(t, ok)
}

func TestHDKeyExtendedKey(t *testing.T) {
	// BIP32 test vector 1, chain m
	key := &crypto.HDKey{
		IsMaster:  true,
		KeyData:   test.DecodeHexString("0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2"),
		ChainCode: test.DecodeHexString("873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508"),
	}
	extKey, err := key.ExtendedKey()
	require.NoError(t, err)
	assert.Equal(
		t,
		"xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
		extKey.String(),
	)
	assert.False(t, extKey.IsPrivate())

	private := &crypto.HDKey{
		IsMaster:  true,
		IsPrivate: true,
		KeyData:   test.DecodeHexString("00e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"),
		ChainCode: key.ChainCode,
	}
	extKey, err = private.ExtendedKey()
	require.NoError(t, err)
	assert.True(t, extKey.IsPrivate())
	assert.Equal(t, "xprv", extKey.String()[:4])
	// The public half of the private key matches the public key
	neutered, err := extKey.Neuter()
	require.NoError(t, err)
	assert.Equal(t, "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8", neutered.String())

	_, err = (&crypto.HDKey{KeyData: key.KeyData}).ExtendedKey()
	assert.ErrorIs(t, err, crypto.ErrMissingChainCode)
	assert.ErrorIs(t, err, common.ErrMalformedInput)
	assert.Equal(t, common.ErrorKindMalformedInput, common.KindOf(err))
	_, err = (&crypto.HDKey{KeyData: []byte{0x02}, ChainCode: key.ChainCode}).ExtendedKey()
	assert.ErrorIs(t, err, common.ErrMalformedInput)
}

func TestHDKeyDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		cborHex string
	}{
		{name: "missing key data", cborHex: "a101f5"},
		{name: "untagged use info", cborHex: "a2034102 05a101183c"},
		{name: "wrong tag on origin", cborHex: "a2034102 06d90131a10180"},
		{name: "parent fingerprint too large", cborHex: "a2034102 081b0000000100000000"},
	}
	for _, testDef := range tests {
		var decoded crypto.HDKey
		err := decoded.UnmarshalCBOR(test.DecodeHexString(testDef.cborHex))
		assert.ErrorIs(t, err, common.ErrMalformedInput, testDef.name)
	}
}

func TestECKey(t *testing.T) {
	key := &crypto.ECKey{
		Curve:     ptr(crypto.CurveSecp256k1),
		IsPrivate: true,
		Data:      []byte{0x01, 0x02},
	}
	cborData, err := key.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, "a3010002f503420102", hex.EncodeToString(cborData))
	var decoded crypto.ECKey
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, key, &decoded)
}

func TestAccount(t *testing.T) {
	account := &crypto.Account{
		MasterFingerprint: common.NewFingerprint(0x37b5eed4),
		Outputs: []crypto.Output{
			{
				Expressions: []crypto.ScriptExpression{
					crypto.ScriptExpressionScriptHash,
					crypto.ScriptExpressionWitnessPublicKeyHash,
				},
				HDKey: &crypto.HDKey{KeyData: []byte{0x03, 0x01}},
			},
		},
	}
	assert.Equal(t, "sh(wpkh(KEY))", account.Outputs[0].Descriptor())
	cborData, err := account.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(
		t,
		"a2011a37b5eed40281d90134d90190d90194d9012fa103420301",
		hex.EncodeToString(cborData),
	)
	var decoded crypto.Account
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, account, &decoded)
}

func TestOutput(t *testing.T) {
	output := &crypto.Output{
		Expressions: []crypto.ScriptExpression{crypto.ScriptExpressionPublicKeyHash},
		ECKey:       &crypto.ECKey{Data: []byte{0x02, 0x03}},
	}
	cborData, err := output.MarshalCBOR()
	require.NoError(t, err)
	// The top-level payload is not wrapped in the crypto-output tag
	assert.Equal(t, "d90193d90132a103420203", hex.EncodeToString(cborData))
	var decoded crypto.Output
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, output, &decoded)

	_, err = (&crypto.Output{}).MarshalCBOR()
	assert.ErrorIs(t, err, common.ErrMalformedInput)
	_, err = (&crypto.Output{
		Expressions: []crypto.ScriptExpression{crypto.ScriptExpressionMultisig},
		ECKey:       &crypto.ECKey{Data: []byte{0x02}},
	}).MarshalCBOR()
	assert.ErrorIs(t, err, common.ErrMalformedInput)
}

func TestOutputDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		cborHex string
	}{
		{name: "multisig", cborHex: "d90196a2010102 80"},
		{name: "unknown expression", cborHex: "d90200d90132a1034102"},
		{name: "no key", cborHex: "d9019401"},
		{name: "bare map", cborHex: "a1034102"},
	}
	for _, testDef := range tests {
		var decoded crypto.Output
		err := decoded.UnmarshalCBOR(test.DecodeHexString(testDef.cborHex))
		assert.ErrorIs(t, err, common.ErrMalformedInput, testDef.name)
	}
}

func TestMultiAccounts(t *testing.T) {
	ethKey := crypto.HDKey{
		KeyData:   bytes.Repeat([]byte{0x02}, 33),
		ChainCode: bytes.Repeat([]byte{0x01}, 32),
		UseInfo:   &crypto.CoinInfo{CoinType: ptr(crypto.CoinTypeEthereum)},
	}.WithOrigin(mustParseKeyPath(t, "m/44'/60'/0'").WithSourceFingerprint(common.NewFingerprint(0xf23f9fd2)))
	btcKey := crypto.HDKey{
		KeyData: bytes.Repeat([]byte{0x03}, 33),
	}.WithOrigin(mustParseKeyPath(t, "m/84'/0'/0'"))
	bundle := &crypto.MultiAccounts{
		MasterFingerprint: common.NewFingerprint(0xf23f9fd2),
		Keys:              []crypto.HDKey{ethKey, btcKey},
		Device:            ptr("keystone Pro"),
		Version:           ptr("1.0.2"),
	}
	assert.Equal(t, 4, bundle.FieldCount())
	cborData, err := bundle.MarshalCBOR()
	require.NoError(t, err)
	var decoded crypto.MultiAccounts
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, bundle, &decoded)
	assert.Len(t, decoded.KeysForCoin(crypto.CoinTypeEthereum), 1)
	// Keys without use info default to Bitcoin
	assert.Len(t, decoded.KeysForCoin(crypto.CoinTypeBitcoin), 1)

	// Indefinite-length maps decode to the same value
	indefData, err := common.MarshalIndefinite(bundle)
	require.NoError(t, err)
	var indefDecoded crypto.MultiAccounts
	require.NoError(t, indefDecoded.UnmarshalCBOR(indefData))
	assert.Equal(t, decoded, indefDecoded)
}
