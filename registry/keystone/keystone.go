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

// Package keystone implements the compressed account bundle some devices export in
// place of crypto-multi-accounts. The bundle is a protobuf message compressed with
// gzip and carried as a bytes payload.
package keystone

import (
	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/blinklabs-io/urregistry/registry/crypto"
)

// Account is one exported key of a coin
type Account struct {
	HDPath        string
	XPub          string
	AddressLength uint32
	IsMultiSign   bool
}

// Coin groups the accounts exported for one coin
type Coin struct {
	CoinCode string
	Active   bool
	Accounts []Account
}

// AccountBundle is the decoded form of a compressed account export
type AccountBundle struct {
	Version     uint32
	Description string
	// MasterFingerprint is the hex fingerprint of the master key
	MasterFingerprint string
	DeviceType        string
	Coins             []Coin
}

// Encode returns the bundle as a schema-encoded and compressed byte string
func (b *AccountBundle) Encode(opts ...BundleOptionFunc) ([]byte, error) {
	o := newBundleOptions(opts...)
	return compress(b.marshalProto(), o)
}

// ToBytes wraps the encoded bundle in a bytes registry value
func (b *AccountBundle) ToBytes(opts ...BundleOptionFunc) (*crypto.Bytes, error) {
	data, err := b.Encode(opts...)
	if err != nil {
		return nil, err
	}
	return &crypto.Bytes{Data: data}, nil
}

// DecodeAccountBundle decompresses and schema-decodes a bundle. Decompression failures
// are reported as CompressionError and message failures as SchemaError
func DecodeAccountBundle(data []byte, opts ...BundleOptionFunc) (*AccountBundle, error) {
	o := newBundleOptions(opts...)
	raw, err := decompress(data, o)
	if err != nil {
		return nil, err
	}
	ret := &AccountBundle{}
	if err := ret.unmarshalProto(raw); err != nil {
		return nil, err
	}
	return ret, nil
}

// AccountBundleFromBytes decodes the bundle carried in a bytes registry value
func AccountBundleFromBytes(b *crypto.Bytes, opts ...BundleOptionFunc) (*AccountBundle, error) {
	if b == nil {
		return nil, common.NewMalformedInputError(nil, "nil bytes value")
	}
	return DecodeAccountBundle(b.Data, opts...)
}

// Coin returns the coin with the given code
func (b *AccountBundle) Coin(code string) (Coin, bool) {
	for _, c := range b.Coins {
		if c.CoinCode == code {
			return c, true
		}
	}
	return Coin{}, false
}
