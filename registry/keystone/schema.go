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

package keystone

import (
	"fmt"

	"github.com/blinklabs-io/urregistry/registry/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// Protobuf field numbers
const (
	bundleFieldVersion           protowire.Number = 1
	bundleFieldDescription       protowire.Number = 2
	bundleFieldMasterFingerprint protowire.Number = 3
	bundleFieldDeviceType        protowire.Number = 4
	bundleFieldCoins             protowire.Number = 5

	coinFieldCoinCode protowire.Number = 1
	coinFieldActive   protowire.Number = 2
	coinFieldAccounts protowire.Number = 3

	accountFieldHDPath        protowire.Number = 1
	accountFieldXPub          protowire.Number = 2
	accountFieldAddressLength protowire.Number = 3
	accountFieldIsMultiSign   protowire.Number = 4
)

// Zero values are omitted, as for proto3 scalars
func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	return appendUint(b, num, protowire.EncodeBool(v))
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func (b *AccountBundle) marshalProto() []byte {
	var ret []byte
	ret = appendUint(ret, bundleFieldVersion, uint64(b.Version))
	ret = appendString(ret, bundleFieldDescription, b.Description)
	ret = appendString(ret, bundleFieldMasterFingerprint, b.MasterFingerprint)
	ret = appendString(ret, bundleFieldDeviceType, b.DeviceType)
	for _, c := range b.Coins {
		ret = appendMessage(ret, bundleFieldCoins, c.marshalProto())
	}
	return ret
}

func (c *Coin) marshalProto() []byte {
	var ret []byte
	ret = appendString(ret, coinFieldCoinCode, c.CoinCode)
	ret = appendBool(ret, coinFieldActive, c.Active)
	for _, a := range c.Accounts {
		ret = appendMessage(ret, coinFieldAccounts, a.marshalProto())
	}
	return ret
}

func (a *Account) marshalProto() []byte {
	var ret []byte
	ret = appendString(ret, accountFieldHDPath, a.HDPath)
	ret = appendString(ret, accountFieldXPub, a.XPub)
	ret = appendUint(ret, accountFieldAddressLength, uint64(a.AddressLength))
	ret = appendBool(ret, accountFieldIsMultiSign, a.IsMultiSign)
	return ret
}

// fieldHandler consumes the value of one field and returns the number of bytes read.
// Returning 0 leaves the value to be skipped
type fieldHandler func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func walkMessage(b []byte, fn fieldHandler) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func expectWireType(typ protowire.Type, expected protowire.Type) error {
	if typ != expected {
		return fmt.Errorf("unexpected wire type %d", typ)
	}
	return nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	if err := expectWireType(typ, protowire.BytesType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeUint32(typ protowire.Type, b []byte, dst *uint32) (int, error) {
	if err := expectWireType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	// Truncated like proto3 uint32
	*dst = uint32(v) // #nosec G115
	return n, nil
}

func consumeBool(typ protowire.Type, b []byte, dst *bool) (int, error) {
	if err := expectWireType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = protowire.DecodeBool(v)
	return n, nil
}

func consumeMessage(typ protowire.Type, b []byte, fn func([]byte) error) (int, error) {
	if err := expectWireType(typ, protowire.BytesType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, fn(v)
}

func (b *AccountBundle) unmarshalProto(data []byte) error {
	*b = AccountBundle{}
	err := walkMessage(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch num {
		case bundleFieldVersion:
			return consumeUint32(typ, data, &b.Version)
		case bundleFieldDescription:
			return consumeString(typ, data, &b.Description)
		case bundleFieldMasterFingerprint:
			return consumeString(typ, data, &b.MasterFingerprint)
		case bundleFieldDeviceType:
			return consumeString(typ, data, &b.DeviceType)
		case bundleFieldCoins:
			return consumeMessage(typ, data, func(msg []byte) error {
				var c Coin
				if err := c.unmarshalProto(msg); err != nil {
					return err
				}
				b.Coins = append(b.Coins, c)
				return nil
			})
		}
		return 0, nil
	})
	if err != nil {
		return common.NewSchemaError(err, "decode account bundle")
	}
	return nil
}

func (c *Coin) unmarshalProto(data []byte) error {
	return walkMessage(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch num {
		case coinFieldCoinCode:
			return consumeString(typ, data, &c.CoinCode)
		case coinFieldActive:
			return consumeBool(typ, data, &c.Active)
		case coinFieldAccounts:
			return consumeMessage(typ, data, func(msg []byte) error {
				var a Account
				if err := a.unmarshalProto(msg); err != nil {
					return err
				}
				c.Accounts = append(c.Accounts, a)
				return nil
			})
		}
		return 0, nil
	})
}

func (a *Account) unmarshalProto(data []byte) error {
	return walkMessage(data, func(num protowire.Number, typ protowire.Type, data []byte) (int, error) {
		switch num {
		case accountFieldHDPath:
			return consumeString(typ, data, &a.HDPath)
		case accountFieldXPub:
			return consumeString(typ, data, &a.XPub)
		case accountFieldAddressLength:
			return consumeUint32(typ, data, &a.AddressLength)
		case accountFieldIsMultiSign:
			return consumeBool(typ, data, &a.IsMultiSign)
		}
		return 0, nil
	})
}
