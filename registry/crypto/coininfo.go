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

package crypto

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// SLIP-0044 coin types
const (
	CoinTypeBitcoin  uint32 = 0
	CoinTypeEthereum uint32 = 60
	CoinTypeCosmos   uint32 = 118
	CoinTypeSolana   uint32 = 501
	CoinTypeAptos    uint32 = 637
	CoinTypeSui      uint32 = 784
	CoinTypeCardano  uint32 = 1815
)

// Networks
const (
	NetworkMainnet int64 = 0
	NetworkTestnet int64 = 1
)

// CoinInfo (crypto-coin-info) identifies the coin and network a key is used for. An
// absent coin type means Bitcoin and an absent network means mainnet
type CoinInfo struct {
	CoinType *uint32
	Network  *int64
}

func (c *CoinInfo) RegistryType() common.RegistryType {
	return common.TypeCryptoCoinInfo.RegistryType()
}

func (c *CoinInfo) Fields() []common.Field {
	return []common.Field{
		common.OptionalUintField(1, "type", &c.CoinType),
		common.OptionalIntField(2, "network", &c.Network),
	}
}

func (c *CoinInfo) FieldCount() int { return common.FieldCount(c) }

func (c *CoinInfo) MarshalCBOR() ([]byte, error) { return common.Marshal(c) }

func (c *CoinInfo) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, c) }

// CoinTypeOrDefault returns the coin type, defaulting to Bitcoin
func (c *CoinInfo) CoinTypeOrDefault() uint32 {
	if c == nil || c.CoinType == nil {
		return CoinTypeBitcoin
	}
	return *c.CoinType
}

// IsTestnet reports whether the coin info selects the test network
func (c *CoinInfo) IsTestnet() bool {
	return c != nil && c.Network != nil && *c.Network == NetworkTestnet
}
