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

// Account (crypto-account) lists the output descriptors of one account below a
// master key
type Account struct {
	MasterFingerprint common.Fingerprint
	Outputs           []Output
}

func (a *Account) RegistryType() common.RegistryType {
	return common.TypeCryptoAccount.RegistryType()
}

func (a *Account) Fields() []common.Field {
	return []common.Field{
		common.FingerprintField(1, "master_fingerprint", &a.MasterFingerprint),
		OutputListField(2, "output_descriptors", &a.Outputs),
	}
}

func (a *Account) FieldCount() int { return common.FieldCount(a) }

func (a *Account) MarshalCBOR() ([]byte, error) { return common.Marshal(a) }

func (a *Account) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, a) }

// MultiAccounts (crypto-multi-accounts) is the key bundle a device exports to a
// watch-only wallet: one HD key per chain/account, all below the same master key
type MultiAccounts struct {
	MasterFingerprint common.Fingerprint
	Keys              []HDKey
	Device            *string
	DeviceID          *string
	Version           *string
}

func (m *MultiAccounts) RegistryType() common.RegistryType {
	return common.TypeCryptoMultiAccounts.RegistryType()
}

func (m *MultiAccounts) Fields() []common.Field {
	return []common.Field{
		common.FingerprintField(1, "master_fingerprint", &m.MasterFingerprint),
		common.RecordListField[HDKey](2, "keys", &m.Keys, true),
		common.OptionalTextField(3, "device", &m.Device),
		common.OptionalTextField(4, "device_id", &m.DeviceID),
		common.OptionalTextField(5, "version", &m.Version),
	}
}

func (m *MultiAccounts) FieldCount() int { return common.FieldCount(m) }

func (m *MultiAccounts) MarshalCBOR() ([]byte, error) { return common.Marshal(m) }

func (m *MultiAccounts) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, m) }

// KeysForCoin returns the keys whose use info selects the given coin type
func (m *MultiAccounts) KeysForCoin(coinType uint32) []HDKey {
	var ret []HDKey
	for _, key := range m.Keys {
		if key.UseInfo.CoinTypeOrDefault() == coinType {
			ret = append(ret, key)
		}
	}
	return ret
}
