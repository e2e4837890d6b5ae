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

// CurveSecp256k1 is the default curve of an EC key
const CurveSecp256k1 int64 = 0

// ECKey (crypto-eckey) is a bare elliptic curve key
type ECKey struct {
	Curve     *int64
	IsPrivate bool
	Data      []byte
}

func (k *ECKey) RegistryType() common.RegistryType {
	return common.TypeCryptoECKey.RegistryType()
}

func (k *ECKey) Fields() []common.Field {
	return []common.Field{
		common.OptionalIntField(1, "curve", &k.Curve),
		common.FlagField(2, "is_private", &k.IsPrivate),
		common.BytesField(3, "data", &k.Data),
	}
}

func (k *ECKey) FieldCount() int { return common.FieldCount(k) }

func (k *ECKey) MarshalCBOR() ([]byte, error) { return common.Marshal(k) }

func (k *ECKey) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, k) }
