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

package cardano

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// CardanoSignRequest (cardano-sign-request) asks a device to sign a transaction. The
// inputs it spends and any additional signers are listed so the device can find the
// keys and show the amounts
type CardanoSignRequest struct {
	RequestID    *common.UUID
	SignData     []byte
	Utxos        []Utxo
	ExtraSigners []CertKey
	Origin       *string
}

func (r *CardanoSignRequest) RegistryType() common.RegistryType {
	return common.TypeCardanoSignRequest.RegistryType()
}

func (r *CardanoSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.RecordListField[Utxo](3, "utxos", &r.Utxos, true),
		common.RecordListField[CertKey](4, "extra_signers", &r.ExtraSigners, true),
		common.OptionalTextField(5, "origin", &r.Origin),
	}
}

func (r *CardanoSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *CardanoSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *CardanoSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// TotalInput returns the sum of the listed UTxO amounts
func (r *CardanoSignRequest) TotalInput() (uint64, error) {
	var ret uint64
	for _, utxo := range r.Utxos {
		if ret+utxo.Amount < ret {
			return 0, common.NewMalformedInputError(nil, "input amounts overflow")
		}
		ret += utxo.Amount
	}
	return ret, nil
}

// CardanoSignature (cardano-signature) carries the transaction witness set produced
// by the device
type CardanoSignature struct {
	RequestID  *common.UUID
	WitnessSet []byte
}

func (s *CardanoSignature) RegistryType() common.RegistryType {
	return common.TypeCardanoSignature.RegistryType()
}

func (s *CardanoSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "witness_set", &s.WitnessSet),
	}
}

func (s *CardanoSignature) FieldCount() int { return common.FieldCount(s) }

func (s *CardanoSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *CardanoSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }

// CardanoSignDataRequest (cardano-sign-data-request) asks a device to sign arbitrary
// data (CIP-8) with the key at the given path
type CardanoSignDataRequest struct {
	RequestID      *common.UUID
	SignData       []byte
	DerivationPath common.KeyPath
	Origin         *string
	XPub           []byte
}

func (r *CardanoSignDataRequest) RegistryType() common.RegistryType {
	return common.TypeCardanoSignDataRequest.RegistryType()
}

func (r *CardanoSignDataRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.KeyPathField(3, "derivation_path", &r.DerivationPath),
		common.OptionalTextField(4, "origin", &r.Origin),
		common.OptionalBytesField(5, "xpub", &r.XPub),
	}
}

func (r *CardanoSignDataRequest) FieldCount() int { return common.FieldCount(r) }

func (r *CardanoSignDataRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *CardanoSignDataRequest) UnmarshalCBOR(data []byte) error {
	return common.Unmarshal(data, r)
}

// CardanoSignDataSignature (cardano-sign-data-signature) is the device's response to a
// cardano-sign-data-request
type CardanoSignDataSignature struct {
	RequestID *common.UUID
	Signature []byte
	PublicKey []byte
}

func (s *CardanoSignDataSignature) RegistryType() common.RegistryType {
	return common.TypeCardanoSignDataSignature.RegistryType()
}

func (s *CardanoSignDataSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
		common.BytesField(3, "public_key", &s.PublicKey),
	}
}

func (s *CardanoSignDataSignature) FieldCount() int { return common.FieldCount(s) }

func (s *CardanoSignDataSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *CardanoSignDataSignature) UnmarshalCBOR(data []byte) error {
	return common.Unmarshal(data, s)
}
