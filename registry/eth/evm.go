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

package eth

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// EvmDataType identifies what the sign data of an evm-sign-request holds
type EvmDataType uint64

const EvmDataTypeArbitraryTransaction EvmDataType = 1

func (t EvmDataType) Valid() bool {
	return t == EvmDataTypeArbitraryTransaction
}

// EvmSignRequest (evm-sign-request) asks a device to sign a transaction for an
// EVM-compatible chain that is identified by a custom chain identifier rather than an
// Ethereum chain ID
type EvmSignRequest struct {
	RequestID             common.UUID
	SignData              []byte
	DataType              EvmDataType
	CustomChainIdentifier uint32
	DerivationPath        common.KeyPath
	Address               *string
	Origin                *string
}

func (r *EvmSignRequest) RegistryType() common.RegistryType {
	return common.TypeEvmSignRequest.RegistryType()
}

func (r *EvmSignRequest) Fields() []common.Field {
	return []common.Field{
		common.RequiredUUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.EnumField(3, "data_type", &r.DataType),
		common.UintField(4, "custom_chain_identifier", &r.CustomChainIdentifier),
		common.KeyPathField(5, "derivation_path", &r.DerivationPath),
		common.OptionalTextField(6, "address", &r.Address),
		common.OptionalTextField(7, "origin", &r.Origin),
	}
}

func (r *EvmSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *EvmSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *EvmSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// EvmSignature (evm-signature) is the device's response to an evm-sign-request
type EvmSignature struct {
	RequestID common.UUID
	Signature []byte
}

func (s *EvmSignature) RegistryType() common.RegistryType {
	return common.TypeEvmSignature.RegistryType()
}

func (s *EvmSignature) Fields() []common.Field {
	return []common.Field{
		common.RequiredUUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
	}
}

func (s *EvmSignature) FieldCount() int { return common.FieldCount(s) }

func (s *EvmSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *EvmSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }
