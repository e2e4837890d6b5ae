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

// Package cosmos implements the Cosmos SDK registry records
package cosmos

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// DataType identifies the encoding of the sign data of a cosmos-sign-request
type DataType uint64

const (
	DataTypeAmino   DataType = 1
	DataTypeDirect  DataType = 2
	DataTypeTextual DataType = 3
	DataTypeMessage DataType = 4
)

func (t DataType) Valid() bool {
	return t >= DataTypeAmino && t <= DataTypeMessage
}

// CosmosSignRequest (cosmos-sign-request) asks a device to sign a Cosmos SDK
// transaction with one or more keys
type CosmosSignRequest struct {
	RequestID       *common.UUID
	SignData        []byte
	DataType        DataType
	DerivationPaths []common.KeyPath
	Addresses       []string
	Origin          *string
}

func (r *CosmosSignRequest) RegistryType() common.RegistryType {
	return common.TypeCosmosSignRequest.RegistryType()
}

func (r *CosmosSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.EnumField(3, "data_type", &r.DataType),
		common.KeyPathListField(4, "derivation_paths", &r.DerivationPaths),
		common.OptionalTextListField(5, "addresses", &r.Addresses),
		common.OptionalTextField(6, "origin", &r.Origin),
	}
}

func (r *CosmosSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *CosmosSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *CosmosSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// CosmosSignature (cosmos-signature) is the device's response to a
// cosmos-sign-request
type CosmosSignature struct {
	RequestID *common.UUID
	Signature []byte
	PublicKey []byte
}

func (s *CosmosSignature) RegistryType() common.RegistryType {
	return common.TypeCosmosSignature.RegistryType()
}

func (s *CosmosSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
		common.BytesField(3, "public_key", &s.PublicKey),
	}
}

func (s *CosmosSignature) FieldCount() int { return common.FieldCount(s) }

func (s *CosmosSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *CosmosSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }
