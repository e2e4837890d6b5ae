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

// Package aptos implements the Aptos registry records
package aptos

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// SignType identifies what the sign data of an aptos-sign-request holds
type SignType uint64

const (
	SignTypeSingle  SignType = 1
	SignTypeMulti   SignType = 2
	SignTypeMessage SignType = 3
)

func (t SignType) Valid() bool {
	return t >= SignTypeSingle && t <= SignTypeMessage
}

// AptosSignRequest (aptos-sign-request) asks a device to sign an Aptos transaction or
// message
type AptosSignRequest struct {
	RequestID       *common.UUID
	SignData        []byte
	DerivationPaths []common.KeyPath
	Accounts        [][]byte
	Origin          *string
	SignType        SignType
}

func (r *AptosSignRequest) RegistryType() common.RegistryType {
	return common.TypeAptosSignRequest.RegistryType()
}

func (r *AptosSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.KeyPathListField(3, "derivation_paths", &r.DerivationPaths),
		common.OptionalBytesListField(4, "accounts", &r.Accounts),
		common.OptionalTextField(5, "origin", &r.Origin),
		common.EnumField(6, "sign_type", &r.SignType),
	}
}

func (r *AptosSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *AptosSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *AptosSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// AptosSignature (aptos-signature) is the device's response to an aptos-sign-request
type AptosSignature struct {
	RequestID *common.UUID
	Signature []byte
	PublicKey []byte
}

func (s *AptosSignature) RegistryType() common.RegistryType {
	return common.TypeAptosSignature.RegistryType()
}

func (s *AptosSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
		common.BytesField(3, "public_key", &s.PublicKey),
	}
}

func (s *AptosSignature) FieldCount() int { return common.FieldCount(s) }

func (s *AptosSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *AptosSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }
