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

// Package sui implements the Sui registry records
package sui

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// SuiSignRequest (sui-sign-request) asks a device to sign a Sui intent message
type SuiSignRequest struct {
	RequestID       *common.UUID
	IntentMessage   []byte
	DerivationPaths []common.KeyPath
	Addresses       [][]byte
	Origin          *string
}

func (r *SuiSignRequest) RegistryType() common.RegistryType {
	return common.TypeSuiSignRequest.RegistryType()
}

func (r *SuiSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "intent_message", &r.IntentMessage),
		common.KeyPathListField(3, "derivation_paths", &r.DerivationPaths),
		common.OptionalBytesListField(4, "addresses", &r.Addresses),
		common.OptionalTextField(5, "origin", &r.Origin),
	}
}

func (r *SuiSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *SuiSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *SuiSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// SuiSignature (sui-signature) is the device's response to a sui-sign-request
type SuiSignature struct {
	RequestID *common.UUID
	Signature []byte
	PublicKey []byte
}

func (s *SuiSignature) RegistryType() common.RegistryType {
	return common.TypeSuiSignature.RegistryType()
}

func (s *SuiSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
		common.OptionalBytesField(3, "public_key", &s.PublicKey),
	}
}

func (s *SuiSignature) FieldCount() int { return common.FieldCount(s) }

func (s *SuiSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *SuiSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }
