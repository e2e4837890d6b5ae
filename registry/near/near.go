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

// Package near implements the NEAR registry records
package near

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// NearSignRequest (near-sign-request) asks a device to sign one or more NEAR
// transactions with the same key
type NearSignRequest struct {
	RequestID      *common.UUID
	SignData       [][]byte
	DerivationPath common.KeyPath
	Account        *string
	Origin         *string
}

func (r *NearSignRequest) RegistryType() common.RegistryType {
	return common.TypeNearSignRequest.RegistryType()
}

func (r *NearSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesListField(2, "sign_data", &r.SignData),
		common.KeyPathField(3, "derivation_path", &r.DerivationPath),
		common.OptionalTextField(4, "account", &r.Account),
		common.OptionalTextField(5, "origin", &r.Origin),
	}
}

func (r *NearSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *NearSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *NearSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// NearSignature (near-signature) carries one signature per transaction of the
// matching near-sign-request, in the same order
type NearSignature struct {
	RequestID  *common.UUID
	Signatures [][]byte
}

func (s *NearSignature) RegistryType() common.RegistryType {
	return common.TypeNearSignature.RegistryType()
}

func (s *NearSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesListField(2, "signature", &s.Signatures),
	}
}

func (s *NearSignature) FieldCount() int { return common.FieldCount(s) }

func (s *NearSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *NearSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }
