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

// Package sol implements the Solana registry records
package sol

import (
	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// SignType identifies what the sign data of a sol-sign-request holds
type SignType uint64

const (
	SignTypeTransaction SignType = 1
	SignTypeMessage     SignType = 2
)

func (t SignType) Valid() bool {
	return t == SignTypeTransaction || t == SignTypeMessage
}

// SolSignRequest (sol-sign-request) asks a device to sign a Solana transaction or
// message
type SolSignRequest struct {
	RequestID      *common.UUID
	SignData       []byte
	DerivationPath common.KeyPath
	Address        []byte
	Origin         *string
	SignType       *SignType
}

func (r *SolSignRequest) RegistryType() common.RegistryType {
	return common.TypeSolSignRequest.RegistryType()
}

func (r *SolSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.KeyPathField(3, "derivation_path", &r.DerivationPath),
		common.OptionalBytesField(4, "address", &r.Address),
		common.OptionalTextField(5, "origin", &r.Origin),
		common.OptionalEnumField(6, "sign_type", &r.SignType),
	}
}

func (r *SolSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *SolSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *SolSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// SignTypeOrDefault returns the sign type, defaulting to a transaction
func (r *SolSignRequest) SignTypeOrDefault() SignType {
	if r.SignType == nil {
		return SignTypeTransaction
	}
	return *r.SignType
}

// AddressString returns the requested address in base58, or "" when the request has
// no address
func (r *SolSignRequest) AddressString() string {
	if len(r.Address) == 0 {
		return ""
	}
	return base58.Encode(r.Address)
}

// SolSignature (sol-signature) is the device's response to a sol-sign-request
type SolSignature struct {
	RequestID *common.UUID
	Signature []byte
}

func (s *SolSignature) RegistryType() common.RegistryType {
	return common.TypeSolSignature.RegistryType()
}

func (s *SolSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
	}
}

func (s *SolSignature) FieldCount() int { return common.FieldCount(s) }

func (s *SolSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *SolSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }

// SolNFTItem (sol-nft-item) describes a Solana NFT for display on the device
type SolNFTItem struct {
	MintAddress    string
	CollectionName string
	Name           string
	MediaData      string
}

func (n *SolNFTItem) RegistryType() common.RegistryType {
	return common.TypeSolNFTItem.RegistryType()
}

func (n *SolNFTItem) Fields() []common.Field {
	return []common.Field{
		common.TextField(1, "mint_address", &n.MintAddress),
		common.TextField(2, "collection_name", &n.CollectionName),
		common.TextField(3, "name", &n.Name),
		common.TextField(4, "media_data", &n.MediaData),
	}
}

func (n *SolNFTItem) FieldCount() int { return common.FieldCount(n) }

func (n *SolNFTItem) MarshalCBOR() ([]byte, error) { return common.Marshal(n) }

func (n *SolNFTItem) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, n) }
