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

// Package eth implements the Ethereum and EVM-compatible registry records
package eth

import (
	"encoding/hex"
	"strings"

	"github.com/blinklabs-io/urregistry/registry/common"
	"golang.org/x/crypto/sha3"
)

const AddressSize = 20

// DataType identifies what the sign data of an eth-sign-request holds
type DataType uint64

const (
	DataTypeTransaction      DataType = 1
	DataTypeTypedData        DataType = 2
	DataTypePersonalMessage  DataType = 3
	DataTypeTypedTransaction DataType = 4
)

func (t DataType) Valid() bool {
	return t >= DataTypeTransaction && t <= DataTypeTypedTransaction
}

func (t DataType) String() string {
	switch t {
	case DataTypeTransaction:
		return "transaction"
	case DataTypeTypedData:
		return "typed-data"
	case DataTypePersonalMessage:
		return "personal-message"
	case DataTypeTypedTransaction:
		return "typed-transaction"
	default:
		return "unknown"
	}
}

// EthSignRequest (eth-sign-request) asks a device to sign Ethereum data with the key at
// the given derivation path
type EthSignRequest struct {
	RequestID      *common.UUID
	SignData       []byte
	DataType       DataType
	ChainID        *int64
	DerivationPath common.KeyPath
	Address        []byte
	Origin         *string
}

func (r *EthSignRequest) RegistryType() common.RegistryType {
	return common.TypeEthSignRequest.RegistryType()
}

func (r *EthSignRequest) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.BytesField(2, "sign_data", &r.SignData),
		common.EnumField(3, "data_type", &r.DataType),
		common.OptionalIntField(4, "chain_id", &r.ChainID),
		common.KeyPathField(5, "derivation_path", &r.DerivationPath),
		common.OptionalBytesField(6, "address", &r.Address),
		common.OptionalTextField(7, "origin", &r.Origin),
	}
}

func (r *EthSignRequest) FieldCount() int { return common.FieldCount(r) }

func (r *EthSignRequest) MarshalCBOR() ([]byte, error) { return common.Marshal(r) }

func (r *EthSignRequest) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, r) }

// ChainIDOrDefault returns the chain ID, defaulting to Ethereum mainnet
func (r *EthSignRequest) ChainIDOrDefault() int64 {
	if r.ChainID == nil {
		return 1
	}
	return *r.ChainID
}

// AddressString returns the requested address in EIP-55 checksum form, or "" when
// the request has no address
func (r *EthSignRequest) AddressString() string {
	if len(r.Address) != AddressSize {
		return ""
	}
	return ChecksumAddress(r.Address)
}

// EthSignature (eth-signature) is the device's response to an eth-sign-request
type EthSignature struct {
	RequestID *common.UUID
	Signature []byte
	Origin    *string
}

func (s *EthSignature) RegistryType() common.RegistryType {
	return common.TypeEthSignature.RegistryType()
}

func (s *EthSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
		common.OptionalTextField(3, "origin", &s.Origin),
	}
}

func (s *EthSignature) FieldCount() int { return common.FieldCount(s) }

func (s *EthSignature) MarshalCBOR() ([]byte, error) { return common.Marshal(s) }

func (s *EthSignature) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, s) }

// EthNFTItem (eth-nft-item) describes an NFT for display on the device
type EthNFTItem struct {
	ChainID         int64
	ContractAddress string
	ContractName    string
	Name            string
	MediaData       string
}

func (n *EthNFTItem) RegistryType() common.RegistryType {
	return common.TypeEthNFTItem.RegistryType()
}

func (n *EthNFTItem) Fields() []common.Field {
	return []common.Field{
		common.IntField(1, "chain_id", &n.ChainID),
		common.TextField(2, "contract_address", &n.ContractAddress),
		common.TextField(3, "contract_name", &n.ContractName),
		common.TextField(4, "name", &n.Name),
		common.TextField(5, "media_data", &n.MediaData),
	}
}

func (n *EthNFTItem) FieldCount() int { return common.FieldCount(n) }

func (n *EthNFTItem) MarshalCBOR() ([]byte, error) { return common.Marshal(n) }

func (n *EthNFTItem) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, n) }

// ChecksumAddress renders a 20-byte address in EIP-55 mixed-case hex
func ChecksumAddress(address []byte) string {
	lower := hex.EncodeToString(address)
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)
	var sb strings.Builder
	sb.WriteString("0x")
	for i, c := range lower {
		// Letters are upper-cased where the matching nibble of the hash is 8 or more
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if c >= 'a' && nibble&0x0f >= 8 {
			c -= 'a' - 'A'
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
