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

// Package cardano implements the Cardano registry records: transaction and data
// signing, and Catalyst voting registration
package cardano

import (
	"encoding/hex"
	"strconv"

	"github.com/blinklabs-io/urregistry/registry/common"
	"golang.org/x/crypto/blake2b"
)

const (
	KeyHashSize   = 28
	PublicKeySize = 32
)

// Utxo (cardano-utxo) describes a transaction input the device needs to know about to
// verify a transaction: which key controls it and how much it holds
type Utxo struct {
	TransactionHash []byte
	Index           uint32
	Amount          uint64
	KeyPath         common.KeyPath
	Address         string
}

func (u *Utxo) RegistryType() common.RegistryType {
	return common.TypeCardanoUtxo.RegistryType()
}

func (u *Utxo) Fields() []common.Field {
	return []common.Field{
		common.BytesField(1, "transaction_hash", &u.TransactionHash),
		common.UintField(2, "index", &u.Index),
		common.UintField(3, "amount", &u.Amount),
		common.KeyPathField(4, "key_path", &u.KeyPath),
		common.TextField(5, "address", &u.Address),
	}
}

func (u *Utxo) FieldCount() int { return common.FieldCount(u) }

func (u *Utxo) MarshalCBOR() ([]byte, error) { return common.Marshal(u) }

func (u *Utxo) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, u) }

// TransactionID returns the input reference in the usual hash#index text form
func (u *Utxo) TransactionID() string {
	return hex.EncodeToString(u.TransactionHash) + "#" + strconv.FormatUint(uint64(u.Index), 10)
}

// CertKey (cardano-cert-key) names a key that must additionally sign a transaction,
// such as a stake key for a certificate
type CertKey struct {
	KeyHash []byte
	KeyPath common.KeyPath
}

// NewCertKey builds a CertKey from a public key and its derivation path
func NewCertKey(pubKey []byte, keyPath common.KeyPath) (CertKey, error) {
	keyHash, err := KeyHash(pubKey)
	if err != nil {
		return CertKey{}, err
	}
	return CertKey{
		KeyHash: keyHash,
		KeyPath: keyPath.Clone(),
	}, nil
}

func (k *CertKey) RegistryType() common.RegistryType {
	return common.TypeCardanoCertKey.RegistryType()
}

func (k *CertKey) Fields() []common.Field {
	return []common.Field{
		common.BytesField(1, "key_hash", &k.KeyHash),
		common.KeyPathField(2, "key_path", &k.KeyPath),
	}
}

func (k *CertKey) FieldCount() int { return common.FieldCount(k) }

func (k *CertKey) MarshalCBOR() ([]byte, error) { return common.Marshal(k) }

func (k *CertKey) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, k) }

// KeyHash returns the blake2b-224 hash of an Ed25519 public key
func KeyHash(pubKey []byte) ([]byte, error) {
	if len(pubKey) != PublicKeySize {
		return nil, common.NewMalformedInputError(nil, "invalid public key length: %d", len(pubKey))
	}
	tmpHash, err := blake2b.New(KeyHashSize, nil)
	if err != nil {
		return nil, err
	}
	tmpHash.Write(pubKey)
	return tmpHash.Sum(nil), nil
}
