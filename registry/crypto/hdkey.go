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
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	hdKeyPublicKeySize  = 33
	hdKeyPrivateKeySize = 32
	hdKeyChainCodeSize  = 32
)

// ErrMissingChainCode is returned by ExtendedKey for a key without a chain code
var ErrMissingChainCode = common.NewMalformedInputError(nil, "HD key has no chain code")

// HDKey (crypto-hdkey) is a BIP32 hierarchical deterministic key. Master keys carry
// only key data and chain code; derived keys may describe their origin, the
// derivation of their children and their parent's fingerprint
type HDKey struct {
	IsMaster          bool
	IsPrivate         bool
	KeyData           []byte
	ChainCode         []byte
	UseInfo           *CoinInfo
	Origin            *common.KeyPath
	Children          *common.KeyPath
	ParentFingerprint *common.Fingerprint
	Name              *string
	Note              *string
}

func (k *HDKey) RegistryType() common.RegistryType {
	return common.TypeCryptoHDKey.RegistryType()
}

func (k *HDKey) Fields() []common.Field {
	return []common.Field{
		common.FlagField(1, "is_master", &k.IsMaster),
		common.FlagField(2, "is_private", &k.IsPrivate),
		common.BytesField(3, "key_data", &k.KeyData),
		common.OptionalBytesField(4, "chain_code", &k.ChainCode),
		common.OptionalRecordField[CoinInfo](5, "use_info", &k.UseInfo, true),
		common.OptionalKeyPathField(6, "origin", &k.Origin),
		common.OptionalKeyPathField(7, "children", &k.Children),
		common.OptionalFingerprintField(8, "parent_fingerprint", &k.ParentFingerprint),
		common.OptionalTextField(9, "name", &k.Name),
		common.OptionalTextField(10, "note", &k.Note),
	}
}

func (k *HDKey) FieldCount() int { return common.FieldCount(k) }

func (k *HDKey) MarshalCBOR() ([]byte, error) { return common.Marshal(k) }

func (k *HDKey) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, k) }

// WithOrigin returns a copy of the key with the given origin. The path is deep copied
func (k HDKey) WithOrigin(origin common.KeyPath) HDKey {
	tmpOrigin := origin.Clone()
	k.Origin = &tmpOrigin
	return k
}

// SourceFingerprint returns the master key fingerprint from the key's origin
func (k *HDKey) SourceFingerprint() (common.Fingerprint, bool) {
	if k.Origin == nil || k.Origin.SourceFingerprint == nil {
		return common.Fingerprint{}, false
	}
	return *k.Origin.SourceFingerprint, true
}

// ExtendedKey returns the key in BIP32 serialized form (xpub/xprv, or tpub/tprv when
// the use info selects the test network). Depth and child number come from the
// origin path
func (k *HDKey) ExtendedKey() (*hdkeychain.ExtendedKey, error) {
	if len(k.ChainCode) != hdKeyChainCodeSize {
		return nil, ErrMissingChainCode
	}
	params := &chaincfg.MainNetParams
	if k.UseInfo.IsTestnet() {
		params = &chaincfg.TestNet3Params
	}
	version := params.HDPublicKeyID[:]
	keyData := k.KeyData
	if k.IsPrivate {
		version = params.HDPrivateKeyID[:]
		// Private key data carries a leading zero byte
		if len(keyData) == hdKeyPrivateKeySize+1 && keyData[0] == 0 {
			keyData = keyData[1:]
		}
		if len(keyData) != hdKeyPrivateKeySize {
			return nil, common.NewMalformedInputError(nil, "invalid private key length: %d", len(k.KeyData))
		}
	} else if len(keyData) != hdKeyPublicKeySize {
		return nil, common.NewMalformedInputError(nil, "invalid public key length: %d", len(keyData))
	}
	var depth uint8
	var childNum uint32
	if k.Origin != nil {
		switch {
		case k.Origin.Depth != nil:
			depth = *k.Origin.Depth
		case len(k.Origin.Components) <= 255:
			depth = uint8(len(k.Origin.Components)) // #nosec G115
		default:
			return nil, common.NewMalformedInputError(nil, "origin path too deep")
		}
		if len(k.Origin.Components) > 0 {
			last := k.Origin.Components[len(k.Origin.Components)-1]
			if last.Wildcard {
				return nil, common.NewMalformedInputError(nil, "origin path ends in a wildcard")
			}
			childNum = last.ChildNumber()
		}
	}
	parentFP := make([]byte, common.FingerprintSize)
	if k.ParentFingerprint != nil {
		copy(parentFP, k.ParentFingerprint.Bytes())
	}
	return hdkeychain.NewExtendedKey(
		version,
		keyData,
		k.ChainCode,
		parentFP,
		depth,
		childNum,
		k.IsPrivate,
	), nil
}
