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

package common

// RegistryType binds a record kind to its CBOR tag and UR type name
type RegistryType struct {
	Tag  uint64
	Name string
}

// IsTagged reports whether records of this type carry a semantic tag when nested
func (t RegistryType) IsTagged() bool {
	return t.Tag != 0
}

func (t RegistryType) String() string {
	return t.Name
}

// TypeID identifies an entry of the read-only registry table
type TypeID int

// Registry types. "bytes" is the only type without a semantic tag
const (
	TypeBytes TypeID = iota
	TypeCryptoHDKey
	TypeCryptoKeypath
	TypeCryptoCoinInfo
	TypeCryptoECKey
	TypeCryptoOutput
	TypeCryptoPSBT
	TypeCryptoAccount
	TypeCryptoMultiAccounts
	TypeEthSignRequest
	TypeEthSignature
	TypeEthNFTItem
	TypeEvmSignRequest
	TypeEvmSignature
	TypeSolSignRequest
	TypeSolSignature
	TypeSolNFTItem
	TypeNearSignRequest
	TypeNearSignature
	TypeCardanoUtxo
	TypeCardanoSignRequest
	TypeCardanoSignature
	TypeCardanoCertKey
	TypeCardanoSignDataRequest
	TypeCardanoSignDataSignature
	TypeCardanoCatalystVotingRegistration
	TypeCardanoCatalystVotingRegistrationSignature
	TypeCardanoDelegation
	TypeAptosSignRequest
	TypeAptosSignature
	TypeCosmosSignRequest
	TypeCosmosSignature
	TypeSuiSignRequest
	TypeSuiSignature
)

var registryTypes = [...]RegistryType{
	TypeBytes: {Tag: 0, Name: "bytes"},
	TypeCryptoHDKey: {Tag: 303, Name: "crypto-hdkey"},
	TypeCryptoKeypath: {Tag: 304, Name: "crypto-keypath"},
	TypeCryptoCoinInfo: {Tag: 305, Name: "crypto-coin-info"},
	TypeCryptoECKey: {Tag: 306, Name: "crypto-eckey"},
	TypeCryptoOutput: {Tag: 308, Name: "crypto-output"},
	TypeCryptoPSBT: {Tag: 310, Name: "crypto-psbt"},
	TypeCryptoAccount: {Tag: 311, Name: "crypto-account"},
	TypeCryptoMultiAccounts: {Tag: 1103, Name: "crypto-multi-accounts"},
	TypeEthSignRequest: {Tag: 401, Name: "eth-sign-request"},
	TypeEthSignature: {Tag: 402, Name: "eth-signature"},
	TypeEthNFTItem: {Tag: 403, Name: "eth-nft-item"},
	TypeEvmSignRequest: {Tag: 4103, Name: "evm-sign-request"},
	TypeEvmSignature: {Tag: 4104, Name: "evm-signature"},
	TypeSolSignRequest: {Tag: 1101, Name: "sol-sign-request"},
	TypeSolSignature: {Tag: 1102, Name: "sol-signature"},
	TypeSolNFTItem: {Tag: 1104, Name: "sol-nft-item"},
	TypeNearSignRequest: {Tag: 2101, Name: "near-sign-request"},
	TypeNearSignature: {Tag: 2102, Name: "near-signature"},
	TypeCardanoUtxo: {Tag: 2201, Name: "cardano-utxo"},
	TypeCardanoSignRequest: {Tag: 2202, Name: "cardano-sign-request"},
	TypeCardanoSignature: {Tag: 2203, Name: "cardano-signature"},
	TypeCardanoCertKey: {Tag: 2204, Name: "cardano-cert-key"},
	TypeCardanoSignDataRequest: {Tag: 2205, Name: "cardano-sign-data-request"},
	TypeCardanoSignDataSignature: {Tag: 2206, Name: "cardano-sign-data-signature"},
	TypeCardanoCatalystVotingRegistration: {Tag: 2207, Name: "cardano-catalyst-voting-registration"},
	TypeCardanoCatalystVotingRegistrationSignature: {Tag: 2208, Name: "cardano-catalyst-voting-registration-signature"},
	TypeCardanoDelegation: {Tag: 2209, Name: "cardano-delegation"},
	TypeAptosSignRequest: {Tag: 3101, Name: "aptos-sign-request"},
	TypeAptosSignature: {Tag: 3102, Name: "aptos-signature"},
	TypeCosmosSignRequest: {Tag: 4101, Name: "cosmos-sign-request"},
	TypeCosmosSignature: {Tag: 4102, Name: "cosmos-signature"},
	TypeSuiSignRequest: {Tag: 7101, Name: "sui-sign-request"},
	TypeSuiSignature: {Tag: 7102, Name: "sui-signature"},
}

// RegistryType returns the table entry for id
func (id TypeID) RegistryType() RegistryType {
	return registryTypes[id]
}

// Tag returns the CBOR tag of the type, or 0 for an untagged type
func (id TypeID) Tag() uint64 {
	return registryTypes[id].Tag
}

// Name returns the UR type name
func (id TypeID) Name() string {
	return registryTypes[id].Name
}

// Lookup indexes over registryTypes. Built once during package initialization and
// never modified afterward, so concurrent readers need no locking
var (
	registryTypesByName = func() map[string]RegistryType {
		ret := make(map[string]RegistryType, len(registryTypes))
		for _, t := range registryTypes {
			ret[t.Name] = t
		}
		return ret
	}()
	registryTypesByTag = func() map[uint64]RegistryType {
		ret := make(map[uint64]RegistryType, len(registryTypes))
		for _, t := range registryTypes {
			if t.IsTagged() {
				ret[t.Tag] = t
			}
		}
		return ret
	}()
)

// LookupRegistryType returns the registry type with the given UR type name
func LookupRegistryType(name string) (RegistryType, bool) {
	ret, ok := registryTypesByName[name]
	return ret, ok
}

// LookupRegistryTag returns the registry type bound to the given CBOR tag
func LookupRegistryTag(tag uint64) (RegistryType, bool) {
	ret, ok := registryTypesByTag[tag]
	return ret, ok
}

// RegistryTypes returns all known registry types
func RegistryTypes() []RegistryType {
	ret := make([]RegistryType, len(registryTypes))
	copy(ret, registryTypes[:])
	return ret
}
