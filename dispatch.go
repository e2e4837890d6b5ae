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

package urregistry

import (
	"github.com/blinklabs-io/urregistry/registry/aptos"
	"github.com/blinklabs-io/urregistry/registry/cardano"
	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/blinklabs-io/urregistry/registry/cosmos"
	"github.com/blinklabs-io/urregistry/registry/crypto"
	"github.com/blinklabs-io/urregistry/registry/eth"
	"github.com/blinklabs-io/urregistry/registry/near"
	"github.com/blinklabs-io/urregistry/registry/sol"
	"github.com/blinklabs-io/urregistry/registry/sui"
)

// newValue returns an empty value of the registry type with the given name
func newValue(typeName string) (common.DecodableValue, bool) {
	switch typeName {
	case common.TypeBytes.Name():
		return &crypto.Bytes{}, true
	case common.TypeCryptoHDKey.Name():
		return &crypto.HDKey{}, true
	case common.TypeCryptoKeypath.Name():
		return &common.KeyPath{}, true
	case common.TypeCryptoCoinInfo.Name():
		return &crypto.CoinInfo{}, true
	case common.TypeCryptoECKey.Name():
		return &crypto.ECKey{}, true
	case common.TypeCryptoOutput.Name():
		return &crypto.Output{}, true
	case common.TypeCryptoPSBT.Name():
		return &crypto.PSBT{}, true
	case common.TypeCryptoAccount.Name():
		return &crypto.Account{}, true
	case common.TypeCryptoMultiAccounts.Name():
		return &crypto.MultiAccounts{}, true
	case common.TypeEthSignRequest.Name():
		return &eth.EthSignRequest{}, true
	case common.TypeEthSignature.Name():
		return &eth.EthSignature{}, true
	case common.TypeEthNFTItem.Name():
		return &eth.EthNFTItem{}, true
	case common.TypeEvmSignRequest.Name():
		return &eth.EvmSignRequest{}, true
	case common.TypeEvmSignature.Name():
		return &eth.EvmSignature{}, true
	case common.TypeSolSignRequest.Name():
		return &sol.SolSignRequest{}, true
	case common.TypeSolSignature.Name():
		return &sol.SolSignature{}, true
	case common.TypeSolNFTItem.Name():
		return &sol.SolNFTItem{}, true
	case common.TypeNearSignRequest.Name():
		return &near.NearSignRequest{}, true
	case common.TypeNearSignature.Name():
		return &near.NearSignature{}, true
	case common.TypeCardanoUtxo.Name():
		return &cardano.Utxo{}, true
	case common.TypeCardanoSignRequest.Name():
		return &cardano.CardanoSignRequest{}, true
	case common.TypeCardanoSignature.Name():
		return &cardano.CardanoSignature{}, true
	case common.TypeCardanoCertKey.Name():
		return &cardano.CertKey{}, true
	case common.TypeCardanoSignDataRequest.Name():
		return &cardano.CardanoSignDataRequest{}, true
	case common.TypeCardanoSignDataSignature.Name():
		return &cardano.CardanoSignDataSignature{}, true
	case common.TypeCardanoCatalystVotingRegistration.Name():
		return &cardano.CatalystVotingRegistration{}, true
	case common.TypeCardanoCatalystVotingRegistrationSignature.Name():
		return &cardano.CatalystVotingRegistrationSignature{}, true
	case common.TypeCardanoDelegation.Name():
		return &cardano.Delegation{}, true
	case common.TypeAptosSignRequest.Name():
		return &aptos.AptosSignRequest{}, true
	case common.TypeAptosSignature.Name():
		return &aptos.AptosSignature{}, true
	case common.TypeCosmosSignRequest.Name():
		return &cosmos.CosmosSignRequest{}, true
	case common.TypeCosmosSignature.Name():
		return &cosmos.CosmosSignature{}, true
	case common.TypeSuiSignRequest.Name():
		return &sui.SuiSignRequest{}, true
	case common.TypeSuiSignature.Name():
		return &sui.SuiSignature{}, true
	default:
		return nil, false
	}
}

// LookupType returns the registry type with the given name
func LookupType(typeName string) (common.RegistryType, bool) {
	return common.LookupRegistryType(typeName)
}

// LookupTag returns the registry type bound to the given CBOR tag
func LookupTag(tag uint64) (common.RegistryType, bool) {
	return common.LookupRegistryTag(tag)
}

// RegistryTypes returns every registry type the codec can decode
func RegistryTypes() []common.RegistryType {
	return common.RegistryTypes()
}
