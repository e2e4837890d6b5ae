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

// Package testdata provides canonical registry payloads for benchmarks and tests.
package testdata

import (
	_ "embed"
)

// eth-signature with request ID 9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d and a
// 65-byte signature of 0x00..0x40
//
//go:embed eth_signature.hex
var EthSignatureHex string

// eth-sign-request for a personal message signed at m/60'
//
//go:embed eth_sign_request.hex
var EthSignRequestHex string

// crypto-hdkey with key data, use info for coin type 60 and origin m/44'
//
//go:embed crypto_hdkey.hex
var CryptoHDKeyHex string

// crypto-account with one sh(wpkh(KEY)) output descriptor
//
//go:embed crypto_account.hex
var CryptoAccountHex string

// sol-sign-request for a message signed at m/44'/501'
//
//go:embed sol_sign_request.hex
var SolSignRequestHex string

// cosmos-sign-request for textual data signed at m/118'
//
//go:embed cosmos_sign_request.hex
var CosmosSignRequestHex string

// catalyst-voting-registration with a single delegation and a stake key at
// m/1852'/1815'/0'/2/0
//
//go:embed catalyst_voting_registration.hex
var CatalystVotingRegistrationHex string

// Vector is an encoded payload along with the registry type name it belongs to
type Vector struct {
	Name     string
	TypeName string
	Hex      string
}

// GetVectors returns the canonical payloads. Each one re-encodes byte for byte
func GetVectors() []Vector {
	return []Vector{
		{Name: "EthSignature", TypeName: "eth-signature", Hex: EthSignatureHex},
		{Name: "EthSignRequest", TypeName: "eth-sign-request", Hex: EthSignRequestHex},
		{Name: "CryptoHDKey", TypeName: "crypto-hdkey", Hex: CryptoHDKeyHex},
		{Name: "CryptoAccount", TypeName: "crypto-account", Hex: CryptoAccountHex},
		{Name: "SolSignRequest", TypeName: "sol-sign-request", Hex: SolSignRequestHex},
		{Name: "CosmosSignRequest", TypeName: "cosmos-sign-request", Hex: CosmosSignRequestHex},
		{
			Name:     "CatalystVotingRegistration",
			TypeName: "cardano-catalyst-voting-registration",
			Hex:      CatalystVotingRegistrationHex,
		},
	}
}
