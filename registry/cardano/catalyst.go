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

package cardano

import (
	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// VotingPurposeCatalyst is the CIP-36 voting purpose of Project Catalyst
const VotingPurposeCatalyst uint64 = 0

const (
	addressHeaderNetworkMask = 0x0f
	addressNetworkMainnet    = 1

	addressHrpMainnet = "addr"
	addressHrpTestnet = "addr_test"
)

// Delegation (cardano-delegation) assigns a share of voting power to a vote key
type Delegation struct {
	PubKey []byte
	Weight uint64
}

func (d *Delegation) RegistryType() common.RegistryType {
	return common.TypeCardanoDelegation.RegistryType()
}

func (d *Delegation) Fields() []common.Field {
	return []common.Field{
		common.BytesField(1, "pub_key", &d.PubKey),
		common.UintField(2, "weight", &d.Weight),
	}
}

func (d *Delegation) FieldCount() int { return common.FieldCount(d) }

func (d *Delegation) MarshalCBOR() ([]byte, error) { return common.Marshal(d) }

func (d *Delegation) UnmarshalCBOR(data []byte) error { return common.Unmarshal(data, d) }

// CatalystVotingRegistration (cardano-catalyst-voting-registration) asks a device to
// sign a CIP-36 voting key registration
type CatalystVotingRegistration struct {
	RequestID         *common.UUID
	MasterFingerprint common.Fingerprint
	Delegations       []Delegation
	StakePub          []byte
	PaymentAddress    []byte
	Nonce             uint64
	VotingPurpose     uint64
	DerivationPath    common.KeyPath
	Origin            *string
}

func (r *CatalystVotingRegistration) RegistryType() common.RegistryType {
	return common.TypeCardanoCatalystVotingRegistration.RegistryType()
}

func (r *CatalystVotingRegistration) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &r.RequestID),
		common.FingerprintField(2, "mfp", &r.MasterFingerprint),
		common.RecordListField[Delegation](3, "delegations", &r.Delegations, true),
		common.BytesField(4, "stake_pub", &r.StakePub),
		common.BytesField(5, "payment_address", &r.PaymentAddress),
		common.UintField(6, "nonce", &r.Nonce),
		common.UintField(7, "voting_purpose", &r.VotingPurpose),
		common.KeyPathField(8, "derivation_path", &r.DerivationPath),
		common.OptionalTextField(9, "origin", &r.Origin),
	}
}

func (r *CatalystVotingRegistration) FieldCount() int { return common.FieldCount(r) }

func (r *CatalystVotingRegistration) MarshalCBOR() ([]byte, error) {
	return common.Marshal(r)
}

func (r *CatalystVotingRegistration) UnmarshalCBOR(data []byte) error {
	return common.Unmarshal(data, r)
}

// TotalWeight returns the sum of the delegation weights
func (r *CatalystVotingRegistration) TotalWeight() (uint64, error) {
	var ret uint64
	for _, d := range r.Delegations {
		if ret+d.Weight < ret {
			return 0, common.NewMalformedInputError(nil, "delegation weights overflow")
		}
		ret += d.Weight
	}
	return ret, nil
}

// PaymentAddressString returns the reward address in bech32 form, using the network
// from the address header
func (r *CatalystVotingRegistration) PaymentAddressString() (string, error) {
	if len(r.PaymentAddress) == 0 {
		return "", common.NewMalformedInputError(nil, "empty payment address")
	}
	hrp := addressHrpTestnet
	if r.PaymentAddress[0]&addressHeaderNetworkMask == addressNetworkMainnet {
		hrp = addressHrpMainnet
	}
	convData, err := bech32.ConvertBits(r.PaymentAddress, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, convData)
}

// CatalystVotingRegistrationSignature
// (cardano-catalyst-voting-registration-signature) carries the registration signature
type CatalystVotingRegistrationSignature struct {
	RequestID *common.UUID
	Signature []byte
}

func (s *CatalystVotingRegistrationSignature) RegistryType() common.RegistryType {
	return common.TypeCardanoCatalystVotingRegistrationSignature.RegistryType()
}

func (s *CatalystVotingRegistrationSignature) Fields() []common.Field {
	return []common.Field{
		common.UUIDField(1, "request_id", &s.RequestID),
		common.BytesField(2, "signature", &s.Signature),
	}
}

func (s *CatalystVotingRegistrationSignature) FieldCount() int { return common.FieldCount(s) }

func (s *CatalystVotingRegistrationSignature) MarshalCBOR() ([]byte, error) {
	return common.Marshal(s)
}

func (s *CatalystVotingRegistrationSignature) UnmarshalCBOR(data []byte) error {
	return common.Unmarshal(data, s)
}
