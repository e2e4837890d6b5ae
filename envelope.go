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

// Package urregistry encodes and decodes the records of the UR registry, the typed
// CBOR payloads exchanged between hardware wallets and the applications that drive
// them.
//
// A payload travels in an Envelope together with its registry type name. A Codec
// checks the type name before decoding the payload into the requested record
// type, and produces envelopes from records when encoding.
package urregistry

import (
	"github.com/blinklabs-io/urregistry/registry/common"
)

// Envelope is an immutable pairing of a registry type name and the CBOR payload of a
// value of that type
type Envelope struct {
	typeName string
	payload  []byte
}

// NewEnvelope returns an envelope holding a copy of payload
func NewEnvelope(typeName string, payload []byte) Envelope {
	return Envelope{
		typeName: typeName,
		payload:  append([]byte(nil), payload...),
	}
}

// TypeName returns the registry type name, such as eth-sign-request
func (e Envelope) TypeName() string {
	return e.typeName
}

// Payload returns a copy of the CBOR payload
func (e Envelope) Payload() []byte {
	return append([]byte(nil), e.payload...)
}

// Len returns the payload size in bytes
func (e Envelope) Len() int {
	return len(e.payload)
}

// RegistryType returns the registry type named by the envelope, if it is known
func (e Envelope) RegistryType() (common.RegistryType, bool) {
	return common.LookupRegistryType(e.typeName)
}
