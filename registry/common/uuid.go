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

import (
	"github.com/blinklabs-io/urregistry/cbor"
	"github.com/google/uuid"
)

const UUIDSize = 16

// UUID is a 16-byte request identifier. On the wire it is always a byte string
// wrapped in tag 37
type UUID [UUIDSize]byte

// NewRandomUUID returns a random (version 4) UUID
func NewRandomUUID() (UUID, error) {
	tmp, err := uuid.NewRandom()
	if err != nil {
		return UUID{}, err
	}
	return UUID(tmp), nil
}

// UUIDFromBytes returns a UUID from exactly 16 bytes
func UUIDFromBytes(data []byte) (UUID, error) {
	if len(data) != UUIDSize {
		return UUID{}, NewMalformedInputError(nil, "invalid UUID length: %d", len(data))
	}
	return UUID(data), nil
}

// ParseUUID parses the canonical text form (and the other forms accepted by
// github.com/google/uuid)
func ParseUUID(s string) (UUID, error) {
	tmp, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, NewMalformedInputError(err, "parse UUID %q", s)
	}
	return UUID(tmp), nil
}

// String returns the canonical xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

func (u UUID) Bytes() []byte {
	return u[:]
}

func (u UUID) MarshalCBOR() ([]byte, error) {
	enc := cbor.NewEncoder()
	encodeUUID(enc, u)
	return enc.Bytes()
}

func (u *UUID) UnmarshalCBOR(data []byte) error {
	d, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return err
	}
	tmp, err := decodeUUID(d)
	if err != nil {
		return wrapDecodeError(err, "UUID")
	}
	*u = tmp
	return nil
}

func encodeUUID(e *cbor.Encoder, u UUID) {
	e.Tag(cbor.CborTagUUID)
	e.ByteString(u[:])
}

func decodeUUID(d *cbor.StreamDecoder) (UUID, error) {
	if tagNum, ok := d.PeekTag(); !ok || tagNum != cbor.CborTagUUID {
		if ok {
			return UUID{}, NewMalformedInputError(nil, "UUID has tag %d, expected %d", tagNum, cbor.CborTagUUID)
		}
		return UUID{}, NewMalformedInputError(nil, "UUID is missing tag %d", cbor.CborTagUUID)
	}
	if err := d.ExpectTag(cbor.CborTagUUID); err != nil {
		return UUID{}, err
	}
	data, err := d.DecodeBytes()
	if err != nil {
		return UUID{}, err
	}
	return UUIDFromBytes(data)
}
