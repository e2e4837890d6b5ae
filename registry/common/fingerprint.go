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
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/blinklabs-io/urregistry/cbor"
	"github.com/btcsuite/btcd/btcutil"
)

const FingerprintSize = 4

// Fingerprint is the first 4 bytes of HASH160 of a public key. It is carried on the
// wire as an unsigned integer in big-endian byte order
type Fingerprint [FingerprintSize]byte

func NewFingerprint(v uint32) Fingerprint {
	var ret Fingerprint
	binary.BigEndian.PutUint32(ret[:], v)
	return ret
}

// FingerprintFromBytes returns a Fingerprint from exactly 4 bytes
func FingerprintFromBytes(data []byte) (Fingerprint, error) {
	if len(data) != FingerprintSize {
		return Fingerprint{}, NewMalformedInputError(nil, "invalid fingerprint length: %d", len(data))
	}
	return Fingerprint(data), nil
}

// FingerprintFromPublicKey computes the BIP32 fingerprint of a serialized public key
func FingerprintFromPublicKey(pubKey []byte) Fingerprint {
	return Fingerprint(btcutil.Hash160(pubKey)[:FingerprintSize])
}

func (f Fingerprint) Uint32() uint32 {
	return binary.BigEndian.Uint32(f[:])
}

func (f Fingerprint) Bytes() []byte {
	return f[:]
}

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

func encodeFingerprint(e *cbor.Encoder, f Fingerprint) {
	e.Uint(uint64(f.Uint32()))
}

func decodeFingerprint(d *cbor.StreamDecoder) (Fingerprint, error) {
	v, err := d.DecodeUint()
	if err != nil {
		return Fingerprint{}, err
	}
	if v > math.MaxUint32 {
		return Fingerprint{}, NewMalformedInputError(nil, "fingerprint value %d exceeds 32 bits", v)
	}
	return NewFingerprint(uint32(v)), nil
}
