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
)

// Record is implemented by every registry record. Fields describes the record's map
// layout and binds each entry to the record's own storage, so a single encoder and
// decoder serve every record type
type Record interface {
	RegistryType() RegistryType
	Fields() []Field
}

// Value is anything that can be carried as an envelope payload: map records as well
// as the opaque byte-string and tag-chain types
type Value interface {
	RegistryType() RegistryType
	MarshalCBOR() ([]byte, error)
}

// DecodableValue is a Value that can be decoded from a payload in place
type DecodableValue interface {
	Value
	UnmarshalCBOR([]byte) error
}

// ValuePtr constrains a type parameter to a pointer to a DecodableValue
type ValuePtr[T any] interface {
	*T
	DecodableValue
}

// RecordPtr constrains a type parameter to a pointer to a Record implementation
type RecordPtr[T any] interface {
	*T
	Record
}

// FieldCount returns the number of key/value pairs Marshal writes for r: every
// mandatory field plus each populated optional field
func FieldCount(r Record) int {
	return countPresent(r.Fields())
}

func countPresent(fields []Field) int {
	ret := 0
	for _, f := range fields {
		if f.isPresent() {
			ret++
		}
	}
	return ret
}

// Marshal encodes r as a definite-length CBOR map
func Marshal(r Record) ([]byte, error) {
	enc := cbor.NewEncoder()
	EncodeRecord(enc, r, false)
	return enc.Bytes()
}

// MarshalIndefinite encodes r as an indefinite-length (break-terminated) CBOR map, the
// form some devices emit when streaming
func MarshalIndefinite(r Record) ([]byte, error) {
	enc := cbor.NewEncoder()
	EncodeRecord(enc, r, true)
	return enc.Bytes()
}

// EncodeRecord writes r into an encoder that may already hold other data. The record
// is not wrapped in its tag
func EncodeRecord(e *cbor.Encoder, r Record, indefinite bool) {
	fields := r.Fields()
	if indefinite {
		e.IndefiniteMap()
	} else {
		e.MapHeader(countPresent(fields))
	}
	for _, f := range fields {
		if !f.isPresent() {
			continue
		}
		e.Uint(f.Key)
		f.encode(e)
	}
	if indefinite {
		e.Break()
	}
}

// Unmarshal decodes the first CBOR data item in data into r. Bytes after that item
// are ignored
func Unmarshal(data []byte, r Record) error {
	d, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return err
	}
	return DecodeRecord(d, r)
}

// DecodeRecord reads one record map from the stream into r. Fields absent from the
// input are reset to their zero value and unknown keys are skipped. Every error is
// reported with a kind from the error taxonomy
func DecodeRecord(d *cbor.StreamDecoder, r Record) error {
	recordType := r.RegistryType()
	fields := r.Fields()
	for _, f := range fields {
		if f.reset != nil {
			f.reset()
		}
	}
	seen := make([]bool, len(fields))
	err := d.WalkMap(func(key uint64, d *cbor.StreamDecoder) error {
		for idx, f := range fields {
			if f.Key != key {
				continue
			}
			if seen[idx] {
				return NewMalformedInputError(nil, "%s has duplicate field %s", recordType.Name, f.Name)
			}
			seen[idx] = true
			if err := f.decode(d); err != nil {
				return wrapDecodeError(err, recordType.Name+" field "+f.Name)
			}
			return nil
		}
		// Unknown keys are left for the walker to skip
		return nil
	})
	if err != nil {
		return wrapDecodeError(err, recordType.Name)
	}
	for idx, f := range fields {
		if f.Required && !seen[idx] {
			return MissingFieldError{Type: recordType.Name, Field: f.Name}
		}
	}
	return nil
}

// EncodeTaggedRecord writes r wrapped in its registry tag, if it has one
func EncodeTaggedRecord(e *cbor.Encoder, r Record) {
	if t := r.RegistryType(); t.IsTagged() {
		e.Tag(t.Tag)
	}
	EncodeRecord(e, r, false)
}

// DecodeTaggedRecord reads a record wrapped in its registry tag
func DecodeTaggedRecord(d *cbor.StreamDecoder, r Record) error {
	if t := r.RegistryType(); t.IsTagged() {
		if err := d.ExpectTag(t.Tag); err != nil {
			return wrapDecodeError(err, t.Name+" tag")
		}
	}
	return DecodeRecord(d, r)
}

// MarshalByteString encodes data as a bare CBOR byte string, the payload form of the
// opaque registry types
func MarshalByteString(data []byte) ([]byte, error) {
	enc := cbor.NewEncoder()
	enc.ByteString(data)
	return enc.Bytes()
}

// UnmarshalByteString decodes a payload holding a bare CBOR byte string
func UnmarshalByteString(data []byte, what string) ([]byte, error) {
	d, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return nil, wrapDecodeError(err, what)
	}
	ret, err := d.DecodeBytes()
	if err != nil {
		return nil, wrapDecodeError(err, what)
	}
	return ret, nil
}

// WrapDecodeError places err into the error taxonomy, treating anything without a
// kind as malformed input
func WrapDecodeError(err error, what string) error {
	return wrapDecodeError(err, what)
}
