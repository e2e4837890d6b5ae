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

// Field describes one integer-keyed entry of a record map and binds it to the storage
// of a record value. Records build their field tables with the constructors in this
// file; the table lists fields in ascending key order, which is the order they are
// written in
type Field struct {
	Key      uint64
	Name     string
	Required bool
	present  func() bool
	encode   func(*cbor.Encoder)
	decode   func(*cbor.StreamDecoder) error
	reset    func()
}

func (f Field) isPresent() bool {
	return f.Required || (f.present != nil && f.present())
}

// Enum is implemented by closed enumerations carried as unsigned integers
type Enum interface {
	~uint64
	Valid() bool
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func decodeUintAs[T unsignedInt](d *cbor.StreamDecoder, name string) (T, error) {
	v, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	maxVal := ^T(0)
	if v > uint64(maxVal) {
		return 0, NewMalformedInputError(nil, "field %s value %d out of range", name, v)
	}
	return T(v), nil
}

func decodeEnum[E Enum](d *cbor.StreamDecoder, name string) (E, error) {
	v, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	ret := E(v)
	if !ret.Valid() {
		return 0, InvalidEnumValueError{Field: name, Value: v}
	}
	return ret, nil
}

// UUIDField is an optional request identifier
func UUIDField(key uint64, name string, dst **UUID) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { encodeUUID(e, **dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeUUID(d)
			if err != nil {
				return err
			}
			*dst = &v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// RequiredUUIDField is a mandatory request identifier
func RequiredUUIDField(key uint64, name string, dst *UUID) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { encodeUUID(e, *dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeUUID(d)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = UUID{} },
	}
}

// BytesField is a mandatory byte string
func BytesField(key uint64, name string, dst *[]byte) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { e.ByteString(*dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := d.DecodeBytes()
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// OptionalBytesField is a byte string written only when dst is non-nil
func OptionalBytesField(key uint64, name string, dst *[]byte) Field {
	f := BytesField(key, name, dst)
	f.Required = false
	f.present = func() bool { return *dst != nil }
	return f
}

// TextField is a mandatory text string
func TextField(key uint64, name string, dst *string) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { e.Text(*dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := d.DecodeText()
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = "" },
	}
}

// OptionalTextField is a text string written only when dst is non-nil
func OptionalTextField(key uint64, name string, dst **string) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { e.Text(**dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := d.DecodeText()
			if err != nil {
				return err
			}
			*dst = &v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// UintField is a mandatory unsigned integer, range-checked against T on decode
func UintField[T unsignedInt](key uint64, name string, dst *T) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { e.Uint(uint64(*dst)) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeUintAs[T](d, name)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = 0 },
	}
}

// OptionalUintField is an unsigned integer written only when dst is non-nil
func OptionalUintField[T unsignedInt](key uint64, name string, dst **T) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { e.Uint(uint64(**dst)) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeUintAs[T](d, name)
			if err != nil {
				return err
			}
			*dst = &v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// IntField is a mandatory signed integer
func IntField(key uint64, name string, dst *int64) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { e.Int(*dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := d.DecodeInt()
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = 0 },
	}
}

// OptionalIntField is a signed integer written only when dst is non-nil
func OptionalIntField(key uint64, name string, dst **int64) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { e.Int(**dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := d.DecodeInt()
			if err != nil {
				return err
			}
			*dst = &v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// FlagField is a boolean that is only written when true. An absent flag decodes as false
func FlagField(key uint64, name string, dst *bool) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst },
		encode:  func(e *cbor.Encoder) { e.Bool(*dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := d.DecodeBool()
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = false },
	}
}

// EnumField is a mandatory closed enumeration. Unrecognized values fail with
// InvalidEnumValue
func EnumField[E Enum](key uint64, name string, dst *E) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { e.Uint(uint64(*dst)) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeEnum[E](d, name)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = 0 },
	}
}

// OptionalEnumField is a closed enumeration written only when dst is non-nil
func OptionalEnumField[E Enum](key uint64, name string, dst **E) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { e.Uint(uint64(**dst)) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeEnum[E](d, name)
			if err != nil {
				return err
			}
			*dst = &v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// FingerprintField is a mandatory key fingerprint
func FingerprintField(key uint64, name string, dst *Fingerprint) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { encodeFingerprint(e, *dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeFingerprint(d)
			if err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = Fingerprint{} },
	}
}

// OptionalFingerprintField is a key fingerprint written only when dst is non-nil
func OptionalFingerprintField(key uint64, name string, dst **Fingerprint) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { encodeFingerprint(e, **dst) },
		decode: func(d *cbor.StreamDecoder) error {
			v, err := decodeFingerprint(d)
			if err != nil {
				return err
			}
			*dst = &v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// RecordField is a mandatory nested record. Tagged records are wrapped in their
// registry tag
func RecordField[T any, PT RecordPtr[T]](key uint64, name string, dst *T, tagged bool) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   func(e *cbor.Encoder) { encodeNested(e, PT(dst), tagged) },
		decode:   func(d *cbor.StreamDecoder) error { return decodeNested(d, PT(dst), tagged) },
		reset:    func() { *dst = *new(T) },
	}
}

// OptionalRecordField is a nested record written only when dst is non-nil
func OptionalRecordField[T any, PT RecordPtr[T]](key uint64, name string, dst **T, tagged bool) Field {
	return Field{
		Key:     key,
		Name:    name,
		present: func() bool { return *dst != nil },
		encode:  func(e *cbor.Encoder) { encodeNested(e, PT(*dst), tagged) },
		decode: func(d *cbor.StreamDecoder) error {
			v := new(T)
			if err := decodeNested(d, PT(v), tagged); err != nil {
				return err
			}
			*dst = v
			return nil
		},
		reset: func() { *dst = nil },
	}
}

// RecordListField is a mandatory array of nested records
func RecordListField[T any, PT RecordPtr[T]](key uint64, name string, dst *[]T, tagged bool) Field {
	return ListField(
		key,
		name,
		dst,
		func(e *cbor.Encoder, item T) { encodeNested(e, PT(&item), tagged) },
		func(d *cbor.StreamDecoder) (T, error) {
			var item T
			err := decodeNested(d, PT(&item), tagged)
			return item, err
		},
	)
}

// OptionalRecordListField is an array of nested records written only when dst is non-nil
func OptionalRecordListField[T any, PT RecordPtr[T]](key uint64, name string, dst *[]T, tagged bool) Field {
	return Optional(RecordListField[T, PT](key, name, dst, tagged), func() bool { return *dst != nil })
}

// KeyPathField is a mandatory derivation path, wrapped in the crypto-keypath tag
func KeyPathField(key uint64, name string, dst *KeyPath) Field {
	return RecordField[KeyPath](key, name, dst, true)
}

// OptionalKeyPathField is a derivation path written only when dst is non-nil
func OptionalKeyPathField(key uint64, name string, dst **KeyPath) Field {
	return OptionalRecordField[KeyPath](key, name, dst, true)
}

// KeyPathListField is a mandatory array of derivation paths
func KeyPathListField(key uint64, name string, dst *[]KeyPath) Field {
	return RecordListField[KeyPath](key, name, dst, true)
}

// BytesListField is a mandatory array of byte strings
func BytesListField(key uint64, name string, dst *[][]byte) Field {
	return ListField(
		key,
		name,
		dst,
		func(e *cbor.Encoder, item []byte) { e.ByteString(item) },
		func(d *cbor.StreamDecoder) ([]byte, error) { return d.DecodeBytes() },
	)
}

// OptionalBytesListField is an array of byte strings written only when dst is non-nil
func OptionalBytesListField(key uint64, name string, dst *[][]byte) Field {
	return Optional(BytesListField(key, name, dst), func() bool { return *dst != nil })
}

// TextListField is a mandatory array of text strings
func TextListField(key uint64, name string, dst *[]string) Field {
	return ListField(
		key,
		name,
		dst,
		func(e *cbor.Encoder, item string) { e.Text(item) },
		func(d *cbor.StreamDecoder) (string, error) { return d.DecodeText() },
	)
}

// OptionalTextListField is an array of text strings written only when dst is non-nil
func OptionalTextListField(key uint64, name string, dst *[]string) Field {
	return Optional(TextListField(key, name, dst), func() bool { return *dst != nil })
}

// NewField is a mandatory field whose value is written and read by the caller. It
// serves values that are neither scalars nor map records, such as tag chains
func NewField(
	key uint64,
	name string,
	encode func(*cbor.Encoder),
	decode func(*cbor.StreamDecoder) error,
	reset func(),
) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode:   encode,
		decode:   decode,
		reset:    reset,
	}
}

// Optional turns f into an optional field written only when present returns true
func Optional(f Field, present func() bool) Field {
	f.Required = false
	f.present = present
	return f
}

// ListField is a mandatory array whose items are written and read by the given
// functions. A nil list is written as an empty array, and a decoded list is never
// nil, so nil and empty lists compare unequal after a round trip
func ListField[T any](
	key uint64,
	name string,
	dst *[]T,
	encodeItem func(*cbor.Encoder, T),
	decodeItem func(*cbor.StreamDecoder) (T, error),
) Field {
	return Field{
		Key:      key,
		Name:     name,
		Required: true,
		encode: func(e *cbor.Encoder) {
			e.ArrayHeader(len(*dst))
			for _, item := range *dst {
				encodeItem(e, item)
			}
		},
		decode: func(d *cbor.StreamDecoder) error {
			ret := []T{}
			err := d.WalkArray(func(_ int, d *cbor.StreamDecoder) error {
				item, err := decodeItem(d)
				if err != nil {
					return err
				}
				ret = append(ret, item)
				return nil
			})
			if err != nil {
				return err
			}
			*dst = ret
			return nil
		},
		reset: func() { *dst = nil },
	}
}

func encodeNested(e *cbor.Encoder, r Record, tagged bool) {
	if tagged {
		EncodeTaggedRecord(e, r)
		return
	}
	EncodeRecord(e, r, false)
}

func decodeNested(d *cbor.StreamDecoder, r Record, tagged bool) error {
	if tagged {
		return DecodeTaggedRecord(d, r)
	}
	return DecodeRecord(d, r)
}
