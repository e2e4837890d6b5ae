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

package cbor

import (
	"errors"
	"fmt"

	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeUint        uint8 = 0x00
	CborTypeNegInt      uint8 = 0x20
	CborTypeByteString  uint8 = 0x40
	CborTypeTextString  uint8 = 0x60
	CborTypeArray       uint8 = 0x80
	CborTypeMap         uint8 = 0xa0
	CborTypeTag         uint8 = 0xc0
	CborTypeSimpleFloat uint8 = 0xe0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Max value able to be stored in a single byte without type prefix
	CborMaxUintSimple uint8 = 0x17

	// Additional info value signalling an indefinite-length item
	CborIndefinite uint8 = 0x1f

	// Stop marker terminating an indefinite-length item
	CborBreak uint8 = 0xff

	CborSimpleFalse uint8 = 0xf4
	CborSimpleTrue  uint8 = 0xf5
)

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Alias for Tag for convenience
type Tag = _cbor.Tag

// ErrUnexpectedEnd is returned when the input ends in the middle of a data item
var ErrUnexpectedEnd = errors.New("unexpected end of CBOR data")

// StructureError describes CBOR input that is well-formed at the byte level but does
// not have the shape the caller asked for, or is not well-formed at all
type StructureError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *StructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("CBOR structure error at offset %d: %s: %s", e.Offset, e.Msg, e.Err)
	}
	return fmt.Sprintf("CBOR structure error at offset %d: %s", e.Offset, e.Msg)
}

func (e *StructureError) Unwrap() error { return e.Err }

func newStructureError(offset int, err error, format string, args ...any) *StructureError {
	return &StructureError{
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
		Err:    err,
	}
}

// MajorTypeName returns a human readable name for a CBOR major type
func MajorTypeName(majorType uint8) string {
	switch majorType & CborTypeMask {
	case CborTypeUint:
		return "unsigned integer"
	case CborTypeNegInt:
		return "negative integer"
	case CborTypeByteString:
		return "byte string"
	case CborTypeTextString:
		return "text string"
	case CborTypeArray:
		return "array"
	case CborTypeMap:
		return "map"
	case CborTypeTag:
		return "tag"
	default:
		return "simple/float"
	}
}
