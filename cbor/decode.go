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
	"bytes"
	"errors"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			// Records are keyed by integers and may repeat nothing
			DupMapKey: _cbor.DupMapKeyEnforcedAPF,
			// This defaults to 32, which is plenty for registry records, but nested
			// account bundles from some wallets go deeper
			MaxNestedLevels: 64,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes the first CBOR data item in dataBytes into dest and returns the
// number of bytes read. Trailing data is left untouched
func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// StreamDecoder provides sequential CBOR decoding with position tracking.
// Collection heads and tags are parsed in place so that the items inside a
// map or array can be consumed one at a time; leaf values are handed to the
// upstream decoder.
type StreamDecoder struct {
	decMode _cbor.DecMode
	data    []byte
	pos     int
}

// NewStreamDecoder creates a decoder for sequential CBOR item extraction with position tracking.
func NewStreamDecoder(data []byte) (*StreamDecoder, error) {
	decMode, err := getDecMode()
	if err != nil {
		return nil, err
	}
	if decMode == nil {
		return nil, errors.New("CBOR decoder mode not initialized")
	}
	return &StreamDecoder{
		decMode: decMode,
		data:    data,
	}, nil
}

// Position returns the current byte position in the stream.
func (d *StreamDecoder) Position() int {
	return d.pos
}

// EOF returns true if the decoder has reached the end of the data.
func (d *StreamDecoder) EOF() bool {
	return d.pos >= len(d.data)
}

// Advance moves the decoder position forward by n bytes without decoding.
// Returns an error if n would advance past the end of data.
func (d *StreamDecoder) Advance(n int) error {
	if n < 0 {
		return errors.New("cannot advance by negative amount")
	}
	if n > len(d.data)-d.pos {
		return newStructureError(d.pos, ErrUnexpectedEnd, "advance would exceed data bounds")
	}
	d.pos += n
	return nil
}

// PeekType returns the major type of the next data item without consuming it
func (d *StreamDecoder) PeekType() (uint8, error) {
	if d.EOF() {
		return 0, newStructureError(d.pos, ErrUnexpectedEnd, "expected data item")
	}
	return d.data[d.pos] & CborTypeMask, nil
}

// PeekBreak reports whether the next byte is the stop marker of an indefinite-length item
func (d *StreamDecoder) PeekBreak() bool {
	return !d.EOF() && d.data[d.pos] == CborBreak
}

// PeekBool reports whether the next data item is a boolean
func (d *StreamDecoder) PeekBool() bool {
	if d.EOF() {
		return false
	}
	b := d.data[d.pos]
	return b == CborSimpleFalse || b == CborSimpleTrue
}

// PeekTag returns the number of the tag at the current position, if there is one.
// The position is not changed
func (d *StreamDecoder) PeekTag() (uint64, bool) {
	major, arg, indef, _, err := readHead(d.data, d.pos)
	if err != nil || major != CborTypeTag || indef {
		return 0, false
	}
	return arg, true
}

// Decode decodes the next CBOR item into dest and returns its byte range.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Decode(dest any) (int, int, error) {
	start := d.pos
	if d.EOF() {
		return 0, 0, newStructureError(start, ErrUnexpectedEnd, "expected data item")
	}
	rest, err := d.decMode.UnmarshalFirst(d.data[d.pos:], dest)
	if err != nil {
		return 0, 0, newStructureError(start, err, "decode item")
	}
	d.pos = len(d.data) - len(rest)
	return start, d.pos - start, nil
}

// Skip skips the next CBOR item and returns its byte range.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Skip() (int, int, error) {
	var tmp RawMessage
	return d.Decode(&tmp)
}

// DecodeArrayHeader decodes a CBOR array header and returns the number of elements.
// This advances the position past the header only, not the array contents. The
// returned length is meaningless when indefinite is true; the caller must read
// items until PeekBreak reports the stop marker.
// Returns (arrayLength, indefinite, error).
func (d *StreamDecoder) DecodeArrayHeader() (int, bool, error) {
	return d.decodeCollectionHeader(CborTypeArray, 1)
}

// DecodeMapHeader decodes a CBOR map header and returns the number of key-value pairs.
// This advances the position past the header only, not the map contents.
// Returns (mapLength, indefinite, error).
func (d *StreamDecoder) DecodeMapHeader() (int, bool, error) {
	return d.decodeCollectionHeader(CborTypeMap, 2)
}

func (d *StreamDecoder) decodeCollectionHeader(
	expectedType uint8,
	minItemSize int,
) (int, bool, error) {
	start := d.pos
	major, arg, indef, headLen, err := readHead(d.data, d.pos)
	if err != nil {
		return 0, false, err
	}
	if major != expectedType {
		return 0, false, newStructureError(
			start,
			nil,
			"expected %s, got %s",
			MajorTypeName(expectedType),
			MajorTypeName(major),
		)
	}
	d.pos += headLen
	if indef {
		return 0, true, nil
	}
	// Every item occupies at least one byte, so a declared length that cannot fit
	// in the remaining data is rejected before anything is allocated for it
	remaining := uint64(len(d.data) - d.pos)
	if arg > uint64(math.MaxInt32) || arg*uint64(minItemSize) > remaining {
		d.pos = start
		return 0, false, newStructureError(
			start,
			ErrUnexpectedEnd,
			"declared %s length %d exceeds available data",
			MajorTypeName(expectedType),
			arg,
		)
	}
	return int(arg), false, nil
}

// DecodeTag consumes a tag head and returns the tag number. The tagged content is
// left in place for the caller
func (d *StreamDecoder) DecodeTag() (uint64, error) {
	start := d.pos
	major, arg, indef, headLen, err := readHead(d.data, d.pos)
	if err != nil {
		return 0, err
	}
	if major != CborTypeTag || indef {
		return 0, newStructureError(start, nil, "expected tag, got %s", MajorTypeName(major))
	}
	d.pos += headLen
	return arg, nil
}

// ExpectTag consumes a tag head and verifies that it carries the given number
func (d *StreamDecoder) ExpectTag(tagNum uint64) error {
	start := d.pos
	num, err := d.DecodeTag()
	if err != nil {
		return err
	}
	if num != tagNum {
		d.pos = start
		return newStructureError(start, nil, "expected tag %d, got tag %d", tagNum, num)
	}
	return nil
}

func (d *StreamDecoder) expectType(majorType uint8) error {
	actual, err := d.PeekType()
	if err != nil {
		return err
	}
	if actual != majorType {
		return newStructureError(
			d.pos,
			nil,
			"expected %s, got %s",
			MajorTypeName(majorType),
			MajorTypeName(actual),
		)
	}
	return nil
}

// DecodeUint decodes the next item as an unsigned integer
func (d *StreamDecoder) DecodeUint() (uint64, error) {
	if err := d.expectType(CborTypeUint); err != nil {
		return 0, err
	}
	var ret uint64
	if _, _, err := d.Decode(&ret); err != nil {
		return 0, err
	}
	return ret, nil
}

// DecodeInt decodes the next item as a signed integer that fits in an int64
func (d *StreamDecoder) DecodeInt() (int64, error) {
	majorType, err := d.PeekType()
	if err != nil {
		return 0, err
	}
	if majorType != CborTypeUint && majorType != CborTypeNegInt {
		return 0, newStructureError(d.pos, nil, "expected integer, got %s", MajorTypeName(majorType))
	}
	var ret int64
	if _, _, err := d.Decode(&ret); err != nil {
		return 0, err
	}
	return ret, nil
}

// DecodeBytes decodes the next item as a byte string. The returned slice never
// aliases the input
func (d *StreamDecoder) DecodeBytes() ([]byte, error) {
	if err := d.expectType(CborTypeByteString); err != nil {
		return nil, err
	}
	ret := []byte{}
	if _, _, err := d.Decode(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// DecodeText decodes the next item as a UTF-8 text string
func (d *StreamDecoder) DecodeText() (string, error) {
	if err := d.expectType(CborTypeTextString); err != nil {
		return "", err
	}
	var ret string
	if _, _, err := d.Decode(&ret); err != nil {
		return "", err
	}
	return ret, nil
}

// DecodeBool decodes the next item as a boolean
func (d *StreamDecoder) DecodeBool() (bool, error) {
	if !d.PeekBool() {
		if d.EOF() {
			return false, newStructureError(d.pos, ErrUnexpectedEnd, "expected boolean")
		}
		return false, newStructureError(d.pos, nil, "expected boolean, got %s", MajorTypeName(d.data[d.pos]))
	}
	var ret bool
	if _, _, err := d.Decode(&ret); err != nil {
		return false, err
	}
	return ret, nil
}

// readHead parses the data item head at offset and returns its major type, argument,
// whether it is indefinite-length, and the head length in bytes
func readHead(data []byte, offset int) (uint8, uint64, bool, int, error) {
	if offset >= len(data) {
		return 0, 0, false, 0, newStructureError(offset, ErrUnexpectedEnd, "expected data item head")
	}
	firstByte := data[offset]
	majorType := firstByte & CborTypeMask
	additionalInfo := firstByte & 0x1f
	switch {
	case additionalInfo <= CborMaxUintSimple:
		return majorType, uint64(additionalInfo), false, 1, nil
	case additionalInfo <= 27:
		// 1, 2, 4 or 8 byte big-endian argument follows
		argLen := 1 << (additionalInfo - 24)
		if offset+1+argLen > len(data) {
			return 0, 0, false, 0, newStructureError(offset, ErrUnexpectedEnd, "truncated data item head")
		}
		var arg uint64
		for _, b := range data[offset+1 : offset+1+argLen] {
			arg = arg<<8 | uint64(b)
		}
		return majorType, arg, false, 1 + argLen, nil
	case additionalInfo == CborIndefinite:
		switch majorType {
		case CborTypeByteString, CborTypeTextString, CborTypeArray, CborTypeMap:
			return majorType, 0, true, 1, nil
		}
		return 0, 0, false, 0, newStructureError(
			offset,
			nil,
			"indefinite length not allowed for %s",
			MajorTypeName(majorType),
		)
	default:
		return 0, 0, false, 0, newStructureError(offset, nil, "invalid additional info: %d", additionalInfo)
	}
}
