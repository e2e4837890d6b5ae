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
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.CoreDetEncOptions()
		cachedEncMode, cachedEncModeErr = opts.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

// Encode encodes data using core deterministic encoding (smallest integer forms,
// sorted map keys)
func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}

// Encoder builds a CBOR data item piece by piece. Collection and tag heads are
// written directly, while leaf values go through the upstream encoder. The first
// error is sticky: later calls are no-ops and Bytes reports it.
type Encoder struct {
	buf bytes.Buffer
	err error
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded data, or the first error encountered while encoding
func (e *Encoder) Bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

// Err returns the first error encountered while encoding
func (e *Encoder) Err() error {
	return e.err
}

// SetErr records err unless an earlier error was already recorded
func (e *Encoder) SetErr(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) writeHead(majorType uint8, arg uint64) {
	if e.err != nil {
		return
	}
	switch {
	case arg <= uint64(CborMaxUintSimple):
		e.buf.WriteByte(majorType | uint8(arg))
	case arg <= 0xff:
		e.buf.Write([]byte{majorType | 24, uint8(arg)})
	case arg <= 0xffff:
		e.buf.Write([]byte{majorType | 25, uint8(arg >> 8), uint8(arg)})
	case arg <= 0xffffffff:
		e.buf.Write([]byte{
			majorType | 26,
			uint8(arg >> 24), uint8(arg >> 16), uint8(arg >> 8), uint8(arg),
		})
	default:
		e.buf.Write([]byte{
			majorType | 27,
			uint8(arg >> 56), uint8(arg >> 48), uint8(arg >> 40), uint8(arg >> 32),
			uint8(arg >> 24), uint8(arg >> 16), uint8(arg >> 8), uint8(arg),
		})
	}
}

// MapHeader writes the head of a map with a declared number of key/value pairs
func (e *Encoder) MapHeader(pairs int) {
	if pairs < 0 {
		e.SetErr(errors.New("negative map length"))
		return
	}
	e.writeHead(CborTypeMap, uint64(pairs))
}

// ArrayHeader writes the head of an array with a declared number of elements
func (e *Encoder) ArrayHeader(items int) {
	if items < 0 {
		e.SetErr(errors.New("negative array length"))
		return
	}
	e.writeHead(CborTypeArray, uint64(items))
}

// IndefiniteMap starts a map that must be closed with Break
func (e *Encoder) IndefiniteMap() {
	if e.err == nil {
		e.buf.WriteByte(CborTypeMap | CborIndefinite)
	}
}

// Break writes the stop marker closing an indefinite-length item
func (e *Encoder) Break() {
	if e.err == nil {
		e.buf.WriteByte(CborBreak)
	}
}

// Tag writes a tag head. The next item written becomes the tag content
func (e *Encoder) Tag(tagNum uint64) {
	e.writeHead(CborTypeTag, tagNum)
}

// Value encodes an arbitrary value with the upstream encoder
func (e *Encoder) Value(v any) {
	if e.err != nil {
		return
	}
	em, err := getEncMode()
	if err != nil {
		e.SetErr(err)
		return
	}
	data, err := em.Marshal(v)
	if err != nil {
		e.SetErr(err)
		return
	}
	e.buf.Write(data)
}

func (e *Encoder) Uint(v uint64) { e.Value(v) }

func (e *Encoder) Int(v int64) { e.Value(v) }

func (e *Encoder) Bool(v bool) { e.Value(v) }

// ByteString writes v as a byte string. A nil slice is written as an empty byte
// string rather than null
func (e *Encoder) ByteString(v []byte) {
	if v == nil {
		v = []byte{}
	}
	e.Value(v)
}

func (e *Encoder) Text(v string) { e.Value(v) }
