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

import "fmt"

// MapConsumer is called once per key of a map. It must consume exactly the value
// belonging to key. A consumer that reads nothing leaves the value to be skipped,
// which is how unknown keys are ignored.
type MapConsumer func(key uint64, d *StreamDecoder) error

// ArrayConsumer is called once per element of an array with its 0-based index. It
// follows the same consumption rules as MapConsumer.
type ArrayConsumer func(index int, d *StreamDecoder) error

// WalkMap reads a map with integer keys from the stream, calling fn for every
// key/value pair. Definite and indefinite (break-terminated) maps are handled
// identically.
func (d *StreamDecoder) WalkMap(fn MapConsumer) error {
	pairs, indef, err := d.DecodeMapHeader()
	if err != nil {
		return err
	}
	for i := 0; indef || i < pairs; i++ {
		if indef {
			if d.EOF() {
				return newStructureError(d.pos, ErrUnexpectedEnd, "indefinite map missing stop marker")
			}
			if d.PeekBreak() {
				d.pos++
				return nil
			}
		}
		keyStart := d.pos
		keyType, err := d.PeekType()
		if err != nil {
			return err
		}
		if keyType != CborTypeUint {
			return newStructureError(keyStart, nil, "map key must be an unsigned integer, got %s", MajorTypeName(keyType))
		}
		key, err := d.DecodeUint()
		if err != nil {
			return err
		}
		if err := d.consume(func() error { return fn(key, d) }); err != nil {
			return wrapItemError(err, "map key %d", key)
		}
	}
	return nil
}

// WalkArray reads an array from the stream, calling fn for every element
func (d *StreamDecoder) WalkArray(fn ArrayConsumer) error {
	items, indef, err := d.DecodeArrayHeader()
	if err != nil {
		return err
	}
	for i := 0; indef || i < items; i++ {
		if indef {
			if d.EOF() {
				return newStructureError(d.pos, ErrUnexpectedEnd, "indefinite array missing stop marker")
			}
			if d.PeekBreak() {
				d.pos++
				return nil
			}
		}
		idx := i
		if err := d.consume(func() error { return fn(idx, d) }); err != nil {
			return wrapItemError(err, "array index %d", idx)
		}
	}
	return nil
}

// consume runs fn and skips the current item if fn did not read it
func (d *StreamDecoder) consume(fn func() error) error {
	start := d.pos
	if err := fn(); err != nil {
		return err
	}
	if d.pos == start {
		if _, _, err := d.Skip(); err != nil {
			return err
		}
	}
	return nil
}

// wrapItemError adds location context to structure errors and passes other errors
// (those produced by the consumer itself) through unchanged
func wrapItemError(err error, format string, args ...any) error {
	if serr, ok := err.(*StructureError); ok {
		return &StructureError{
			Offset: serr.Offset,
			Msg:    fmt.Sprintf(format, args...) + ": " + serr.Msg,
			Err:    serr.Err,
		}
	}
	return err
}
