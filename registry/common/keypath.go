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
	"math"

	"github.com/blinklabs-io/urregistry/cbor"
	"github.com/jinzhu/copier"
)

const (
	// HardenedOffset is added to an index to mark it hardened in the offset form
	HardenedOffset uint32 = 0x80000000

	// MaxPathIndex is the largest index a path component can hold
	MaxPathIndex uint32 = HardenedOffset - 1
)

// Field keys for crypto-keypath
const (
	keyPathKeyComponents        = 1
	keyPathKeySourceFingerprint = 2
	keyPathKeyDepth             = 3
	keyPathKeyName              = 4
)

// PathComponent is one derivation step. A wildcard component has no index and
// cannot be hardened
type PathComponent struct {
	Index    uint32
	Hardened bool
	Wildcard bool
}

// NewPathComponent returns a component with the given index, which must fit in 31 bits
func NewPathComponent(index uint32, hardened bool) (PathComponent, error) {
	ret := PathComponent{Index: index, Hardened: hardened}
	if err := ret.Validate(); err != nil {
		return PathComponent{}, err
	}
	return ret, nil
}

// WildcardComponent returns a component matching any non-hardened index
func WildcardComponent() PathComponent {
	return PathComponent{Wildcard: true}
}

func (c PathComponent) Validate() error {
	if c.Wildcard {
		if c.Hardened {
			return NewMalformedInputError(nil, "wildcard path component cannot be hardened")
		}
		if c.Index != 0 {
			return NewMalformedInputError(nil, "wildcard path component cannot have an index")
		}
		return nil
	}
	if c.Index > MaxPathIndex {
		return NewMalformedInputError(nil, "path index %d exceeds 31 bits", c.Index)
	}
	return nil
}

// ChildNumber returns the BIP32 child number, with the hardened offset applied
func (c PathComponent) ChildNumber() uint32 {
	if c.Hardened {
		return c.Index + HardenedOffset
	}
	return c.Index
}

// KeyPath is a BIP32 derivation path (crypto-keypath). Components are ordered from the
// root toward the leaf. Depth may exceed the number of components when the path is
// the known suffix of a deeper derivation. Nil Components are written as an empty
// array and decode as an empty, non-nil slice
type KeyPath struct {
	Components        []PathComponent
	SourceFingerprint *Fingerprint
	Depth             *uint8
	Name              *string
}

func (p *KeyPath) RegistryType() RegistryType {
	return TypeCryptoKeypath.RegistryType()
}

func (p *KeyPath) Fields() []Field {
	return []Field{
		{
			Key:      keyPathKeyComponents,
			Name:     "components",
			Required: true,
			encode:   func(e *cbor.Encoder) { encodePathComponents(e, p.Components) },
			decode: func(d *cbor.StreamDecoder) error {
				components, err := decodePathComponents(d)
				if err != nil {
					return err
				}
				p.Components = components
				return nil
			},
			reset: func() { p.Components = nil },
		},
		OptionalFingerprintField(keyPathKeySourceFingerprint, "source_fingerprint", &p.SourceFingerprint),
		OptionalUintField(keyPathKeyDepth, "depth", &p.Depth),
		OptionalTextField(keyPathKeyName, "name", &p.Name),
	}
}

func (p *KeyPath) FieldCount() int { return FieldCount(p) }

func (p KeyPath) MarshalCBOR() ([]byte, error) { return Marshal(&p) }

func (p *KeyPath) UnmarshalCBOR(data []byte) error { return Unmarshal(data, p) }

// Clone returns a deep copy of the path
func (p KeyPath) Clone() KeyPath {
	var ret KeyPath
	// Copying between two values of the same plain struct type cannot fail
	_ = copier.CopyWithOption(&ret, &p, copier.Option{DeepCopy: true})
	return ret
}

// WithSourceFingerprint returns a copy of the path carrying the given source fingerprint,
// regardless of how the path was obtained
func (p KeyPath) WithSourceFingerprint(fp Fingerprint) KeyPath {
	ret := p.Clone()
	ret.SourceFingerprint = &fp
	return ret
}

// Validate checks every component
func (p KeyPath) Validate() error {
	for _, c := range p.Components {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Components are written as a flat array of [index, hardened] pairs, with an empty
// array standing in for the index of a wildcard
func encodePathComponents(e *cbor.Encoder, components []PathComponent) {
	e.ArrayHeader(len(components) * 2)
	for _, c := range components {
		if err := c.Validate(); err != nil {
			e.SetErr(err)
			return
		}
		if c.Wildcard {
			e.ArrayHeader(0)
		} else {
			e.Uint(uint64(c.Index))
		}
		e.Bool(c.Hardened)
	}
}

// decodePathComponents accepts both hardening forms: an explicit boolean following the
// index, and an index carrying the hardened offset (with or without a boolean)
func decodePathComponents(d *cbor.StreamDecoder) ([]PathComponent, error) {
	ret := []PathComponent{}
	var pending *PathComponent
	flush := func() {
		if pending != nil {
			ret = append(ret, *pending)
			pending = nil
		}
	}
	err := d.WalkArray(func(idx int, d *cbor.StreamDecoder) error {
		if d.PeekBool() {
			if pending == nil {
				return NewMalformedInputError(nil, "path element %d: hardened flag without an index", idx)
			}
			hardened, err := d.DecodeBool()
			if err != nil {
				return err
			}
			if hardened && pending.Wildcard {
				return NewMalformedInputError(nil, "path element %d: wildcard component cannot be hardened", idx)
			}
			pending.Hardened = pending.Hardened || hardened
			flush()
			return nil
		}
		flush()
		majorType, err := d.PeekType()
		if err != nil {
			return err
		}
		switch majorType {
		case cbor.CborTypeUint:
			v, err := d.DecodeUint()
			if err != nil {
				return err
			}
			if v > math.MaxUint32 {
				return NewMalformedInputError(nil, "path element %d: index %d exceeds 32 bits", idx, v)
			}
			c := PathComponent{Index: uint32(v)}
			if c.Index >= HardenedOffset {
				c.Index -= HardenedOffset
				c.Hardened = true
			}
			pending = &c
		case cbor.CborTypeArray:
			items, indef, err := d.DecodeArrayHeader()
			if err != nil {
				return err
			}
			if indef {
				if !d.PeekBreak() {
					return NewMalformedInputError(nil, "path element %d: index ranges are not supported", idx)
				}
				if err := d.Advance(1); err != nil {
					return err
				}
			} else if items != 0 {
				return NewMalformedInputError(nil, "path element %d: index ranges are not supported", idx)
			}
			pending = &PathComponent{Wildcard: true}
		default:
			return NewMalformedInputError(nil, "path element %d: unexpected %s", idx, cbor.MajorTypeName(majorType))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	flush()
	return ret, nil
}
