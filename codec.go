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

package urregistry

import (
	"context"
	"log/slog"

	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/blinklabs-io/urregistry/utils"
)

// Codec converts between envelopes and registry values. A Codec holds only its
// configuration and is safe for concurrent use
type Codec struct {
	logger           *slog.Logger
	maxPayloadSize   int
	indefiniteLength bool
}

// NewCodec returns a Codec with the specified options
func NewCodec(opts ...CodecOptionFunc) *Codec {
	c := &Codec{
		maxPayloadSize: DefaultMaxPayloadSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Decode decodes the envelope payload into dest. The envelope type name must match the
// registry type of dest, otherwise an UnexpectedTypeError is returned and the payload
// is not read
func (c *Codec) Decode(env Envelope, dest common.DecodableValue) error {
	expected := dest.RegistryType().Name
	if env.TypeName() != expected {
		err := common.UnexpectedTypeError{Expected: expected, Actual: env.TypeName()}
		c.logDecodeError(env, err)
		return err
	}
	return c.decodePayload(env, dest)
}

// DecodeAny decodes the envelope into a new value of the type it names. The result is
// a pointer to one of the record types of the registry packages
func (c *Codec) DecodeAny(env Envelope) (common.Value, error) {
	dest, ok := newValue(env.TypeName())
	if !ok {
		err := common.UnexpectedTypeError{Expected: "a registered type", Actual: env.TypeName()}
		c.logDecodeError(env, err)
		return nil, err
	}
	if err := c.decodePayload(env, dest); err != nil {
		return nil, err
	}
	return dest, nil
}

// DecodeAs decodes the envelope into a new value of type T
func DecodeAs[T any, PT common.ValuePtr[T]](c *Codec, env Envelope) (*T, error) {
	ret := new(T)
	if err := c.Decode(env, PT(ret)); err != nil {
		return nil, err
	}
	return ret, nil
}

// Encode encodes v and returns it in an envelope with its registry type name
func (c *Codec) Encode(v common.Value) (Envelope, error) {
	typeName := v.RegistryType().Name
	var payload []byte
	var err error
	if r, ok := v.(common.Record); ok && c.indefiniteLength {
		payload, err = common.MarshalIndefinite(r)
	} else {
		payload, err = v.MarshalCBOR()
	}
	if err != nil {
		c.logger.Debug(
			"failed to encode registry value",
			"type",
			typeName,
			"kind",
			common.KindOf(err).String(),
			"error",
			err,
		)
		return Envelope{}, err
	}
	// The payload is freshly allocated and not shared
	return Envelope{typeName: typeName, payload: payload}, nil
}

func (c *Codec) decodePayload(env Envelope, dest common.DecodableValue) error {
	if c.maxPayloadSize > 0 && env.Len() > c.maxPayloadSize {
		err := common.NewMalformedInputError(
			nil,
			"payload of %d bytes exceeds limit of %d bytes",
			env.Len(),
			c.maxPayloadSize,
		)
		c.logDecodeError(env, err)
		return err
	}
	if err := dest.UnmarshalCBOR(env.payload); err != nil {
		err = common.WrapDecodeError(err, env.TypeName())
		c.logDecodeError(env, err)
		return err
	}
	return nil
}

func (c *Codec) logDecodeError(env Envelope, err error) {
	if !c.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []any{
		"type",
		env.TypeName(),
		"payload_size",
		env.Len(),
		"kind",
		common.KindOf(err).String(),
		"error",
		err,
	}
	// The outline is only available when the payload is well-formed CBOR
	if common.KindOf(err) != common.ErrorKindMalformedInput {
		if dump, dumpErr := utils.DumpCbor(env.payload); dumpErr == nil {
			attrs = append(attrs, "structure", dump)
		}
	}
	c.logger.Debug("failed to decode registry value", attrs...)
}
