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

package crypto

import (
	"strings"

	"github.com/blinklabs-io/urregistry/cbor"
	"github.com/blinklabs-io/urregistry/registry/common"
)

// ScriptExpression is an output descriptor function, carried as a CBOR tag wrapping
// the key or the next expression
type ScriptExpression uint64

const (
	ScriptExpressionScriptHash           ScriptExpression = 400
	ScriptExpressionWitnessScriptHash    ScriptExpression = 401
	ScriptExpressionPublicKey            ScriptExpression = 402
	ScriptExpressionPublicKeyHash        ScriptExpression = 403
	ScriptExpressionWitnessPublicKeyHash ScriptExpression = 404
	ScriptExpressionCombo                ScriptExpression = 405
	ScriptExpressionMultisig             ScriptExpression = 406
	ScriptExpressionSortedMultisig       ScriptExpression = 407
	ScriptExpressionAddress              ScriptExpression = 408
	ScriptExpressionRawScript            ScriptExpression = 409
	ScriptExpressionTaproot              ScriptExpression = 410
)

var scriptExpressionNames = map[ScriptExpression]string{
	ScriptExpressionScriptHash:           "sh",
	ScriptExpressionWitnessScriptHash:    "wsh",
	ScriptExpressionPublicKey:            "pk",
	ScriptExpressionPublicKeyHash:        "pkh",
	ScriptExpressionWitnessPublicKeyHash: "wpkh",
	ScriptExpressionCombo:                "combo",
	ScriptExpressionMultisig:             "multi",
	ScriptExpressionSortedMultisig:       "sortedmulti",
	ScriptExpressionAddress:              "addr",
	ScriptExpressionRawScript:            "raw",
	ScriptExpressionTaproot:              "tr",
}

// Valid reports whether the expression is supported. Multisig expressions carry a
// threshold map rather than a single key and are not supported
func (s ScriptExpression) Valid() bool {
	_, ok := scriptExpressionNames[s]
	return ok && !s.isMultisig()
}

func (s ScriptExpression) isMultisig() bool {
	return s == ScriptExpressionMultisig || s == ScriptExpressionSortedMultisig
}

func (s ScriptExpression) String() string {
	if name, ok := scriptExpressionNames[s]; ok {
		return name
	}
	return "unknown"
}

// Output (crypto-output) is an output descriptor: a chain of script expressions
// (outermost first) around a single HD or EC key
type Output struct {
	Expressions []ScriptExpression
	HDKey       *HDKey
	ECKey       *ECKey
}

func (o *Output) RegistryType() common.RegistryType {
	return common.TypeCryptoOutput.RegistryType()
}

func (o *Output) MarshalCBOR() ([]byte, error) {
	enc := cbor.NewEncoder()
	o.encode(enc)
	return enc.Bytes()
}

func (o *Output) UnmarshalCBOR(data []byte) error {
	d, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return err
	}
	return common.WrapDecodeError(o.decode(d), o.RegistryType().Name)
}

// Descriptor returns the expression chain in descriptor notation with a placeholder
// for the key, such as sh(wpkh(KEY))
func (o *Output) Descriptor() string {
	var sb strings.Builder
	for _, expr := range o.Expressions {
		sb.WriteString(expr.String())
		sb.WriteString("(")
	}
	sb.WriteString("KEY")
	sb.WriteString(strings.Repeat(")", len(o.Expressions)))
	return sb.String()
}

func (o *Output) encode(e *cbor.Encoder) {
	for _, expr := range o.Expressions {
		if !expr.Valid() {
			e.SetErr(common.NewMalformedInputError(nil, "unsupported script expression %d", uint64(expr)))
			return
		}
		e.Tag(uint64(expr))
	}
	switch {
	case o.HDKey != nil && o.ECKey != nil:
		e.SetErr(common.NewMalformedInputError(nil, "output has both an HD key and an EC key"))
	case o.HDKey != nil:
		common.EncodeTaggedRecord(e, o.HDKey)
	case o.ECKey != nil:
		common.EncodeTaggedRecord(e, o.ECKey)
	default:
		e.SetErr(common.NewMalformedInputError(nil, "output has no key"))
	}
}

func (o *Output) decode(d *cbor.StreamDecoder) error {
	*o = Output{}
	for {
		tagNum, ok := d.PeekTag()
		if !ok {
			return common.NewMalformedInputError(nil, "output has no key")
		}
		switch tagNum {
		case common.TypeCryptoHDKey.Tag():
			o.HDKey = &HDKey{}
			return common.DecodeTaggedRecord(d, o.HDKey)
		case common.TypeCryptoECKey.Tag():
			o.ECKey = &ECKey{}
			return common.DecodeTaggedRecord(d, o.ECKey)
		}
		expr := ScriptExpression(tagNum)
		if !expr.Valid() {
			return common.NewMalformedInputError(nil, "unsupported script expression %d", tagNum)
		}
		if _, err := d.DecodeTag(); err != nil {
			return err
		}
		o.Expressions = append(o.Expressions, expr)
	}
}

// OutputListField is a mandatory array of crypto-output tagged descriptors
func OutputListField(key uint64, name string, dst *[]Output) common.Field {
	return common.ListField(
		key,
		name,
		dst,
		func(e *cbor.Encoder, item Output) {
			e.Tag(common.TypeCryptoOutput.Tag())
			item.encode(e)
		},
		func(d *cbor.StreamDecoder) (Output, error) {
			var item Output
			if err := d.ExpectTag(common.TypeCryptoOutput.Tag()); err != nil {
				return item, err
			}
			err := item.decode(d)
			return item, err
		},
	)
}
