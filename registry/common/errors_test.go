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

package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blinklabs-io/urregistry/registry/common"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		kind common.ErrorKind
	}{
		{
			err:  common.NewMalformedInputError(nil, "bad"),
			kind: common.ErrorKindMalformedInput,
		},
		{
			err:  common.NewCompressionError(errors.New("inflate"), "bad"),
			kind: common.ErrorKindCompression,
		},
		{
			err:  common.NewSchemaError(nil, "bad"),
			kind: common.ErrorKindSchema,
		},
		{
			err:  common.UnexpectedTypeError{Expected: "eth-signature", Actual: "sol-signature"},
			kind: common.ErrorKindUnexpectedType,
		},
		{
			err:  common.InvalidEnumValueError{Field: "data_type", Value: 9},
			kind: common.ErrorKindInvalidEnumValue,
		},
		{
			err:  common.MissingFieldError{Type: "eth-signature", Field: "signature"},
			kind: common.ErrorKindMalformedInput,
		},
		{
			err:  fmt.Errorf("outer: %w", common.InvalidEnumValueError{Field: "sign_type", Value: 0}),
			kind: common.ErrorKindInvalidEnumValue,
		},
		{
			err:  errors.New("something else"),
			kind: common.ErrorKindUnknown,
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.kind, common.KindOf(test.err), test.err.Error())
	}
}

func TestErrorMessages(t *testing.T) {
	err := common.NewCompressionError(errors.New("unexpected EOF"), "inflate %s", "bundle")
	assert.Equal(t, "compression error: inflate bundle: unexpected EOF", err.Error())
	assert.NotErrorIs(t, err, common.ErrMalformedInput)
	err = common.UnexpectedTypeError{Expected: "eth-signature", Actual: "sol-signature"}
	assert.Equal(t, "unexpected type: expected \"eth-signature\", got \"sol-signature\"", err.Error())
	assert.Equal(t, "InvalidEnumValue", common.ErrorKindInvalidEnumValue.String())
}
