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
	"errors"
	"fmt"
)

// ErrorKind is the category of a decode or encode failure
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindMalformedInput
	ErrorKindUnexpectedType
	ErrorKindInvalidEnumValue
	ErrorKindCompression
	ErrorKindSchema
)

// Sentinel errors for each kind so callers can use errors.Is
var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrUnexpectedType   = errors.New("unexpected type")
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrCompression      = errors.New("compression error")
	ErrSchema           = errors.New("schema error")
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindMalformedInput:
		return "MalformedInput"
	case ErrorKindUnexpectedType:
		return "UnexpectedType"
	case ErrorKindInvalidEnumValue:
		return "InvalidEnumValue"
	case ErrorKindCompression:
		return "CompressionError"
	case ErrorKindSchema:
		return "SchemaError"
	default:
		return "Unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorKindMalformedInput:
		return ErrMalformedInput
	case ErrorKindUnexpectedType:
		return ErrUnexpectedType
	case ErrorKindInvalidEnumValue:
		return ErrInvalidEnumValue
	case ErrorKindCompression:
		return ErrCompression
	case ErrorKindSchema:
		return ErrSchema
	default:
		return nil
	}
}

// Error is a failure of one of the closed set of kinds, with a diagnostic message
// and an optional cause
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", e.Kind.sentinel(), e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.sentinel(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

// NewMalformedInputError returns an error for input with the wrong structure
func NewMalformedInputError(err error, format string, args ...any) error {
	return newError(ErrorKindMalformedInput, err, format, args...)
}

// NewCompressionError returns an error for a failed compression stage
func NewCompressionError(err error, format string, args ...any) error {
	return newError(ErrorKindCompression, err, format, args...)
}

// NewSchemaError returns an error for a failed schema (message) stage
func NewSchemaError(err error, format string, args ...any) error {
	return newError(ErrorKindSchema, err, format, args...)
}

// UnexpectedTypeError indicates a well-formed envelope carrying a different registry type
// than the one the caller asked for
type UnexpectedTypeError struct {
	Expected string
	Actual   string
}

func (e UnexpectedTypeError) Error() string {
	return fmt.Sprintf(
		"%s: expected %q, got %q",
		ErrUnexpectedType,
		e.Expected,
		e.Actual,
	)
}

func (UnexpectedTypeError) Is(target error) bool {
	return target == ErrUnexpectedType
}

// InvalidEnumValueError indicates a closed enumeration field holding an unrecognized value
type InvalidEnumValueError struct {
	Field string
	Value uint64
}

func (e InvalidEnumValueError) Error() string {
	return fmt.Sprintf(
		"%s: field %s has unrecognized value %d",
		ErrInvalidEnumValue,
		e.Field,
		e.Value,
	)
}

func (InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// MissingFieldError indicates a record without one of its mandatory fields
type MissingFieldError struct {
	Type  string
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf(
		"%s: %s is missing required field %s",
		ErrMalformedInput,
		e.Type,
		e.Field,
	)
}

func (MissingFieldError) Is(target error) bool {
	return target == ErrMalformedInput
}

// KindOf returns the kind of err, or ErrorKindUnknown for errors outside the taxonomy
func KindOf(err error) ErrorKind {
	for _, kind := range []ErrorKind{
		ErrorKindMalformedInput,
		ErrorKindUnexpectedType,
		ErrorKindInvalidEnumValue,
		ErrorKindCompression,
		ErrorKindSchema,
	} {
		if errors.Is(err, kind.sentinel()) {
			return kind
		}
	}
	return ErrorKindUnknown
}

// wrapDecodeError places errors coming from the CBOR layer (cbor.StructureError and
// upstream decoder errors) into the taxonomy. Errors that already carry a kind are
// returned unchanged
func wrapDecodeError(err error, what string) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != ErrorKindUnknown {
		return err
	}
	return NewMalformedInputError(err, "decode %s", what)
}
