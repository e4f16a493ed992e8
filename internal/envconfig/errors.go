// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Field error codes.
const (
	// CodeMissing means a required field had no matching selector.
	CodeMissing = "missing"
	// CodeInvalidType means the raw value could not be converted into the
	// field's declared type.
	CodeInvalidType = "invalid_type"
	// CodeInvalid covers decoder failures that are neither of the above
	// (e.g. a field type the decoder has no parser for).
	CodeInvalid = "invalid"
)

var (
	// ErrMissingField matches a [*DecodeError] with at least one missing field.
	ErrMissingField = errors.New("required field is not set")

	// ErrInvalidValue matches a [*DecodeError] with at least one field whose
	// value could not be converted.
	ErrInvalidValue = errors.New("invalid field value")

	// ErrInvalidPort is returned when a port value is not a decimal number.
	ErrInvalidPort = errors.New("port is not a number")

	// ErrPortOutOfRange is returned when a port value does not fit into 16 bits.
	ErrPortOutOfRange = errors.New("port is out of range 0-65535")

	// ErrInvalidTarget is returned by [Bind] when the target is not a non-nil
	// pointer to a struct.
	ErrInvalidTarget = errors.New("bind target must be a non-nil pointer to a struct")
)

// FieldError describes why one field of a record could not be decoded.
type FieldError struct {
	Field string // Declared field name in snake case (e.g. "database_name")
	Key   string // Full environment key (e.g. "DB_DATABASE_NAME")
	Code  string // One of CodeMissing, CodeInvalidType, CodeInvalid
	Value string // Raw value, set for CodeInvalidType only
	Type  string // Target Go type, set for CodeInvalidType only
	Err   error  // Underlying decoder error
}

func (fe FieldError) Error() string {
	switch fe.Code {
	case CodeMissing:
		return fmt.Sprintf("%s: %s (%s is not set)", fe.Field, fe.Code, fe.Key)
	case CodeInvalidType:
		return fmt.Sprintf("%s: %s (%s=%q cannot be converted to %s: %v)", fe.Field, fe.Code, fe.Key, fe.Value, fe.Type, fe.Err)
	default:
		return fmt.Sprintf("%s: %s (%v)", fe.Field, fe.Code, fe.Err)
	}
}

func (fe FieldError) Unwrap() error {
	return fe.Err
}

// DecodeError aggregates the field failures of one sub-configuration.
type DecodeError struct {
	Prefix string
	Fields []FieldError
}

// Error formats the failure as a multi-line message, one line per field.
func (e *DecodeError) Error() string {
	var b strings.Builder
	if len(e.Fields) == 1 {
		fmt.Fprintf(&b, "decode %q config: 1 error", e.Prefix)
	} else {
		fmt.Fprintf(&b, "decode %q config: %d errors", e.Prefix, len(e.Fields))
	}

	for _, fe := range e.Fields {
		b.WriteString("\n  - ")
		b.WriteString(fe.Error())
	}

	return b.String()
}

// Is reports whether any field failure matches the sentinel target.
func (e *DecodeError) Is(target error) bool {
	var code string
	switch target {
	case ErrMissingField:
		code = CodeMissing
	case ErrInvalidValue:
		code = CodeInvalidType
	default:
		return false
	}

	for _, fe := range e.Fields {
		if fe.Code == code {
			return true
		}
	}

	return false
}

// Unwrap exposes the field failures to errors.Is and errors.As.
func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, fe := range e.Fields {
		errs = append(errs, fe)
	}

	return errs
}

// Field returns the failure recorded for the named field.
func (e *DecodeError) Field(name string) (FieldError, bool) {
	for _, fe := range e.Fields {
		if fe.Field == name {
			return fe, true
		}
	}

	return FieldError{}, false
}
