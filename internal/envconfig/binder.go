// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Bind decodes the pairs that belong to prefix into target, which must be a
// non-nil pointer to a struct whose fields carry `env` tags.
//
// Keys are matched against prefix case-sensitively, the prefix is stripped
// and the rest is used as the selector for the field with the same `env`
// tag. Fields without `envDefault` are required. Selectors that match no
// field are ignored. A selector set to "" on a field decoded through
// encoding.TextUnmarshaler (such as [Port]) is still converted, so an empty
// port is a conversion failure rather than port 0.
//
// On failure target may be partially written and the returned error is a
// [*DecodeError] listing every field that could not be decoded. Callers that
// need all-or-nothing semantics should decode into a temporary value, as
// [BindAs] and [Compose] do.
func Bind(prefix string, pairs Pairs, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	selectors := pairs.Scope(prefix)
	record := rv.Elem().Type()
	emptyErrs := emptyValueErrors(prefix, selectors, record)

	err := env.ParseWithOptions(target, env.Options{
		Environment:     selectors,
		RequiredIfNoDef: true,
	})
	if err == nil && len(emptyErrs) == 0 {
		return nil
	}

	decodeErr := &DecodeError{Prefix: prefix}
	if err != nil {
		decodeErr = newDecodeError(prefix, selectors, record, err)
	}
	decodeErr.Fields = append(decodeErr.Fields, emptyErrs...)
	sortByDeclaration(decodeErr.Fields, record)

	return decodeErr
}

// BindAs is the generic form of [Bind]. It returns the zero value of T when
// decoding fails.
func BindAs[T any](prefix string, pairs Pairs) (T, error) {
	var record T
	if err := Bind(prefix, pairs, &record); err != nil {
		var zero T
		return zero, err
	}

	return record, nil
}

func newDecodeError(prefix string, selectors map[string]string, record reflect.Type, err error) *DecodeError {
	causes := []error{err}
	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		causes = aggErr.Errors
	}

	keys := selectorKeys(record)
	decodeErr := &DecodeError{Prefix: prefix}
	for _, cause := range causes {
		decodeErr.Fields = append(decodeErr.Fields, newFieldError(prefix, selectors, keys, cause))
	}

	return decodeErr
}

func newFieldError(prefix string, selectors, keys map[string]string, cause error) FieldError {
	var notSetErr env.VarIsNotSetError
	var parseErr env.ParseError
	var noParserErr env.NoParserError

	switch {
	case errors.As(cause, &notSetErr):
		return FieldError{
			Field: fieldName(notSetErr.Key),
			Key:   prefix + notSetErr.Key,
			Code:  CodeMissing,
			Err:   cause,
		}
	case errors.As(cause, &parseErr):
		selector := selectorFor(keys, parseErr.Name)
		return FieldError{
			Field: fieldName(selector),
			Key:   prefix + selector,
			Code:  CodeInvalidType,
			Value: selectors[selector],
			Type:  parseErr.Type.String(),
			Err:   parseErr.Err,
		}
	case errors.As(cause, &noParserErr):
		selector := selectorFor(keys, noParserErr.Name)
		return FieldError{
			Field: fieldName(selector),
			Key:   prefix + selector,
			Code:  CodeInvalid,
			Err:   cause,
		}
	default:
		return FieldError{Code: CodeInvalid, Err: cause}
	}
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// emptyValueErrors converts the fields whose selector is present but empty.
// The env decoder skips empty values, which would leave such fields at their
// zero value without an error.
func emptyValueErrors(prefix string, selectors map[string]string, record reflect.Type) []FieldError {
	var fieldErrs []FieldError
	for i := 0; i < record.NumField(); i++ {
		field := record.Field(i)
		selector := tagSelector(field)
		if selector == "" {
			continue
		}
		if _, hasDefault := field.Tag.Lookup("envDefault"); hasDefault {
			continue
		}
		if value, ok := selectors[selector]; !ok || value != "" {
			continue
		}
		if !reflect.PointerTo(field.Type).Implements(textUnmarshalerType) {
			continue
		}

		u := reflect.New(field.Type).Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte{}); err != nil {
			fieldErrs = append(fieldErrs, FieldError{
				Field: fieldName(selector),
				Key:   prefix + selector,
				Code:  CodeInvalidType,
				Type:  field.Type.String(),
				Err:   err,
			})
		}
	}

	return fieldErrs
}

// sortByDeclaration orders field failures as their fields are declared in
// record. Failures that name no field go last.
func sortByDeclaration(fieldErrs []FieldError, record reflect.Type) {
	order := make(map[string]int, record.NumField())
	for i := 0; i < record.NumField(); i++ {
		if selector := tagSelector(record.Field(i)); selector != "" {
			order[fieldName(selector)] = i
		}
	}

	position := func(fe FieldError) int {
		if i, ok := order[fe.Field]; ok {
			return i
		}
		return record.NumField()
	}
	sort.SliceStable(fieldErrs, func(i, j int) bool {
		return position(fieldErrs[i]) < position(fieldErrs[j])
	})
}

// tagSelector returns the selector declared in the field's `env` tag.
func tagSelector(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("env")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// selectorKeys maps Go field names of record to the selector in their `env` tag.
func selectorKeys(record reflect.Type) map[string]string {
	keys := make(map[string]string, record.NumField())
	for i := 0; i < record.NumField(); i++ {
		field := record.Field(i)
		if name := tagSelector(field); name != "" {
			keys[field.Name] = name
		}
	}

	return keys
}

func selectorFor(keys map[string]string, goName string) string {
	if selector, ok := keys[goName]; ok {
		return selector
	}

	return strings.ToUpper(goName)
}

// fieldName turns a selector such as "DATABASE_NAME" into "database_name".
func fieldName(selector string) string {
	return strings.ToLower(selector)
}
