package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed constraint.
type FieldError struct {
	Field string      // dotted path using wire names, e.g. "nav.route.arrival"
	Rule  string      // validation tag that failed
	Param string      // tag parameter, if any
	Value interface{} // offending value
}

func (f FieldError) String() string {
	if f.Param != "" {
		return fmt.Sprintf("%s failed %s=%s", f.Field, f.Rule, f.Param)
	}
	return fmt.Sprintf("%s failed %s", f.Field, f.Rule)
}

// ValidationError is returned when a payload has the right JSON shape but
// violates a constraint: a bound, a pattern, a required field or an enum.
type ValidationError struct {
	Type   string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("invalid %s: %s", e.Type, strings.Join(parts, "; "))
}

// Has reports whether the field at path failed validation.
func (e *ValidationError) Has(path string) bool {
	for _, f := range e.Fields {
		if f.Field == path {
			return true
		}
	}
	return false
}

// DecodeError is returned when a payload is not valid JSON for the target type.
type DecodeError struct {
	Type string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsSchemaError reports whether err is a decode or validation failure.
func IsSchemaError(err error) bool {
	var ve *ValidationError
	var de *DecodeError
	return errors.As(err, &ve) || errors.As(err, &de)
}

func newValidationError(typ string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Type: typ, Fields: []FieldError{{Rule: "invalid", Param: err.Error()}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: trimRoot(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fe.Value(),
		})
	}
	return &ValidationError{Type: typ, Fields: fields}
}

// trimRoot drops the struct name validator prefixes every namespace with.
// Generic roots carry a package path in brackets, e.g. "Page[x/models.Agent].meta".
func trimRoot(namespace string) string {
	dot := strings.IndexByte(namespace, '.')
	if open := strings.IndexByte(namespace, '['); open >= 0 && (dot < 0 || open < dot) {
		if end := strings.IndexByte(namespace, ']'); end > open {
			return strings.TrimPrefix(namespace[end+1:], ".")
		}
	}
	if dot >= 0 {
		return namespace[dot+1:]
	}
	return namespace
}
