package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxSafeInteger is the largest integer the API guarantees to round-trip through
// a JavaScript number (2^53 - 1). Credit balances are bounded by it in both directions.
const MaxSafeInteger = 9007199254740991

var symbolPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var validate = newValidator()

// Checker is implemented by types with rules that span several fields.
// Check runs after the struct tags have passed.
type Checker interface {
	Check() error
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name so errors line up with the JSON payload
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	mustRegister(v, "symbol", func(fl validator.FieldLevel) bool {
		return symbolPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(Enum)
		return ok && e.Valid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// Validate checks v against its struct tags and, when v implements Checker,
// its cross-field rules. v must be a struct or a pointer to one.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return newValidationError(typeName(v), err)
	}
	if c, ok := v.(Checker); ok {
		if err := c.Check(); err != nil {
			return &ValidationError{
				Type:   typeName(v),
				Fields: []FieldError{{Field: "", Rule: "check", Param: err.Error()}},
			}
		}
	}
	return nil
}

// CheckSymbol validates a single symbol-like identifier such as a ship,
// waypoint or contract symbol.
func CheckSymbol(value string) error {
	return validate.Var(value, "required,symbol")
}

// Decode unmarshals data into v and validates the result.
func Decode(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Type: typeName(v), Err: err}
	}
	return Validate(v)
}

func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	return name
}
