package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

var (
	// ErrMissingBaseURL is returned when no API URL was configured
	ErrMissingBaseURL = errors.New("API URL not configured")
	// ErrMissingToken is returned when no bearer token was configured
	ErrMissingToken = errors.New("API token not configured")
	// ErrInvalidParams matches every *ParamError
	ErrInvalidParams = errors.New("invalid parameters")
	// errMissingData is wrapped in a DecodeError when a 2xx body has no data field
	errMissingData = errors.New(`response has no "data" field`)
)

// ParamError reports arguments rejected before any request was sent.
type ParamError struct {
	Op     string
	Fields []models.FieldError
}

func (e *ParamError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return fmt.Sprintf("%s: invalid parameters: %s", e.Op, strings.Join(parts, "; "))
}

func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParams
}

// checkParams validates v and converts a failure into a ParamError.
func checkParams(op string, v interface{}) error {
	err := models.Validate(v)
	if err == nil {
		return nil
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return &ParamError{Op: op, Fields: verr.Fields}
	}
	return &ParamError{Op: op, Fields: []models.FieldError{{Rule: "invalid", Param: err.Error()}}}
}

// checkSymbols validates path parameters given as name, value pairs.
func checkSymbols(op string, pairs ...string) error {
	var fields []models.FieldError
	for i := 0; i+1 < len(pairs); i += 2 {
		name, value := pairs[i], pairs[i+1]
		if err := models.CheckSymbol(value); err != nil {
			fields = append(fields, models.FieldError{Field: name, Rule: "symbol", Value: value})
		}
	}
	if len(fields) > 0 {
		return &ParamError{Op: op, Fields: fields}
	}
	return nil
}
