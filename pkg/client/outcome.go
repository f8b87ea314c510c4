package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/andrescamacho/spacetraders-sdk/pkg/models"
)

// Kind classifies the HTTP status of a response.
type Kind int

const (
	KindOK Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnprocessable
	KindRateLimited
	KindServer
	KindUnknown
)

var kindDescriptions = map[Kind]string{
	KindOK:            "OK",
	KindBadRequest:    "Bad request",
	KindUnauthorized:  "Unauthorized",
	KindForbidden:     "Forbidden",
	KindNotFound:      "Not found",
	KindConflict:      "Conflict",
	KindUnprocessable: "Rejected",
	KindRateLimited:   "Rate limited",
	KindServer:        "Server error",
	KindUnknown:       "Unknown error",
}

func (k Kind) String() string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return kindDescriptions[KindUnknown]
}

// Classify maps every HTTP status to exactly one Kind. All endpoint groups
// share it, so a status means the same thing whichever group received it.
func Classify(status int) Kind {
	switch {
	case status >= 200 && status < 300:
		return KindOK
	case status == http.StatusBadRequest:
		return KindBadRequest
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusUnprocessableEntity:
		return KindUnprocessable
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 500 && status < 600:
		return KindServer
	default:
		return KindUnknown
	}
}

// Outcome is the result of one endpoint call. Message is always set. Value
// is non-nil exactly when the call succeeded; otherwise Kind, StatusCode and
// Code describe why it did not.
type Outcome[T any] struct {
	Message    string
	Value      *T
	Kind       Kind
	StatusCode int
	// Code is the API's numeric error code, zero when the body carried none
	Code int
}

// OK reports whether Value is present
func (o *Outcome[T]) OK() bool {
	return o != nil && o.Value != nil
}

func succeeded[T any](status int, message string, value *T) *Outcome[T] {
	return &Outcome[T]{
		Message:    message,
		Value:      value,
		Kind:       KindOK,
		StatusCode: status,
	}
}

func failed[T any](status int, entity string, body []byte) *Outcome[T] {
	kind := Classify(status)
	outcome := &Outcome[T]{Kind: kind, StatusCode: status}

	detail := strings.TrimSpace(string(body))
	if apiErr := models.ParseAPIError(body); apiErr != nil {
		detail = apiErr.Message
		outcome.Code = apiErr.Code
	}
	if detail == "" {
		detail = http.StatusText(status)
	}

	if kind == KindNotFound {
		outcome.Message = entity + " not found."
	} else {
		outcome.Message = fmt.Sprintf("%s (status %d): %s", kind, status, detail)
	}
	return outcome
}
