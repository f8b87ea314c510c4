package transport

import (
	"errors"
	"fmt"
)

// ErrCircuitOpen is returned when the circuit breaker is rejecting requests
var ErrCircuitOpen = errors.New("circuit breaker open")

// Error is a failure to complete an HTTP exchange: the request could not be
// sent or read, a throttle or backoff wait was cancelled, or the circuit
// breaker refused the call. It never represents an HTTP status.
type Error struct {
	Op     string // "throttle", "send", "read", "backoff" or "circuit"
	Method string
	URL    string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s failed: %v", e.Method, e.URL, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err is, or wraps, a transport Error
func IsTransportError(err error) bool {
	var te *Error
	return errors.As(err, &te)
}
