package transport

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// RetryPolicy decides whether a finished attempt is retried. attempt is zero
// based. Exactly one of resp and err is non-nil. The returned reason labels
// the retry in metrics and logs.
type RetryPolicy interface {
	Backoff(attempt int, resp *Response, err error) (delay time.Duration, reason string, retry bool)
}

// NoRetry sends every request exactly once
type NoRetry struct{}

func (NoRetry) Backoff(int, *Response, error) (time.Duration, string, bool) {
	return 0, "", false
}

// ExponentialBackoff retries network errors, 429 and 5xx responses up to
// MaxRetries times, waiting Base*2^attempt with jitter between attempts. A
// Retry-After header on a 429 overrides the computed delay.
type ExponentialBackoff struct {
	MaxRetries int
	Base       time.Duration
	// Jitter spreads delays; nil uses 50%..150% of the computed value
	Jitter func(time.Duration) time.Duration
}

func (b ExponentialBackoff) Backoff(attempt int, resp *Response, err error) (time.Duration, string, bool) {
	if attempt >= b.MaxRetries {
		return 0, "", false
	}

	delay := b.jitter(b.Base * time.Duration(1<<attempt))

	if err != nil {
		return delay, "network", true
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		if retryAfter := parseRetryAfter(resp.Header.Get("Retry-After")); retryAfter > 0 {
			return retryAfter, "rate_limited", true
		}
		return delay, "rate_limited", true
	case resp.StatusCode == http.StatusServiceUnavailable:
		return delay, "unavailable", true
	case resp.StatusCode >= 500:
		return delay, "server_error", true
	}
	return 0, "", false
}

func (b ExponentialBackoff) jitter(d time.Duration) time.Duration {
	if b.Jitter != nil {
		return b.Jitter(d)
	}
	return addJitter(d)
}

// addJitter returns a duration between 50% and 150% of d
func addJitter(d time.Duration) time.Duration {
	jitter := 0.5 + rand.Float64()
	return time.Duration(float64(d) * jitter)
}

// parseRetryAfter reads a Retry-After value given in seconds. The API sends
// fractional seconds, so those are accepted too.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}
