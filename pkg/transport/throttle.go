package transport

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle gates outgoing requests. Wait blocks until a request may be sent
// or ctx is done. *rate.Limiter satisfies it.
type Throttle interface {
	Wait(ctx context.Context) error
}

// NewRateLimiter returns a token-bucket throttle allowing perSecond requests
// on average with bursts of up to burst.
func NewRateLimiter(perSecond float64, burst int) Throttle {
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Unthrottled never blocks
type Unthrottled struct{}

func (Unthrottled) Wait(ctx context.Context) error {
	return ctx.Err()
}
