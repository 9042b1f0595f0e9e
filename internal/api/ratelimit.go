package api

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter gates how frequently the client may issue outbound requests.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewLimiter constructs an outbound throttle allowing up to rps requests per
// second with the provided burst capacity.
func NewLimiter(rps float64, burst int) Limiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
