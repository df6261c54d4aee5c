package util

import (
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles reparses triggered by file events.
type Limiter struct {
	inner *rate.Limiter
}

// NewLimiter creates a token bucket limiter.
// r: reparses per second; zero or less means unlimited.
// b: burst size, at least one.
func NewLimiter(r float64, b int) *Limiter {
	limit := rate.Limit(r)
	if r <= 0 {
		limit = rate.Inf
	}
	if b < 1 {
		b = 1
	}
	return &Limiter{
		inner: rate.NewLimiter(limit, b),
	}
}

// Delay reserves one token and reports how long the caller must wait
// before acting on it.
func (l *Limiter) Delay() time.Duration {
	return l.inner.Reserve().Delay()
}
