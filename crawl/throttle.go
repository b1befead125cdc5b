package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the pause between detail page requests.
const DefaultDelay = 1 * time.Second

// Throttle enforces a minimum delay between consecutive waits using a token
// bucket with a burst of 1. A nil Throttle or one created with a zero delay
// never blocks.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle whose first Wait already blocks for delay.
func NewThrottle(delay time.Duration) *Throttle {
	if delay <= 0 {
		return &Throttle{}
	}
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.Allow()
	return &Throttle{limiter: limiter}
}

// Wait blocks until delay has passed since the previous Wait (or since the
// Throttle was created). It returns an error if the context is canceled
// before the wait completes.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.limiter == nil {
		return ctx.Err()
	}
	return t.limiter.Wait(ctx)
}
