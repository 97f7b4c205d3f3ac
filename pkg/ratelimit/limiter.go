// Package ratelimit provides optional client-side request pacing.
//
// The A7 platform throttles aggressive callers with 429 responses. The SDK
// never retries on behalf of the application, but a Limiter lets it space
// requests out ahead of time so the throttle is not hit in the first place.
// The token bucket implementation wraps Uber's rate limiter; the default
// limiter used by the client is unlimited.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
)

// Rate describes a request budget: Limit operations per Interval.
// The zero value means unlimited.
type Rate struct {
	Limit    int
	Interval time.Duration
}

// IsZero reports whether the rate imposes no limit.
func (r Rate) IsZero() bool {
	return r.Limit <= 0 || r.Interval <= 0
}

// Limiter paces operations. Wait blocks until the next operation is
// permitted or the context is done.
type Limiter interface {
	Wait(ctx context.Context) error
}

type tokenBucket struct {
	limiter ratelimit.Limiter
}

// NewTokenBucket creates a token-bucket Limiter honoring the given rate.
// The budget is handed to the underlying limiter per interval, so coarse
// budgets like 2 per minute pace at their true 30s spacing.
func NewTokenBucket(rate Rate) (Limiter, error) {
	if rate.IsZero() {
		return nil, fmt.Errorf("invalid rate: %+v", rate)
	}
	return &tokenBucket{limiter: ratelimit.New(rate.Limit, ratelimit.Per(rate.Interval))}, nil
}

func (b *tokenBucket) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limit wait cancelled: %w", ctx.Err())
	default:
		b.limiter.Take()
		return nil
	}
}

type unlimited struct{}

// NewUnlimited returns a Limiter that never blocks.
func NewUnlimited() Limiter {
	return unlimited{}
}

func (unlimited) Wait(ctx context.Context) error {
	return ctx.Err()
}
