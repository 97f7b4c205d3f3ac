package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateIsZero(t *testing.T) {
	assert.True(t, Rate{}.IsZero())
	assert.True(t, Rate{Limit: 10}.IsZero())
	assert.True(t, Rate{Interval: time.Second}.IsZero())
	assert.False(t, Rate{Limit: 10, Interval: time.Second}.IsZero())
}

func TestNewTokenBucketRejectsZeroRate(t *testing.T) {
	_, err := NewTokenBucket(Rate{})
	assert.Error(t, err)
}

func TestTokenBucketWait(t *testing.T) {
	limiter, err := NewTokenBucket(Rate{Limit: 100, Interval: time.Second})
	require.NoError(t, err)

	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, limiter.Wait(ctx))
}

func TestTokenBucketPacesCoarseBudgets(t *testing.T) {
	// 2 per 3s means 1.5s between operations. A limiter that rounded the
	// budget up to 1 op/s would release the second operation after ~1s.
	limiter, err := NewTokenBucket(Rate{Limit: 2, Interval: 3 * time.Second})
	require.NoError(t, err)

	ctx := context.Background()
	start := time.Now()
	require.NoError(t, limiter.Wait(ctx))
	require.NoError(t, limiter.Wait(ctx))
	assert.GreaterOrEqual(t, time.Since(start), 1400*time.Millisecond)
}

func TestUnlimitedNeverBlocks(t *testing.T) {
	limiter := NewUnlimited()
	assert.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, limiter.Wait(ctx), context.Canceled)
}
