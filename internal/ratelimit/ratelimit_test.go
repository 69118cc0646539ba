package ratelimit

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestAllowWithinBurst(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Minute, 3)

	assert.Equal(t, true, limiter.Allow(1))
	assert.Equal(t, true, limiter.Allow(1))
	assert.Equal(t, true, limiter.Allow(1))
	assert.Equal(t, false, limiter.Allow(1))
}

func TestChatsAreLimitedIndependently(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Minute, 1)

	assert.Equal(t, true, limiter.Allow(1))
	assert.Equal(t, false, limiter.Allow(1))
	assert.Equal(t, true, limiter.Allow(2))
}
