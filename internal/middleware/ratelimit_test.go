package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	l := NewInMemoryRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("1.2.3.4"))
	}
	assert.False(t, l.Allow("1.2.3.4"))
	// Different key has its own budget.
	assert.True(t, l.Allow("5.6.7.8"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	l := NewInMemoryRateLimiter(1, 50*time.Millisecond)
	assert.True(t, l.Allow("1.2.3.4"))
	assert.False(t, l.Allow("1.2.3.4"))
	time.Sleep(60 * time.Millisecond)
	assert.True(t, l.Allow("1.2.3.4"))
}
