package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("should allow requests within the limit", func(t *testing.T) {
		rl := NewRateLimiter(3)
		defer rl.Stop()

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.True(t, rl.Allow("1.2.3.4"))
		assert.True(t, rl.Allow("1.2.3.4"))
	})

	t.Run("should reject requests over the limit", func(t *testing.T) {
		rl := NewRateLimiter(2)
		defer rl.Stop()

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.True(t, rl.Allow("1.2.3.4"))
		assert.False(t, rl.Allow("1.2.3.4"))
	})

	t.Run("should track IPs independently", func(t *testing.T) {
		rl := NewRateLimiter(1)
		defer rl.Stop()

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.False(t, rl.Allow("1.2.3.4"))
		assert.True(t, rl.Allow("5.6.7.8"))
	})

	t.Run("should report a positive retry-after when limited", func(t *testing.T) {
		rl := NewRateLimiter(1)
		defer rl.Stop()

		assert.True(t, rl.Allow("1.2.3.4"))
		assert.False(t, rl.Allow("1.2.3.4"))
		assert.Greater(t, rl.RetryAfter("1.2.3.4"), 0)
	})

	t.Run("should report zero retry-after for unknown IPs", func(t *testing.T) {
		rl := NewRateLimiter(1)
		defer rl.Stop()

		assert.Equal(t, 0, rl.RetryAfter("9.9.9.9"))
	})
}
