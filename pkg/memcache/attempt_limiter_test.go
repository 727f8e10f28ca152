package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttemptLimits(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	newLimiter := func(max int, window time.Duration) *AttemptLimits {
		l := NewAttemptLimits(max, window)
		l.now = func() time.Time { return current }
		return l
	}

	t.Run("allows until max failures", func(t *testing.T) {
		l := newLimiter(3, 15*time.Minute)

		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow("1.2.3.4"))
			l.Fail("1.2.3.4")
		}
		assert.False(t, l.Allow("1.2.3.4"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := newLimiter(1, 15*time.Minute)

		l.Fail("1.2.3.4")
		assert.False(t, l.Allow("1.2.3.4"))
		assert.True(t, l.Allow("5.6.7.8"))
	})

	t.Run("window expiry clears the counter", func(t *testing.T) {
		l := newLimiter(1, 15*time.Minute)

		l.Fail("1.2.3.4")
		assert.False(t, l.Allow("1.2.3.4"))

		current = current.Add(16 * time.Minute)
		assert.True(t, l.Allow("1.2.3.4"))
	})

	t.Run("reset clears the counter", func(t *testing.T) {
		l := newLimiter(1, 15*time.Minute)

		l.Fail("1.2.3.4")
		assert.False(t, l.Allow("1.2.3.4"))

		l.Reset("1.2.3.4")
		assert.True(t, l.Allow("1.2.3.4"))
	})

	t.Run("failure after expiry starts a fresh window", func(t *testing.T) {
		l := newLimiter(2, 15*time.Minute)

		l.Fail("1.2.3.4")
		current = current.Add(16 * time.Minute)

		l.Fail("1.2.3.4")
		assert.True(t, l.Allow("1.2.3.4"))
	})
}
