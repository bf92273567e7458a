package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrandao/authkit/pkg/user"
)

func TestLockoutState(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("fresh state is active", func(t *testing.T) {
		t.Parallel()

		var l user.LockoutState
		assert.False(t, l.Locked(now))
		assert.Zero(t, l.FailedAttempts)
	})

	t.Run("failures below threshold do not lock", func(t *testing.T) {
		t.Parallel()

		var l user.LockoutState
		l.RecordFailure(now, 3, 3*time.Minute)
		l.RecordFailure(now, 3, 3*time.Minute)

		assert.Equal(t, 2, l.FailedAttempts)
		assert.False(t, l.IsLockedOut)
		assert.False(t, l.Locked(now))
		require.NotNil(t, l.LastFailedAttempt)
		assert.Equal(t, now, *l.LastFailedAttempt)
	})

	t.Run("threshold failure engages lock", func(t *testing.T) {
		t.Parallel()

		var l user.LockoutState
		for i := 0; i < 3; i++ {
			l.RecordFailure(now, 3, 3*time.Minute)
		}

		assert.True(t, l.IsLockedOut)
		require.NotNil(t, l.LockoutEnd)
		assert.Equal(t, now.Add(3*time.Minute), *l.LockoutEnd)
		assert.True(t, l.Locked(now))
		assert.True(t, l.Locked(now.Add(3*time.Minute-time.Second)))
	})

	t.Run("lock expires after the window", func(t *testing.T) {
		t.Parallel()

		var l user.LockoutState
		for i := 0; i < 3; i++ {
			l.RecordFailure(now, 3, 3*time.Minute)
		}

		assert.False(t, l.Locked(now.Add(3*time.Minute)))
	})

	t.Run("reset returns to active", func(t *testing.T) {
		t.Parallel()

		var l user.LockoutState
		for i := 0; i < 3; i++ {
			l.RecordFailure(now, 3, 3*time.Minute)
		}
		l.Reset()

		assert.Zero(t, l.FailedAttempts)
		assert.False(t, l.IsLockedOut)
		assert.Nil(t, l.LockoutEnd)
		assert.False(t, l.Locked(now))
		// Audit trail of the last failure survives a reset.
		assert.NotNil(t, l.LastFailedAttempt)
	})
}
