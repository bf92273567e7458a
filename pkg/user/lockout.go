package user

import "time"

// LockoutState tracks failed-attempt accounting for a principal. It is a
// typed value addressable from the principal through the capability
// interface, persisted alongside the rest of the entity.
type LockoutState struct {
	FailedAttempts    int        `json:"failed_attempts"`
	IsLockedOut       bool       `json:"is_locked_out"`
	LockoutEnd        *time.Time `json:"lockout_end,omitempty"`
	LastFailedAttempt *time.Time `json:"last_failed_attempt,omitempty"`
}

// Locked reports whether the principal is currently locked out: the lock
// flag is set and the lockout window has not yet passed.
func (l *LockoutState) Locked(now time.Time) bool {
	return l.IsLockedOut && l.LockoutEnd != nil && l.LockoutEnd.After(now)
}

// RecordFailure registers one failed authentication attempt. Reaching the
// threshold engages the lock for the given duration.
func (l *LockoutState) RecordFailure(now time.Time, threshold int, duration time.Duration) {
	l.FailedAttempts++
	failedAt := now
	l.LastFailedAttempt = &failedAt

	if l.FailedAttempts >= threshold {
		l.IsLockedOut = true
		end := now.Add(duration)
		l.LockoutEnd = &end
	}
}

// Reset returns the principal to the active state after a successful
// authentication.
func (l *LockoutState) Reset() {
	l.FailedAttempts = 0
	l.IsLockedOut = false
	l.LockoutEnd = nil
}
