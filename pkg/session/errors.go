package session

import "errors"

var (
	// ErrInvalidCredentials is the uniform rejection for a sign-in that
	// failed on the credentials themselves. It deliberately does not say
	// whether the login or the password was wrong.
	ErrInvalidCredentials = errors.New("session: invalid credentials")

	// ErrAccountLocked rejects sign-ins while a lockout window is active.
	ErrAccountLocked = errors.New("session: account locked")

	// ErrNoActiveSession indicates an operation that requires an
	// authenticated session found none.
	ErrNoActiveSession = errors.New("session: no active session")

	// ErrSessionNotStored indicates the encrypted envelope could not be
	// written to the backing store.
	ErrSessionNotStored = errors.New("session: failed to store session")

	// ErrTokenGeneration indicates a freshly minted JWT failed its own
	// validation — a key or clock misconfiguration, never user input.
	ErrTokenGeneration = errors.New("session: token generation failed")
)
