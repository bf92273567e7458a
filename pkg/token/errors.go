package token

import "errors"

var (
	// ErrTokenNotFound indicates no session token matched the lookup.
	ErrTokenNotFound = errors.New("token: not found")

	// ErrMissingUserID indicates a token issue request without a bound user.
	ErrMissingUserID = errors.New("token: missing user id")

	// ErrGenerationFailed wraps failures of the system randomness source.
	ErrGenerationFailed = errors.New("token: generation failed")

	// ErrTokenSpaceExhausted is returned when repeated mint attempts kept
	// colliding with stored values. This is a systemic error.
	ErrTokenSpaceExhausted = errors.New("token: could not mint unique token")
)
