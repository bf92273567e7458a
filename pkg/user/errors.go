package user

import "errors"

var (
	// ErrUserNotFound indicates no principal matched the lookup.
	ErrUserNotFound = errors.New("user not found")
)
