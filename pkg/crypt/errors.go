package crypt

import "errors"

var (
	// ErrEmptySecret is returned when an empty string is given to Hash.
	ErrEmptySecret = errors.New("crypt: empty secret")

	// ErrHashingFailed wraps bcrypt failures.
	ErrHashingFailed = errors.New("crypt: hashing failed")
)
