package validator

import "errors"

var (
	// ErrInvalidConfig indicates a rule set referencing missing accessors.
	// This is a deployment bug and aborts construction.
	ErrInvalidConfig = errors.New("validator: invalid configuration")

	// ErrUnboundField indicates a unique-hash request for a field with no
	// configured binding — a programming error, never user input.
	ErrUnboundField = errors.New("validator: field not bound")

	// ErrEmptyCandidate indicates a unique-hash request with an empty
	// candidate value, which violates the caller contract.
	ErrEmptyCandidate = errors.New("validator: empty hash candidate")
)
