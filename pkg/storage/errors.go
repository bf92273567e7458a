package storage

import "errors"

var (
	// ErrNotFound indicates no entity matched the query.
	ErrNotFound = errors.New("storage: entity not found")

	// ErrAlreadyExists indicates an insert collided with an existing entity id.
	ErrAlreadyExists = errors.New("storage: entity already exists")

	// ErrUnknownField indicates a query referenced a field the repository was
	// not configured with. This is a programming error and should abort the
	// operation rather than surface to the user.
	ErrUnknownField = errors.New("storage: unknown field")
)
