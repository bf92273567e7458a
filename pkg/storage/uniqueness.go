package storage

import "context"

// UniquenessChecker answers whether a candidate value is free on a named
// field. It is only a pre-check: the retry loops built on top of it reduce
// collision likelihood, but a hard exclusion guarantee must come from a
// unique index at the storage layer.
type UniquenessChecker[T any] struct {
	repo Repository[T]
}

// NewUniquenessChecker wraps a repository for existence queries.
func NewUniquenessChecker[T any](repo Repository[T]) *UniquenessChecker[T] {
	return &UniquenessChecker[T]{repo: repo}
}

// IsUnique reports whether no persisted entity carries value on the named
// field. Unknown field names propagate as ErrUnknownField — a configuration
// bug, not a user error.
func (c *UniquenessChecker[T]) IsUnique(ctx context.Context, field, value string) (bool, error) {
	exists, err := c.repo.Exists(ctx, field, value)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
