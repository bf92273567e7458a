package storage

import "context"

// FieldGetter extracts the string value of a named field from an entity.
// Field sets are configured as maps from field-name keys to getters, which
// replaces name-based reflection with compile-time accessors.
type FieldGetter[T any] func(T) string

// Repository is the persistence collaborator required by the
// authentication core. Implementations only need field-equality queries
// and entity-level writes; the core does not assume a storage engine.
type Repository[T any] interface {
	// FindOne returns the first entity whose named field equals value.
	// Absence is reported as ErrNotFound.
	FindOne(ctx context.Context, field, value string) (T, error)

	// Exists reports whether any entity's named field equals value.
	Exists(ctx context.Context, field, value string) (bool, error)

	// Insert persists a new entity.
	Insert(ctx context.Context, entity T) error

	// Update persists changes to an existing entity.
	Update(ctx context.Context, entity T) error

	// Remove deletes an existing entity.
	Remove(ctx context.Context, entity T) error

	// List returns all persisted entities.
	List(ctx context.Context) ([]T, error)
}
