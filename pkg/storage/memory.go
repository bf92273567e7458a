package storage

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-memory Repository used for tests and single-process
// deployments. Queryable fields are declared up front as accessor
// functions; querying an undeclared field is a configuration bug.
//
// Entities are held by reference: callers that mutate an entity must still
// call Update so the behavior matches a real store.
type Memory[T any] struct {
	mu     sync.RWMutex
	id     FieldGetter[T]
	fields map[string]FieldGetter[T]
	items  map[string]T
	order  []string
}

// NewMemory creates a memory repository. The id getter supplies the
// primary key; fields declares every name usable in FindOne/Exists.
func NewMemory[T any](id FieldGetter[T], fields map[string]FieldGetter[T]) *Memory[T] {
	return &Memory[T]{
		id:     id,
		fields: fields,
		items:  make(map[string]T),
	}
}

func (m *Memory[T]) getter(field string) (FieldGetter[T], error) {
	g, ok := m.fields[field]
	if !ok {
		return nil, ErrUnknownField
	}
	return g, nil
}

// FindOne returns the first entity (in insertion order) whose field equals value.
func (m *Memory[T]) FindOne(ctx context.Context, field, value string) (T, error) {
	var zero T

	get, err := m.getter(field)
	if err != nil {
		return zero, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, key := range m.order {
		if entity := m.items[key]; get(entity) == value {
			return entity, nil
		}
	}

	return zero, ErrNotFound
}

// Exists reports whether any entity's field equals value.
func (m *Memory[T]) Exists(ctx context.Context, field, value string) (bool, error) {
	get, err := m.getter(field)
	if err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, key := range m.order {
		if get(m.items[key]) == value {
			return true, nil
		}
	}

	return false, nil
}

// Insert stores a new entity keyed by its id.
func (m *Memory[T]) Insert(ctx context.Context, entity T) error {
	key := m.id(entity)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; exists {
		return ErrAlreadyExists
	}

	m.items[key] = entity
	m.order = append(m.order, key)
	return nil
}

// Update replaces an existing entity.
func (m *Memory[T]) Update(ctx context.Context, entity T) error {
	key := m.id(entity)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists {
		return ErrNotFound
	}

	m.items[key] = entity
	return nil
}

// Remove deletes an existing entity.
func (m *Memory[T]) Remove(ctx context.Context, entity T) error {
	key := m.id(entity)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[key]; !exists {
		return ErrNotFound
	}

	delete(m.items, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
	return nil
}

// List returns all entities in insertion order.
func (m *Memory[T]) List(ctx context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.items[key])
	}
	return out, nil
}
