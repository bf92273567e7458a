package sessionstore

import "context"

// Store is the string key/value surface session state lives behind. The
// session manager treats it as opaque transport: values are already
// encrypted envelopes by the time they reach a Store.
type Store interface {
	// GetString returns the value for key. A missing key returns
	// ErrKeyNotFound; backends must not conflate that with a transport
	// failure.
	GetString(ctx context.Context, key string) (string, error)

	// SetString stores value under key, overwriting any previous value.
	SetString(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
