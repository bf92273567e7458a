package sessionstore

import "errors"

var (
	// ErrKeyNotFound indicates the requested key holds no value.
	ErrKeyNotFound = errors.New("sessionstore: key not found")

	// ErrFailedToParseConnString indicates a malformed Redis URL.
	ErrFailedToParseConnString = errors.New("sessionstore: failed to parse connection string")

	// ErrStoreNotReady indicates the backend could not be reached within
	// the configured retry budget.
	ErrStoreNotReady = errors.New("sessionstore: store not ready")

	// ErrStoreUnavailable indicates a transport failure on an established
	// connection.
	ErrStoreUnavailable = errors.New("sessionstore: store unavailable")
)
