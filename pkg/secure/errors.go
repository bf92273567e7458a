package secure

import "errors"

var (
	// ErrInvalidKey is returned when the configured key is not 16, 24 or 32 bytes.
	ErrInvalidKey = errors.New("secure: invalid key size")

	// ErrInvalidIV is returned when the configured IV is not one AES block.
	ErrInvalidIV = errors.New("secure: invalid iv size")

	// ErrEncodeFailed wraps serialization or encryption failures.
	ErrEncodeFailed = errors.New("secure: encode failed")

	// ErrDecodeFailed wraps any failure to recover a value from an envelope.
	ErrDecodeFailed = errors.New("secure: decode failed")

	// ErrInvalidPadding indicates a ciphertext whose PKCS#7 padding is broken,
	// usually the result of a wrong key or a tampered envelope.
	ErrInvalidPadding = errors.New("secure: invalid padding")
)
