package crypt

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt refuses inputs longer than 72 bytes. Session token values are 88
// bytes of base64, so longer secrets are pre-digested with SHA-256 and
// re-encoded; every byte of the input still contributes to the hash.
const maxSecretLength = 72

// Hasher provides one-way hashing and verification for secrets using bcrypt.
// Hashes embed a random salt, so hashing the same input twice yields
// different digests — the unique-hash retry protocol in pkg/validator
// depends on that property.
type Hasher struct {
	cost int
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithCost sets the bcrypt work factor. Values outside the range supported
// by bcrypt fall back to the library default.
func WithCost(cost int) Option {
	return func(h *Hasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewHasher creates a Hasher with the bcrypt default cost unless overridden.
func NewHasher(opts ...Option) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the salted one-way hash of the given secret.
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	digest, err := bcrypt.GenerateFromPassword(normalizeSecret(secret), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}

	return string(digest), nil
}

// Verify reports whether the plain secret matches the stored hash.
// It never reveals why a comparison failed.
func (h *Hasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), normalizeSecret(secret)) == nil
}

// normalizeSecret folds over-long secrets into a fixed-size printable form
// bcrypt accepts. The base64 re-encoding keeps the digest free of NUL
// bytes, which bcrypt treats as terminators.
func normalizeSecret(secret string) []byte {
	if len(secret) <= maxSecretLength {
		return []byte(secret)
	}

	digest := sha256.Sum256([]byte(secret))
	return []byte(base64.StdEncoding.EncodeToString(digest[:]))
}
