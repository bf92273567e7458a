package token

import (
	"time"

	"github.com/google/uuid"

	"github.com/pbrandao/authkit/pkg/storage"
)

// Field-name keys for session token queries.
const (
	FieldID     = "id"
	FieldValue  = "session_token"
	FieldUserID = "user_id"
)

// SessionToken is a random, store-unique string bound to exactly one
// principal. It is distinct from the JWT: the JWT is self-contained and
// time-limited, while a SessionToken lives in storage until revoked.
type SessionToken struct {
	ID        string    `json:"id"`
	Value     string    `json:"session_token"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`
}

// NewSessionToken binds a freshly generated value to a user.
func NewSessionToken(value, userID string) *SessionToken {
	return &SessionToken{
		ID:        uuid.NewString(),
		Value:     value,
		CreatedAt: time.Now().UTC(),
		UserID:    userID,
	}
}

// Fields declares the queryable fields of SessionToken for repositories.
func Fields() map[string]storage.FieldGetter[*SessionToken] {
	return map[string]storage.FieldGetter[*SessionToken]{
		FieldID:     func(t *SessionToken) string { return t.ID },
		FieldValue:  func(t *SessionToken) string { return t.Value },
		FieldUserID: func(t *SessionToken) string { return t.UserID },
	}
}

// NewMemoryRepository builds an in-memory session token repository with
// the default field set.
func NewMemoryRepository() *storage.Memory[*SessionToken] {
	return storage.NewMemory(func(t *SessionToken) string { return t.ID }, Fields())
}
