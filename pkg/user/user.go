package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/pbrandao/authkit/pkg/storage"
)

// Field-name keys used by validation reports and field-equality queries.
// These are stable wire-level names, decoupled from Go identifiers.
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldLogin           = "login"
	FieldEmail           = "email"
	FieldConfirmEmail    = "confirm_email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCellPhone       = "cell_phone"
	FieldWorkplace       = "workplace"
	FieldAuthToken       = "auth_token"
	FieldCreatedAt       = "created_at"
)

// User is the default principal entity. Password and AuthToken hold
// one-way hashes, never clear values; the confirmation fields exist only
// for form round-trips and are excluded from serialization and storage.
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Login           string     `json:"login"`
	Email           string     `json:"email"`
	ConfirmEmail    string     `json:"-"`
	Password        string     `json:"password"`
	ConfirmPassword string     `json:"-"`
	CellPhone       string     `json:"cell_phone"`
	Workplace       string     `json:"workplace"`
	AuthToken       string     `json:"auth_token,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`

	LockoutState
}

// New creates a user with a fresh identity, registration timestamp and
// active lockout state.
func New() *User {
	return &User{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// PrincipalID implements Principal.
func (u *User) PrincipalID() string { return u.ID }

// PrincipalLogin implements Principal.
func (u *User) PrincipalLogin() string { return u.Login }

// PasswordHash implements Principal.
func (u *User) PasswordHash() string { return u.Password }

// SetPasswordHash implements Principal.
func (u *User) SetPasswordHash(hash string) { u.Password = hash }

// Lockout implements Principal.
func (u *User) Lockout() *LockoutState { return &u.LockoutState }

// Fields declares the queryable fields of User for repositories; every
// globally unique column is present so uniqueness checks can target it.
func Fields() map[string]storage.FieldGetter[*User] {
	return map[string]storage.FieldGetter[*User]{
		FieldID:        func(u *User) string { return u.ID },
		FieldName:      func(u *User) string { return u.Name },
		FieldLogin:     func(u *User) string { return u.Login },
		FieldEmail:     func(u *User) string { return u.Email },
		FieldPassword:  func(u *User) string { return u.Password },
		FieldCellPhone: func(u *User) string { return u.CellPhone },
		FieldAuthToken: func(u *User) string { return u.AuthToken },
	}
}

// NewMemoryRepository builds an in-memory user repository with the default
// field set, primarily for tests and examples.
func NewMemoryRepository() *storage.Memory[*User] {
	return storage.NewMemory(func(u *User) string { return u.ID }, Fields())
}
