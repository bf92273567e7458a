package user

// Principal is the capability interface a user entity must expose to the
// authentication core. It replaces runtime reflection over property names
// with compile-time typed accessors: the session manager and validator
// only ever touch a principal through these methods or through configured
// accessor functions.
type Principal interface {
	// PrincipalID returns the opaque unique identity of the entity.
	PrincipalID() string

	// PrincipalLogin returns the login name used for authentication.
	PrincipalLogin() string

	// PasswordHash returns the stored one-way password hash.
	PasswordHash() string

	// SetPasswordHash replaces the stored password hash.
	SetPasswordHash(hash string)

	// Lockout exposes the mutable failed-attempt state of the entity.
	Lockout() *LockoutState
}
