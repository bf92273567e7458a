// Package session implements the authenticated-session lifecycle: sign-in
// with brute-force lockout, encrypted session envelopes in a pluggable
// store, sign-out and HS256 JWT issuance.
//
// The manager is generic over a principal type and touches it only through
// the user.Principal capability interface, so any entity that exposes an
// id, a login, a password hash and lockout state can be session-managed.
//
// Error philosophy: everything a hostile caller can trigger collapses into
// ErrInvalidCredentials, ErrAccountLocked or a silent "not signed in";
// only infrastructure and configuration faults surface with detail.
package session
