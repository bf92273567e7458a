// Package account implements the registration flow: input normalization,
// the full validation battery, password hashing through the unique-hash
// protocol, user creation and session token issuance, with rollback of
// partial state when a late stage fails.
package account
