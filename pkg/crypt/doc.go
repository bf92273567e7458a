// Package crypt implements the credential hasher of the authentication
// core: adaptive, salted, one-way hashing for passwords and auth tokens
// built on bcrypt.
//
// The salt makes hashing non-deterministic, which is what allows the
// validator's bounded unique-hash retry loop to resolve collisions on
// uniqueness-constrained columns by simply hashing again.
package crypt
