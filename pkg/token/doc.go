// Package token mints cryptographically random session tokens bound to a
// principal, with a store-backed uniqueness guarantee.
//
// IssueForUser loops generate-then-check up to a fixed attempt budget;
// collisions on 64 random bytes are statistically negligible, so
// exhausting the budget signals a broken store rather than bad luck and is
// surfaced as ErrTokenSpaceExhausted. Tokens are revoked either explicitly
// or as the compensating action of a failed registration.
package token
