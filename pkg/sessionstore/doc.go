// Package sessionstore provides the key/value backends session envelopes
// are persisted to: an in-process map for tests and single-node use, and a
// Redis-backed store for deployments that need shared or durable session
// state.
package sessionstore
