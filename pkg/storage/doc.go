// Package storage defines the persistence collaborator of the
// authentication core: a generic Repository supporting field-equality
// queries and entity-level writes, plus a UniquenessChecker built on it.
//
// Field access is accessor-driven. Instead of looking properties up by name
// through reflection, each repository is configured with a map from
// field-name keys to typed getter functions; a query against an undeclared
// field fails with ErrUnknownField, which callers treat as fatal.
//
// The Memory implementation backs tests and single-process use. The
// postgres subpackage provides pgx-backed repositories for production.
package storage
