// Package postgres provides the PostgreSQL-backed repositories for users
// and session tokens, plus pool construction and embedded goose
// migrations.
//
// Field-name keys are translated to columns through explicit whitelists;
// a name outside the whitelist is storage.ErrUnknownField before any SQL
// is built. Unique indexes on login, email, password hash and auth token
// back the uniqueness guarantees the in-process checks can only
// approximate.
package postgres
