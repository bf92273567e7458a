package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToConnect     = errors.New("postgres: failed to open connection")
	ErrFailedToParseConfig = errors.New("postgres: failed to parse config")
	ErrFailedToMigrate     = errors.New("postgres: failed to apply migrations")
)

// isDuplicateKey detects unique constraint violations (SQLSTATE 23505) so
// repositories can map them onto storage.ErrAlreadyExists.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
