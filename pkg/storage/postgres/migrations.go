package postgres

import "embed"

// Schema migrations ship inside the binary so deployments never depend on
// a migrations directory being present on disk.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
