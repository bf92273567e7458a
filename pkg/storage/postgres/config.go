package postgres

import "time"

// Config holds PostgreSQL pool, retry and migration settings. Loaded from
// the environment once at startup.
type Config struct {
	// ConnectionString is the database URL.
	ConnectionString string `env:"PG_CONN_URL,required"`

	// MaxOpenConns is the maximum number of open connections in the pool.
	MaxOpenConns int32 `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`

	// MaxIdleConns is the minimum number of idle connections kept warm.
	MaxIdleConns int32 `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`

	// HealthCheckPeriod is the period between pool health checks.
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`

	// MaxConnIdleTime is how long a connection may sit idle before closing.
	MaxConnIdleTime time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`

	// MaxConnLifetime is the maximum total lifetime of a connection.
	MaxConnLifetime time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	// RetryAttempts is the number of connection attempts before giving up.
	RetryAttempts int `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the base wait between attempts; the actual wait
	// grows linearly with the attempt number.
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`

	// MigrationsTable is the goose bookkeeping table.
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"schema_migrations"`
}
