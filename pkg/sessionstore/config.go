package sessionstore

import "time"

// Config holds Redis connection settings for the distributed Store.
type Config struct {
	// ConnectionURL is the Redis URL, e.g. "redis://:password@localhost:6379/0".
	ConnectionURL string `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`

	// RetryAttempts is the number of connection attempts before giving up.
	RetryAttempts int `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`

	// RetryInterval is the wait between connection attempts.
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`

	// ConnectTimeout bounds the whole connection phase.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`

	// TTL is how long session values live without being rewritten. Zero
	// means no expiration.
	TTL time.Duration `env:"SESSION_STORE_TTL" envDefault:"24h"`
}
