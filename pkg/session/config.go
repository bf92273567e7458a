package session

import "time"

// Config carries the policy knobs of the session manager. Values load from
// the environment once at startup; nothing here is re-read at runtime.
type Config struct {
	// SessionKey is the store key the encrypted session envelope lives under.
	SessionKey string `env:"SESSION_KEY" envDefault:"user_session"`

	// LoginField is the repository field name used to look principals up by
	// login.
	LoginField string `env:"SESSION_LOGIN_FIELD" envDefault:"login"`

	// LockoutThreshold is how many consecutive failed sign-ins engage the
	// lock.
	LockoutThreshold int `env:"LOCKOUT_THRESHOLD" envDefault:"3"`

	// LockoutDuration is how long an engaged lock rejects sign-ins.
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION" envDefault:"3m"`

	// JWTTTL is the lifetime stamped into issued JWTs.
	JWTTTL time.Duration `env:"JWT_TTL" envDefault:"30m"`
}
