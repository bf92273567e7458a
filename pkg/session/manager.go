package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pbrandao/authkit/pkg/crypt"
	"github.com/pbrandao/authkit/pkg/jwt"
	"github.com/pbrandao/authkit/pkg/logger"
	"github.com/pbrandao/authkit/pkg/sanitizer"
	"github.com/pbrandao/authkit/pkg/secure"
	"github.com/pbrandao/authkit/pkg/sessionstore"
	"github.com/pbrandao/authkit/pkg/storage"
	"github.com/pbrandao/authkit/pkg/user"
)

// Manager orchestrates the authenticated-session lifecycle for a principal
// type: sign-in with lockout accounting, encrypted session persistence,
// sign-out and JWT issuance. It owns no state of its own beyond
// configuration; everything durable lives in the repository and the
// session store.
type Manager[P user.Principal] struct {
	repo   storage.Repository[P]
	store  sessionstore.Store
	codec  *secure.Codec[P]
	hasher *crypt.Hasher
	jwt    *jwt.Service
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

// Option configures a Manager.
type Option[P user.Principal] func(*Manager[P])

// WithLogger sets a custom logger for the manager.
func WithLogger[P user.Principal](log *slog.Logger) Option[P] {
	return func(m *Manager[P]) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock overrides the time source. Used by tests to step through
// lockout windows without sleeping.
func WithClock[P user.Principal](now func() time.Time) Option[P] {
	return func(m *Manager[P]) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a session manager over the given collaborators.
func New[P user.Principal](
	repo storage.Repository[P],
	store sessionstore.Store,
	codec *secure.Codec[P],
	hasher *crypt.Hasher,
	jwtSvc *jwt.Service,
	cfg Config,
	opts ...Option[P],
) *Manager[P] {
	m := &Manager[P]{
		repo:   repo,
		store:  store,
		codec:  codec,
		hasher: hasher,
		jwt:    jwtSvc,
		cfg:    cfg,
		log:    logger.NewDiscard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SignIn authenticates login/password and, on success, persists the
// encrypted session envelope. The rejection order is fixed: unknown login
// first (no lockout accounting for principals that do not exist), then an
// active lockout, then the password check. A wrong password increments the
// failure counter and may engage the lock; a correct one resets it.
func (m *Manager[P]) SignIn(ctx context.Context, login, password string) (P, error) {
	var zero P

	// Logins are stored normalized at registration; look them up the
	// same way so "JDoe" authenticates the account registered as "jdoe".
	login = sanitizer.NormalizeLogin(login)

	p, err := m.repo.FindOne(ctx, m.cfg.LoginField, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			m.log.InfoContext(ctx, "sign-in rejected: unknown login",
				logger.Login(login), logger.Component("session"))
			return zero, ErrInvalidCredentials
		}
		return zero, fmt.Errorf("look up principal: %w", err)
	}

	now := m.now()

	if p.Lockout().Locked(now) {
		m.log.WarnContext(ctx, "sign-in rejected: account locked",
			logger.UserID(p.PrincipalID()), logger.Component("session"))
		return zero, ErrAccountLocked
	}

	if !m.hasher.Verify(password, p.PasswordHash()) {
		p.Lockout().RecordFailure(now, m.cfg.LockoutThreshold, m.cfg.LockoutDuration)
		if err := m.repo.Update(ctx, p); err != nil {
			return zero, fmt.Errorf("persist failed attempt: %w", err)
		}

		m.log.InfoContext(ctx, "sign-in rejected: wrong password",
			logger.UserID(p.PrincipalID()),
			slog.Int("failed_attempts", p.Lockout().FailedAttempts),
			slog.Bool("locked_out", p.Lockout().IsLockedOut),
			logger.Component("session"),
		)
		return zero, ErrInvalidCredentials
	}

	p.Lockout().Reset()
	if err := m.repo.Update(ctx, p); err != nil {
		return zero, fmt.Errorf("persist lockout reset: %w", err)
	}

	if err := m.ConfigureSession(ctx, p); err != nil {
		return zero, err
	}

	m.log.InfoContext(ctx, "sign-in succeeded",
		logger.UserID(p.PrincipalID()), logger.Component("session"))
	return p, nil
}

// ConfigureSession seals the principal into an encrypted envelope and
// writes it to the session store, replacing any previous session.
func (m *Manager[P]) ConfigureSession(ctx context.Context, p P) error {
	envelope, err := m.codec.Serialize(p)
	if err != nil {
		return errors.Join(ErrSessionNotStored, err)
	}

	if err := m.store.SetString(ctx, m.cfg.SessionKey, envelope); err != nil {
		return errors.Join(ErrSessionNotStored, err)
	}

	return nil
}

// GetSession returns the principal of the active session. The second
// return is false when no session exists or the stored envelope cannot be
// decoded — a corrupt or foreign envelope degrades to "not signed in"
// rather than an error, so a tampered value can never half-authenticate.
func (m *Manager[P]) GetSession(ctx context.Context) (P, bool) {
	var zero P

	envelope, err := m.store.GetString(ctx, m.cfg.SessionKey)
	if err != nil {
		if !errors.Is(err, sessionstore.ErrKeyNotFound) {
			m.log.ErrorContext(ctx, "session store read failed",
				logger.Error(err), logger.Component("session"))
		}
		return zero, false
	}

	p, err := m.codec.Deserialize(envelope)
	if err != nil {
		m.log.WarnContext(ctx, "discarding undecodable session envelope",
			logger.Error(err), logger.Component("session"))
		return zero, false
	}

	return p, true
}

// SignOut removes the active session. Signing out without a session is
// ErrNoActiveSession so callers can distinguish a no-op from a logout.
func (m *Manager[P]) SignOut(ctx context.Context) error {
	if _, err := m.store.GetString(ctx, m.cfg.SessionKey); err != nil {
		if errors.Is(err, sessionstore.ErrKeyNotFound) {
			return ErrNoActiveSession
		}
		return fmt.Errorf("read session: %w", err)
	}

	if err := m.store.Remove(ctx, m.cfg.SessionKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}

// GenerateJWT issues a signed token for the active session's principal.
// The freshly minted token is parsed back through the verifier before it
// is returned; a token that fails its own validation indicates broken
// signing configuration and is never handed out.
func (m *Manager[P]) GenerateJWT(ctx context.Context) (string, error) {
	p, ok := m.GetSession(ctx)
	if !ok {
		return "", ErrNoActiveSession
	}

	now := m.now()
	token, err := m.jwt.Generate(jwt.Claims{
		ID:        uuid.NewString(),
		Subject:   p.PrincipalLogin(),
		ExpiresAt: now.Add(m.cfg.JWTTTL).Unix(),
		IssuedAt:  now.Unix(),
	})
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	if _, err := m.jwt.Parse(token); err != nil {
		m.log.ErrorContext(ctx, "minted token failed self-validation",
			logger.Error(err), logger.Component("session"))
		return "", errors.Join(ErrTokenGeneration, err)
	}

	return token, nil
}

// ValidateJWT reports whether the token is currently valid: well-formed,
// correctly signed, within its validity window and carrying the expected
// issuer and audience.
func (m *Manager[P]) ValidateJWT(token string) bool {
	_, err := m.jwt.Parse(token)
	return err == nil
}
