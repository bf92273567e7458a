package token

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pbrandao/authkit/pkg/logger"
	"github.com/pbrandao/authkit/pkg/storage"
)

const (
	// DefaultLength is the number of random bytes in a generated token.
	DefaultLength = 64

	// maxIssueAttempts bounds the generate/check loop. Running out of
	// attempts means the token space is effectively exhausted or the
	// store is misbehaving; either way it is a systemic failure.
	maxIssueAttempts = 5
)

// Service mints, fetches and revokes session tokens. Uniqueness of minted
// values is pre-checked against the store; the final word belongs to the
// storage layer's unique index.
type Service struct {
	repo   storage.Repository[*SessionToken]
	unique *storage.UniquenessChecker[*SessionToken]
	log    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a token service over the given repository.
func NewService(repo storage.Repository[*SessionToken], opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		unique: storage.NewUniquenessChecker[*SessionToken](repo),
		log:    logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns a cryptographically secure random value of the given
// byte length, base64-encoded. Non-positive lengths fall back to
// DefaultLength. Nothing is persisted.
func (s *Service) Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrGenerationFailed, err)
	}

	return base64.StdEncoding.EncodeToString(buf), nil
}

// IsUnique reports whether no stored session token carries the exact value.
func (s *Service) IsUnique(ctx context.Context, value string) (bool, error) {
	return s.unique.IsUnique(ctx, FieldValue, value)
}

// IssueForUser mints a store-unique session token bound to the given user
// id and persists it. Exhausting the attempt budget is fatal for the
// request, not a user error.
func (s *Service) IssueForUser(ctx context.Context, userID string) (*SessionToken, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	var value string
	for attempt := 0; ; attempt++ {
		if attempt >= maxIssueAttempts {
			s.log.ErrorContext(ctx, "token space exhausted",
				logger.UserID(userID),
				slog.Int("attempts", attempt),
				logger.Component("token"),
			)
			return nil, ErrTokenSpaceExhausted
		}

		candidate, err := s.Generate(DefaultLength)
		if err != nil {
			return nil, err
		}

		unique, err := s.IsUnique(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("check token uniqueness: %w", err)
		}
		if unique {
			value = candidate
			break
		}
	}

	tok := NewSessionToken(value, userID)
	if err := s.repo.Insert(ctx, tok); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}

	return tok, nil
}

// Delete revokes the token with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	tok, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, tok); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}

// GetByID fetches a token by identity. Absence maps to ErrTokenNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*SessionToken, error) {
	tok, err := s.repo.FindOne(ctx, FieldID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("get session token: %w", err)
	}
	return tok, nil
}
