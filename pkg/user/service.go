package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pbrandao/authkit/pkg/logger"
	"github.com/pbrandao/authkit/pkg/storage"
)

// Service offers CRUD operations over principals, generic over the
// concrete entity type. It is a thin layer above the storage collaborator
// that owns error wrapping and logging.
type Service[P Principal] struct {
	repo storage.Repository[P]
	log  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption[P Principal] func(*Service[P])

// WithServiceLogger sets a custom logger for the service.
func WithServiceLogger[P Principal](log *slog.Logger) ServiceOption[P] {
	return func(s *Service[P]) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates a user service over the given repository.
func NewService[P Principal](repo storage.Repository[P], opts ...ServiceOption[P]) *Service[P] {
	s := &Service[P]{
		repo: repo,
		log:  logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create persists a new principal.
func (s *Service[P]) Create(ctx context.Context, p P) error {
	if err := s.repo.Insert(ctx, p); err != nil {
		s.log.ErrorContext(ctx, "failed to create user",
			logger.UserID(p.PrincipalID()),
			logger.Error(err),
			logger.Component("user"),
		)
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update persists changes to an existing principal.
func (s *Service[P]) Update(ctx context.Context, p P) error {
	if err := s.repo.Update(ctx, p); err != nil {
		s.log.ErrorContext(ctx, "failed to update user",
			logger.UserID(p.PrincipalID()),
			logger.Error(err),
			logger.Component("user"),
		)
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes the principal with the given id and returns it.
func (s *Service[P]) Delete(ctx context.Context, id string) (P, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return p, err
	}

	if err := s.repo.Remove(ctx, p); err != nil {
		return p, fmt.Errorf("delete user: %w", err)
	}
	return p, nil
}

// GetByID fetches a principal by identity. Absence maps to ErrUserNotFound.
func (s *Service[P]) GetByID(ctx context.Context, id string) (P, error) {
	p, err := s.repo.FindOne(ctx, FieldID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return p, ErrUserNotFound
		}
		return p, fmt.Errorf("get user by id: %w", err)
	}
	return p, nil
}

// GetByLogin fetches a principal by exact login match.
func (s *Service[P]) GetByLogin(ctx context.Context, login string) (P, error) {
	p, err := s.repo.FindOne(ctx, FieldLogin, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return p, ErrUserNotFound
		}
		return p, fmt.Errorf("get user by login: %w", err)
	}
	return p, nil
}

// List returns every persisted principal.
func (s *Service[P]) List(ctx context.Context) ([]P, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return all, nil
}
