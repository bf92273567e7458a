package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pbrandao/authkit/pkg/storage"
	"github.com/pbrandao/authkit/pkg/token"
)

var tokenColumns = map[string]string{
	token.FieldID:     "id",
	token.FieldValue:  "value",
	token.FieldUserID: "user_id",
}

const tokenSelect = "SELECT id, value, created_at, user_id FROM session_tokens"

// TokenRepository is the PostgreSQL storage.Repository for session tokens.
type TokenRepository struct {
	pool *pgxpool.Pool
}

// NewTokenRepository wraps a connected pool.
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func scanToken(row pgx.Row) (*token.SessionToken, error) {
	var t token.SessionToken
	if err := row.Scan(&t.ID, &t.Value, &t.CreatedAt, &t.UserID); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindOne returns the token whose field equals value.
func (r *TokenRepository) FindOne(ctx context.Context, field, value string) (*token.SessionToken, error) {
	column, ok := tokenColumns[field]
	if !ok {
		return nil, storage.ErrUnknownField
	}

	row := r.pool.QueryRow(ctx, fmt.Sprintf("%s WHERE %s = $1 LIMIT 1", tokenSelect, column), value)
	t, err := scanToken(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find token by %s: %w", field, err)
	}
	return t, nil
}

// Exists reports whether any token's field equals value.
func (r *TokenRepository) Exists(ctx context.Context, field, value string) (bool, error) {
	column, ok := tokenColumns[field]
	if !ok {
		return false, storage.ErrUnknownField
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM session_tokens WHERE %s = $1)", column)
	if err := r.pool.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("check token existence by %s: %w", field, err)
	}
	return exists, nil
}

// Insert stores a new token.
func (r *TokenRepository) Insert(ctx context.Context, t *token.SessionToken) error {
	_, err := r.pool.Exec(ctx,
		"INSERT INTO session_tokens (id, value, created_at, user_id) VALUES ($1, $2, $3, $4)",
		t.ID, t.Value, t.CreatedAt, t.UserID,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// Update replaces an existing token row.
func (r *TokenRepository) Update(ctx context.Context, t *token.SessionToken) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE session_tokens SET value = $2, user_id = $3 WHERE id = $1",
		t.ID, t.Value, t.UserID,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Remove deletes a token row.
func (r *TokenRepository) Remove(ctx context.Context, t *token.SessionToken) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM session_tokens WHERE id = $1", t.ID)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// List returns all tokens ordered by creation time.
func (r *TokenRepository) List(ctx context.Context) ([]*token.SessionToken, error) {
	rows, err := r.pool.Query(ctx, tokenSelect+" ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*token.SessionToken
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	return tokens, nil
}
