package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pbrandao/authkit/pkg/storage"
	"github.com/pbrandao/authkit/pkg/user"
)

// userColumns maps field-name keys onto columns. Only names present here
// are queryable; the map doubles as an injection guard since field names
// arriving at query builders are always looked up, never interpolated raw.
var userColumns = map[string]string{
	user.FieldID:        "id",
	user.FieldName:      "name",
	user.FieldLogin:     "login",
	user.FieldEmail:     "email",
	user.FieldPassword:  "password",
	user.FieldCellPhone: "cell_phone",
	user.FieldWorkplace: "workplace",
	user.FieldAuthToken: "auth_token",
	user.FieldCreatedAt: "created_at",
}

const userSelect = `
SELECT id, name, login, email, password, cell_phone, workplace,
       COALESCE(auth_token, ''), created_at, updated_at,
       failed_attempts, is_locked_out, lockout_end, last_failed_attempt
FROM users`

// UserRepository is the PostgreSQL storage.Repository for users.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository wraps a connected pool.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		u         user.User
		authToken string
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Login, &u.Email, &u.Password,
		&u.CellPhone, &u.Workplace, &authToken, &u.CreatedAt, &u.UpdatedAt,
		&u.FailedAttempts, &u.IsLockedOut, &u.LockoutEnd, &u.LastFailedAttempt,
	)
	if err != nil {
		return nil, err
	}
	u.AuthToken = authToken
	return &u, nil
}

// FindOne returns the user whose field equals value.
func (r *UserRepository) FindOne(ctx context.Context, field, value string) (*user.User, error) {
	column, ok := userColumns[field]
	if !ok {
		return nil, storage.ErrUnknownField
	}

	row := r.pool.QueryRow(ctx, fmt.Sprintf("%s WHERE %s = $1 LIMIT 1", userSelect, column), value)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find user by %s: %w", field, err)
	}
	return u, nil
}

// Exists reports whether any user's field equals value.
func (r *UserRepository) Exists(ctx context.Context, field, value string) (bool, error) {
	column, ok := userColumns[field]
	if !ok {
		return false, storage.ErrUnknownField
	}

	var exists bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1)", column)
	if err := r.pool.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user existence by %s: %w", field, err)
	}
	return exists, nil
}

// Insert stores a new user.
func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (
	id, name, login, email, password, cell_phone, workplace, auth_token,
	created_at, updated_at, failed_attempts, is_locked_out, lockout_end, last_failed_attempt
) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14)`,
		u.ID, u.Name, u.Login, u.Email, u.Password, u.CellPhone, u.Workplace, u.AuthToken,
		u.CreatedAt, u.UpdatedAt, u.FailedAttempts, u.IsLockedOut, u.LockoutEnd, u.LastFailedAttempt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update replaces an existing user row.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE users SET
	name = $2, login = $3, email = $4, password = $5, cell_phone = $6,
	workplace = $7, auth_token = NULLIF($8, ''), updated_at = now(),
	failed_attempts = $9, is_locked_out = $10, lockout_end = $11, last_failed_attempt = $12
WHERE id = $1`,
		u.ID, u.Name, u.Login, u.Email, u.Password, u.CellPhone,
		u.Workplace, u.AuthToken,
		u.FailedAttempts, u.IsLockedOut, u.LockoutEnd, u.LastFailedAttempt,
	)
	if err != nil {
		if isDuplicateKey(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Remove deletes a user row.
func (r *UserRepository) Remove(ctx context.Context, u *user.User) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM users WHERE id = $1", u.ID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// List returns all users ordered by registration time.
func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	rows, err := r.pool.Query(ctx, userSelect+" ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
