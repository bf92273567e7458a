package token_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrandao/authkit/pkg/storage"
	"github.com/pbrandao/authkit/pkg/token"
)

// collidingRepo reports every value as already taken, forcing the issue
// loop to exhaust its attempt budget.
type collidingRepo struct {
	storage.Repository[*token.SessionToken]
	attempts int
}

func (r *collidingRepo) Exists(ctx context.Context, field, value string) (bool, error) {
	r.attempts++
	return true, nil
}

func TestService_Generate(t *testing.T) {
	t.Parallel()

	svc := token.NewService(token.NewMemoryRepository())

	t.Run("default length", func(t *testing.T) {
		t.Parallel()

		value, err := svc.Generate(0)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(value)
		require.NoError(t, err)
		assert.Len(t, raw, token.DefaultLength)
	})

	t.Run("custom length", func(t *testing.T) {
		t.Parallel()

		value, err := svc.Generate(16)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(value)
		require.NoError(t, err)
		assert.Len(t, raw, 16)
	})

	t.Run("values do not repeat", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			value, err := svc.Generate(token.DefaultLength)
			require.NoError(t, err)
			require.False(t, seen[value], "generated value repeated")
			seen[value] = true
		}
	})
}

func TestService_IssueForUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("persists token bound to user", func(t *testing.T) {
		t.Parallel()

		repo := token.NewMemoryRepository()
		svc := token.NewService(repo)

		tok, err := svc.IssueForUser(ctx, "u-1")
		require.NoError(t, err)
		require.NotNil(t, tok)
		assert.NotEmpty(t, tok.ID)
		assert.NotEmpty(t, tok.Value)
		assert.Equal(t, "u-1", tok.UserID)
		assert.False(t, tok.CreatedAt.IsZero())

		stored, err := repo.FindOne(ctx, token.FieldValue, tok.Value)
		require.NoError(t, err)
		assert.Equal(t, tok.ID, stored.ID)
	})

	t.Run("issued value is unique among stored tokens", func(t *testing.T) {
		t.Parallel()

		svc := token.NewService(token.NewMemoryRepository())

		first, err := svc.IssueForUser(ctx, "u-1")
		require.NoError(t, err)
		second, err := svc.IssueForUser(ctx, "u-1")
		require.NoError(t, err)

		assert.NotEqual(t, first.Value, second.Value)

		unique, err := svc.IsUnique(ctx, first.Value)
		require.NoError(t, err)
		assert.False(t, unique)
	})

	t.Run("missing user id", func(t *testing.T) {
		t.Parallel()

		svc := token.NewService(token.NewMemoryRepository())
		_, err := svc.IssueForUser(ctx, "")
		require.ErrorIs(t, err, token.ErrMissingUserID)
	})

	t.Run("exhausts attempts when store always collides", func(t *testing.T) {
		t.Parallel()

		repo := &collidingRepo{Repository: token.NewMemoryRepository()}
		svc := token.NewService(repo)

		_, err := svc.IssueForUser(ctx, "u-1")
		require.ErrorIs(t, err, token.ErrTokenSpaceExhausted)
		assert.Equal(t, 5, repo.attempts)
	})
}

func TestService_DeleteAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("get by id", func(t *testing.T) {
		t.Parallel()

		svc := token.NewService(token.NewMemoryRepository())
		tok, err := svc.IssueForUser(ctx, "u-1")
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, tok.ID)
		require.NoError(t, err)
		assert.Equal(t, tok.Value, got.Value)
	})

	t.Run("get absent token", func(t *testing.T) {
		t.Parallel()

		svc := token.NewService(token.NewMemoryRepository())
		_, err := svc.GetByID(ctx, "missing")
		require.ErrorIs(t, err, token.ErrTokenNotFound)
	})

	t.Run("delete revokes", func(t *testing.T) {
		t.Parallel()

		svc := token.NewService(token.NewMemoryRepository())
		tok, err := svc.IssueForUser(ctx, "u-1")
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, tok.ID))

		_, err = svc.GetByID(ctx, tok.ID)
		require.ErrorIs(t, err, token.ErrTokenNotFound)

		unique, err := svc.IsUnique(ctx, tok.Value)
		require.NoError(t, err)
		assert.True(t, unique)
	})

	t.Run("delete absent token", func(t *testing.T) {
		t.Parallel()

		svc := token.NewService(token.NewMemoryRepository())
		require.ErrorIs(t, svc.Delete(ctx, "missing"), token.ErrTokenNotFound)
	})
}
