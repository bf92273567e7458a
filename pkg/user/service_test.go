package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrandao/authkit/pkg/user"
)

func newTestUser(login string) *user.User {
	u := user.New()
	u.Name = "Test Person"
	u.Login = login
	u.Email = login + "@example.com"
	u.Password = "$2a$04$fakehashfakehashfakehash"
	u.CellPhone = "(11) 98765-4321"
	u.Workplace = "Engineering"
	return u
}

func TestUser_Principal(t *testing.T) {
	t.Parallel()

	u := newTestUser("alice1")

	assert.Equal(t, u.ID, u.PrincipalID())
	assert.Equal(t, "alice1", u.PrincipalLogin())
	assert.Equal(t, u.Password, u.PasswordHash())

	u.SetPasswordHash("new-hash")
	assert.Equal(t, "new-hash", u.Password)

	u.Lockout().FailedAttempts = 2
	assert.Equal(t, 2, u.FailedAttempts)
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := user.New()
	b := user.New()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.IsLockedOut)
}

func TestService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService[*user.User](user.NewMemoryRepository())
		u := newTestUser("alice1")
		require.NoError(t, svc.Create(ctx, u))

		byID, err := svc.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.Login, byID.Login)

		byLogin, err := svc.GetByLogin(ctx, "alice1")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byLogin.ID)
	})

	t.Run("get absent user", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService[*user.User](user.NewMemoryRepository())

		_, err := svc.GetByID(ctx, "missing")
		require.ErrorIs(t, err, user.ErrUserNotFound)

		_, err = svc.GetByLogin(ctx, "nobody")
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService[*user.User](user.NewMemoryRepository())
		u := newTestUser("alice1")
		require.NoError(t, svc.Create(ctx, u))

		u.Workplace = "Platform"
		require.NoError(t, svc.Update(ctx, u))

		got, err := svc.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Platform", got.Workplace)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService[*user.User](user.NewMemoryRepository())
		u := newTestUser("alice1")
		require.NoError(t, svc.Create(ctx, u))

		deleted, err := svc.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, u.ID, deleted.ID)

		_, err = svc.GetByID(ctx, u.ID)
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		svc := user.NewService[*user.User](user.NewMemoryRepository())
		require.NoError(t, svc.Create(ctx, newTestUser("alice1")))
		require.NoError(t, svc.Create(ctx, newTestUser("bob234")))

		all, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
