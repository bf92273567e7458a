package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrandao/authkit/pkg/jwt"
)

var testCfg = jwt.Config{
	SigningKey: "test-signing-key",
	Issuer:     "authkit-test",
	Audience:   "authkit-clients",
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("with valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(testCfg)
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("with missing signing key", func(t *testing.T) {
		t.Parallel()

		svc, err := jwt.New(jwt.Config{Issuer: "x", Audience: "y"})
		require.ErrorIs(t, err, jwt.ErrMissingSigningKey)
		require.Nil(t, svc)
	})
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	svc, err := jwt.New(testCfg)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		jti := uuid.NewString()
		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice1",
			ID:        jti,
			ExpiresAt: time.Now().Add(30 * time.Minute).Unix(),
		})
		require.NoError(t, err)
		require.Len(t, strings.Split(token, "."), 3)

		claims, err := svc.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "alice1", claims.Subject)
		assert.Equal(t, jti, claims.ID)
		assert.Equal(t, testCfg.Issuer, claims.Issuer)
		assert.Equal(t, testCfg.Audience, claims.Audience)
		assert.NotZero(t, claims.IssuedAt)
	})

	t.Run("malformed token", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Parse("only.two")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice1",
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
		})
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

		_, err = svc.Parse(tampered)
		require.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice1",
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
		})
		require.NoError(t, err)

		other, err := svc.Generate(jwt.Claims{
			Subject:   "mallory",
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
		})
		require.NoError(t, err)

		// Claims from one token with the signature of another.
		spliced := strings.Split(other, ".")[0] + "." + strings.Split(other, ".")[1] + "." + strings.Split(token, ".")[2]
		_, err = svc.Parse(spliced)
		require.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice1",
			ExpiresAt: time.Now().Add(-time.Second).Unix(),
		})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("not yet valid token", func(t *testing.T) {
		t.Parallel()

		token, err := svc.Generate(jwt.Claims{
			Subject:   "alice1",
			NotBefore: time.Now().Add(time.Hour).Unix(),
			ExpiresAt: time.Now().Add(2 * time.Hour).Unix(),
		})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		t.Parallel()

		other, err := jwt.New(jwt.Config{
			SigningKey: testCfg.SigningKey,
			Issuer:     "someone-else",
			Audience:   testCfg.Audience,
		})
		require.NoError(t, err)

		token, err := other.Generate(jwt.Claims{
			Subject:   "alice1",
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
		})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		require.ErrorIs(t, err, jwt.ErrInvalidIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		t.Parallel()

		other, err := jwt.New(jwt.Config{
			SigningKey: testCfg.SigningKey,
			Issuer:     testCfg.Issuer,
			Audience:   "another-app",
		})
		require.NoError(t, err)

		token, err := other.Generate(jwt.Claims{
			Subject:   "alice1",
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
		})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		require.ErrorIs(t, err, jwt.ErrInvalidAudience)
	})

	t.Run("foreign signing key", func(t *testing.T) {
		t.Parallel()

		other, err := jwt.New(jwt.Config{
			SigningKey: "different-key",
			Issuer:     testCfg.Issuer,
			Audience:   testCfg.Audience,
		})
		require.NoError(t, err)

		token, err := other.Generate(jwt.Claims{
			Subject:   "alice1",
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
		})
		require.NoError(t, err)

		_, err = svc.Parse(token)
		require.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})
}
