package secure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbrandao/authkit/pkg/secure"
)

type testPrincipal struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

var testConfig = secure.Config{
	Key: "0123456789abcdef0123456789abcdef", // 32 bytes
	IV:  "fedcba9876543210",                 // 16 bytes
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid key sizes", func(t *testing.T) {
		t.Parallel()

		for _, key := range []string{
			"0123456789abcdef",                 // 16
			"0123456789abcdef01234567",         // 24
			"0123456789abcdef0123456789abcdef", // 32
		} {
			codec, err := secure.New[testPrincipal](secure.Config{Key: key, IV: testConfig.IV})
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("invalid key size", func(t *testing.T) {
		t.Parallel()

		_, err := secure.New[testPrincipal](secure.Config{Key: "short", IV: testConfig.IV})
		require.ErrorIs(t, err, secure.ErrInvalidKey)
	})

	t.Run("invalid iv size", func(t *testing.T) {
		t.Parallel()

		_, err := secure.New[testPrincipal](secure.Config{Key: testConfig.Key, IV: "tiny"})
		require.ErrorIs(t, err, secure.ErrInvalidIV)
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := secure.New[testPrincipal](testConfig)
	require.NoError(t, err)

	original := testPrincipal{
		ID:        "u-1",
		Login:     "alice1",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}

	envelope, err := codec.Serialize(original)
	require.NoError(t, err)
	require.NotEmpty(t, envelope)
	assert.NotContains(t, envelope, "alice1", "envelope must not leak plaintext")

	decoded, err := codec.Deserialize(envelope)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestCodec_Deserialize(t *testing.T) {
	t.Parallel()

	codec, err := secure.New[testPrincipal](testConfig)
	require.NoError(t, err)

	t.Run("not base64", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Deserialize("%%% not base64 %%%")
		require.ErrorIs(t, err, secure.ErrDecodeFailed)
	})

	t.Run("empty envelope", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Deserialize("")
		require.ErrorIs(t, err, secure.ErrDecodeFailed)
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		t.Parallel()

		envelope, err := codec.Serialize(testPrincipal{Login: "alice1"})
		require.NoError(t, err)

		_, err = codec.Deserialize(envelope[:len(envelope)/2])
		require.ErrorIs(t, err, secure.ErrDecodeFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Parallel()

		envelope, err := codec.Serialize(testPrincipal{Login: "alice1"})
		require.NoError(t, err)

		other, err := secure.New[testPrincipal](secure.Config{
			Key: "ffffffffffffffffffffffffffffffff",
			IV:  testConfig.IV,
		})
		require.NoError(t, err)

		_, err = other.Deserialize(envelope)
		require.ErrorIs(t, err, secure.ErrDecodeFailed)
	})
}
