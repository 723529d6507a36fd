// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "secret123")

	ok, err := VerifyPassword("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	a, err := HashPassword("secret123")
	require.NoError(t, err)
	b, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	for _, hash := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=1$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	} {
		ok, err := VerifyPassword("secret123", hash)
		assert.ErrorIs(t, err, ErrInvalidHash, hash)
		assert.False(t, ok)
	}
}

func TestVerifyPasswordWithRehash(t *testing.T) {
	salt := []byte("0123456789abcdef")
	weak := argon2.IDKey([]byte("secret123"), salt, 1, 8*1024, 1, argonKeyLen)
	stored := encodeHash(argonParams{
		memory:  8 * 1024,
		time:    1,
		threads: 1,
		keyLen:  argonKeyLen,
	}, salt, weak)

	require.True(t, NeedsRehash(stored))

	ok, newHash, err := VerifyPasswordWithRehash("secret123", stored)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotEmpty(t, newHash)
	assert.False(t, NeedsRehash(newHash))

	ok, newHash, err = VerifyPasswordWithRehash("nope", stored)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, newHash)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	ok, _, err := VerifyPasswordTimingSafe("secret123", &hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _, err = VerifyPasswordTimingSafe("secret123", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := ""
	ok, _, err = VerifyPasswordTimingSafe("campus-api-dummy-credential", &empty)
	require.NoError(t, err)
	assert.False(t, ok)
}
