// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

func TestIssueAndVerify(t *testing.T) {
	m, _ := newTestTokenManager(t)

	token, issued, err := m.Issue(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issued.TokenID, claims.TokenID)
	assert.WithinDuration(t, issued.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestIssueDistinctTokenIDs(t *testing.T) {
	m, _ := newTestTokenManager(t)

	_, a, err := m.Issue(1, "user")
	require.NoError(t, err)
	_, b, err := m.Issue(1, "user")
	require.NoError(t, err)

	assert.NotEqual(t, a.TokenID, b.TokenID)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	m, _ := newTestTokenManager(t)
	other, _ := newTestTokenManager(t)

	token, _, err := m.Issue(7, "user")
	require.NoError(t, err)
	foreign, _, err := other.Issue(7, "user")
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not-a-jwt",
		"empty":          "",
		"tampered":       token[:len(token)-4] + "AAAA",
		"foreign signer": foreign,
	}

	for name, tok := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, core.ErrTokenInvalid)
		})
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	m, _ := newTestTokenManager(t)
	token, _, err := m.Issue(7, "user")
	require.NoError(t, err)

	m.config.Audience = "someone-else"
	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyExpired(t *testing.T) {
	m, _ := newTestTokenManager(t)

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(9, "user")
	require.NoError(t, err)
	m.now = time.Now

	_, err = m.Verify(context.Background(), token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestInvalidate(t *testing.T) {
	m, denylist := newTestTokenManager(t)
	ctx := context.Background()

	token, _, err := m.Issue(3, "user")
	require.NoError(t, err)
	survivor, _, err := m.Issue(3, "user")
	require.NoError(t, err)

	require.NoError(t, m.Invalidate(ctx, token))
	require.NoError(t, m.Invalidate(ctx, token))
	assert.Equal(t, 1, denylist.Len())

	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, core.ErrTokenRevoked)

	_, err = m.Verify(ctx, survivor)
	assert.NoError(t, err)
}

func TestInvalidateIgnoresUnusableTokens(t *testing.T) {
	m, denylist := newTestTokenManager(t)
	ctx := context.Background()

	assert.NoError(t, m.Invalidate(ctx, "not-a-jwt"))

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := m.Issue(3, "user")
	require.NoError(t, err)
	m.now = time.Now

	assert.NoError(t, m.Invalidate(ctx, expired))
	assert.Zero(t, denylist.Len())
}

func TestGenerateKeyPairAndLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := testJWTConfig
	cfg.PrivateKeyPath = filepath.Join(dir, "keys", "private.pem")
	cfg.PublicKeyPath = filepath.Join(dir, "keys", "public.pem")

	require.NoError(t, GenerateKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath))

	m, err := NewTokenManager(cfg, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, m.KeyID())

	token, _, err := m.Issue(5, "admin")
	require.NoError(t, err)

	claims, err := m.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
}

func TestJWKSHandler(t *testing.T) {
	m, _ := newTestTokenManager(t)

	rec := httptest.NewRecorder()
	m.JWKSHandler()(rec, httptest.NewRequest(http.MethodGet, "/.well-known/jwks.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Keys []map[string]any `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Keys, 1)
	assert.Equal(t, "EC", body.Keys[0]["kty"])
	assert.Equal(t, m.KeyID(), body.Keys[0]["kid"])
	assert.NotContains(t, body.Keys[0], "d")
}
