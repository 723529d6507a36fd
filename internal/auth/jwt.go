// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/carterperez-dev/templates/campus-api/internal/config"
	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

const accessTokenType = "access"

// TokenClaims is the verified content of an access token.
type TokenClaims struct {
	TokenID   string
	UserID    int64
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager issues and verifies ES256 access tokens. Verification is
// stateless apart from the denylist consulted for revoked token ids.
type TokenManager struct {
	privateKey jwk.Key
	publicKey  jwk.Key
	publicJWKS jwk.Set
	config     config.JWTConfig
	denylist   Denylist
	now        func() time.Time
}

func NewTokenManager(
	cfg config.JWTConfig,
	denylist Denylist,
) (*TokenManager, error) {
	privateKeyPEM, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	privateKey, err := jwk.ParseKey(privateKeyPEM, jwk.WithPEM(true))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return newTokenManager(privateKey, cfg, denylist)
}

// NewTokenManagerFromKey builds a manager around an in-memory key.
func NewTokenManagerFromKey(
	key *ecdsa.PrivateKey,
	cfg config.JWTConfig,
	denylist Denylist,
) (*TokenManager, error) {
	privateKey, err := jwk.Import(key)
	if err != nil {
		return nil, fmt.Errorf("import private key: %w", err)
	}

	return newTokenManager(privateKey, cfg, denylist)
}

func newTokenManager(
	privateKey jwk.Key,
	cfg config.JWTConfig,
	denylist Denylist,
) (*TokenManager, error) {
	if denylist == nil {
		denylist = NewMemoryDenylist()
	}

	if err := privateKey.Set(jwk.AlgorithmKey, jwa.ES256()); err != nil {
		return nil, fmt.Errorf("set algorithm: %w", err)
	}

	var kid string
	if err := privateKey.Get(jwk.KeyIDKey, &kid); err != nil || kid == "" {
		if err := privateKey.Set(jwk.KeyIDKey, uuid.NewString()[:8]); err != nil {
			return nil, fmt.Errorf("set key id: %w", err)
		}
	}

	publicKey, err := privateKey.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("derive public key: %w", err)
	}

	if err := publicKey.Set(jwk.KeyUsageKey, "sig"); err != nil {
		return nil, fmt.Errorf("set key usage: %w", err)
	}

	publicJWKS := jwk.NewSet()
	if err := publicJWKS.AddKey(publicKey); err != nil {
		return nil, fmt.Errorf("add key to set: %w", err)
	}

	return &TokenManager{
		privateKey: privateKey,
		publicKey:  publicKey,
		publicJWKS: publicJWKS,
		config:     cfg,
		denylist:   denylist,
		now:        time.Now,
	}, nil
}

func GenerateKeyPair(privateKeyPath, publicKeyPath string) error {
	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	jwkPrivate, err := jwk.Import(privateKey)
	if err != nil {
		return fmt.Errorf("import private key: %w", err)
	}

	privatePEM, err := jwk.Pem(jwkPrivate)
	if err != nil {
		return fmt.Errorf("encode private key: %w", err)
	}

	jwkPublic, err := jwkPrivate.PublicKey()
	if err != nil {
		return fmt.Errorf("derive public key: %w", err)
	}

	publicPEM, err := jwk.Pem(jwkPublic)
	if err != nil {
		return fmt.Errorf("encode public key: %w", err)
	}

	for _, path := range []string{privateKeyPath, publicKeyPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return fmt.Errorf("create key directory: %w", err)
		}
	}

	if err := os.WriteFile(privateKeyPath, privatePEM, 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}

	//nolint:gosec // G306: public key is intentionally world-readable
	if err := os.WriteFile(publicKeyPath, publicPEM, 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	return nil
}

// Issue signs a new access token for userID carrying role as a claim.
func (m *TokenManager) Issue(userID int64, role string) (string, *TokenClaims, error) {
	now := m.now()
	claims := &TokenClaims{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.config.AccessTokenExpire),
	}

	token, err := jwt.NewBuilder().
		JwtID(claims.TokenID).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(strconv.FormatInt(userID, 10)).
		IssuedAt(now).
		Expiration(claims.ExpiresAt).
		NotBefore(now).
		Claim("role", role).
		Claim("type", accessTokenType).
		Build()
	if err != nil {
		return "", nil, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.ES256(), m.privateKey))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return string(signed), claims, nil
}

func (m *TokenManager) Verify(
	ctx context.Context,
	tokenString string,
) (*TokenClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.ES256(), m.publicKey),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(m.now)),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
	)
	if err != nil {
		if m.isExpired(tokenString) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w: %w", core.ErrTokenInvalid, err)
	}

	claims, err := claimsFrom(token)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	revoked, err := m.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	return claims, nil
}

// Invalidate revokes a token for the rest of its lifetime. Tokens that do
// not carry a valid signature or have already expired need no entry.
func (m *TokenManager) Invalidate(ctx context.Context, tokenString string) error {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.ES256(), m.publicKey),
		jwt.WithValidate(false),
	)
	if err != nil {
		return nil //nolint:nilerr // an unverifiable token cannot be used anyway
	}

	jti, ok := token.JwtID()
	if !ok || jti == "" {
		return nil
	}

	exp, ok := token.Expiration()
	if !ok || !exp.After(m.now()) {
		return nil
	}

	if err := m.denylist.Revoke(ctx, jti, exp); err != nil {
		return fmt.Errorf("invalidate token: %w", err)
	}

	return nil
}

func (m *TokenManager) isExpired(tokenString string) bool {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.ES256(), m.publicKey),
		jwt.WithValidate(false),
	)
	if err != nil {
		return false
	}

	exp, ok := token.Expiration()
	return ok && !exp.After(m.now())
}

func claimsFrom(token jwt.Token) (*TokenClaims, error) {
	var tokenType string
	if err := token.Get("type", &tokenType); err != nil || tokenType != accessTokenType {
		return nil, fmt.Errorf("invalid token type: %w", core.ErrTokenInvalid)
	}

	jti, ok := token.JwtID()
	if !ok || jti == "" {
		return nil, fmt.Errorf("missing jti: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok {
		return nil, fmt.Errorf("missing subject: %w", core.ErrTokenInvalid)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("malformed subject: %w", core.ErrTokenInvalid)
	}

	var role string
	//nolint:errcheck // users without a role carry an empty claim
	_ = token.Get("role", &role)

	issuedAt, _ := token.IssuedAt()
	expiresAt, _ := token.Expiration()

	return &TokenClaims{
		TokenID:   jti,
		UserID:    userID,
		Role:      role,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (m *TokenManager) JWKSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "public, max-age=3600")

		if err := json.NewEncoder(w).Encode(m.publicJWKS); err != nil {
			core.InternalServerError(w, err)
		}
	}
}

func (m *TokenManager) KeyID() string {
	var kid string
	//nolint:errcheck // key id is always set by newTokenManager
	_ = m.privateKey.Get(jwk.KeyIDKey, &kid)
	return kid
}

func (m *TokenManager) TokenLifetime() time.Duration {
	return m.config.AccessTokenExpire
}
