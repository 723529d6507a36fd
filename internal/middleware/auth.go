// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/metrics"
)

type contextKey string

const principalKey contextKey = "principal"

const RoleAdmin = "admin"

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID    int64
	Name      string
	Email     string
	Role      string
	TokenID   string
	Token     string
	ExpiresAt time.Time
}

type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

func Authenticator(auth TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				metrics.AuthEvent("verify", "missing_token")
				core.Unauthorized(w, "")
				return
			}

			principal, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				handleAuthError(w, r, err)
				return
			}

			metrics.AuthEvent("verify", "success")
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole admits principals whose role is one of roles. Callers
// without a principal get 401, callers without a matching role get 403.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			if principal == nil {
				core.Unauthorized(w, "")
				return
			}

			if principal.Role == "" {
				core.Forbidden(w, "")
				return
			}

			if _, ok := roleSet[principal.Role]; !ok {
				core.Forbidden(w, "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(RoleAdmin)(next)
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrTokenExpired):
		metrics.AuthEvent("verify", "expired")
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		metrics.AuthEvent("verify", "revoked")
		core.JSONError(w, core.TokenRevokedError())
	case errors.Is(err, core.ErrTokenInvalid),
		errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, core.ErrNotFound):
		metrics.AuthEvent("verify", "invalid")
		core.JSONError(w, core.TokenInvalidError())
	default:
		metrics.AuthEvent("verify", "error")
		core.Error(w, r, err)
	}
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFromContext(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey).(*Principal); ok {
		return p
	}
	return nil
}
