// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/metrics"
	"github.com/carterperez-dev/templates/campus-api/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	msgEmailTaken  = "The email has already been taken."
	msgRoleInvalid = "The selected role id is invalid."
)

type RoleInfo struct {
	ID          int64
	Name        string
	Description *string
}

type UserInfo struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	RoleID       *int64
	Role         *RoleInfo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *UserInfo) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// UserProvider is the credential store the auth flows run against.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id int64) (*UserInfo, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	RoleExists(ctx context.Context, roleID int64) (bool, error)
	DefaultRoleID(ctx context.Context) (*int64, error)
	Create(
		ctx context.Context,
		name, email, passwordHash string,
		roleID *int64,
	) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type Service struct {
	tokens *TokenManager
	users  UserProvider
}

func NewService(tokens *TokenManager, users UserProvider) *Service {
	return &Service{
		tokens: tokens,
		users:  users,
	}
}

var _ middleware.TokenAuthenticator = (*Service)(nil)

func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	fields := core.FieldErrors{}

	taken, err := s.users.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		fields.Add("email", msgEmailTaken)
	}

	roleID := req.RoleID
	if roleID != nil {
		exists, err := s.users.RoleExists(ctx, *roleID)
		if err != nil {
			return nil, fmt.Errorf("check role: %w", err)
		}
		if !exists {
			fields.Add("role_id", msgRoleInvalid)
		}
	}

	if fields.Any() {
		metrics.AuthEvent("register", "invalid")
		return nil, core.ValidationError(fields)
	}

	if roleID == nil {
		roleID, err = s.users.DefaultRoleID(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve default role: %w", err)
		}
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.Name, req.Email, passwordHash, roleID)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			metrics.AuthEvent("register", "invalid")
			return nil, core.FieldError("email", msgEmailTaken)
		}
		if errors.Is(err, core.ErrForeignKey) {
			metrics.AuthEvent("register", "invalid")
			return nil, core.FieldError("role_id", msgRoleInvalid)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.AuthEvent("register", "success")
	return s.authResponse(user)
}

func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // equal work for unknown accounts
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			metrics.AuthEvent("login", "invalid_credentials")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		metrics.AuthEvent("login", "invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		if err := s.users.UpdatePassword(ctx, user.ID, newHash); err != nil {
			slog.WarnContext(ctx, "password rehash failed",
				"user_id", user.ID,
				"error", err,
			)
		}
	}

	metrics.AuthEvent("login", "success")
	return s.authResponse(user)
}

// CurrentUser resolves the user a bearer token was issued to.
func (s *Service) CurrentUser(
	ctx context.Context,
	token string,
) (*UserResponse, error) {
	claims, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.loadTokenUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *Service) GetUser(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Logout revokes token. Repeating it, or passing a token that no longer
// verifies, is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Invalidate(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	metrics.AuthEvent("logout", "success")
	return nil
}

// Authenticate verifies token and loads the caller with the role currently
// assigned in the credential store.
func (s *Service) Authenticate(
	ctx context.Context,
	token string,
) (*middleware.Principal, error) {
	claims, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.loadTokenUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return &middleware.Principal{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.RoleName(),
		TokenID:   claims.TokenID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (s *Service) loadTokenUser(ctx context.Context, userID int64) (*UserInfo, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("token subject: %w", core.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *Service) authResponse(user *UserInfo) (*AuthResponse, error) {
	token, claims, err := s.tokens.Issue(user.ID, user.RoleName())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		User:      ToUserResponse(user),
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
