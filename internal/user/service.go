// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/carterperez-dev/templates/campus-api/internal/auth"
)

// Service is the credential store behind the auth flows.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ auth.UserProvider = (*Service)(nil)

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserInfo(user), nil
}

func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, normalizeEmail(email))
}

func (s *Service) RoleExists(ctx context.Context, roleID int64) (bool, error) {
	_, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DefaultRoleID returns the id of the "user" role, or nil when the role
// has not been seeded.
func (s *Service) DefaultRoleID(ctx context.Context) (*int64, error) {
	role, err := s.repo.GetRoleByName(ctx, RoleUser)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &role.ID, nil
}

func (s *Service) Create(
	ctx context.Context,
	name, email, passwordHash string,
	roleID *int64,
) (*auth.UserInfo, error) {
	user := &User{
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		RoleID:       roleID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if roleID != nil {
		role, err := s.repo.GetRoleByID(ctx, *roleID)
		if err != nil {
			return nil, fmt.Errorf("load role: %w", err)
		}
		user.RoleName = &role.Name
		user.RoleDescription = role.Description
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID int64,
	passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserInfo(u *User) *auth.UserInfo {
	info := &auth.UserInfo{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		RoleID:       u.RoleID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	if u.RoleID != nil && u.RoleName != nil {
		info.Role = &auth.RoleInfo{
			ID:          *u.RoleID,
			Name:        *u.RoleName,
			Description: u.RoleDescription,
		}
	}

	return info
}
