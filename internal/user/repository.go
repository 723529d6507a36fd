// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetRoleByID(ctx context.Context, id int64) (*Role, error)
	GetRoleByName(ctx context.Context, name string) (*Role, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `
	u.id, u.name, u.email, u.password_hash, u.role_id,
	r.name AS role_name, r.description AS role_description,
	u.created_at, u.updated_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (name, email, password_hash, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.RoleID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", core.MapDBError(err))
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.id = $1`

	var user User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, fmt.Errorf("get user: %w", core.MapDBError(err))
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1`

	var user User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, fmt.Errorf("get user by email: %w", core.MapDBError(err))
	}

	return &user, nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id int64,
	passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) GetRoleByID(ctx context.Context, id int64) (*Role, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM roles
		WHERE id = $1`

	var role Role
	if err := r.db.GetContext(ctx, &role, query, id); err != nil {
		return nil, fmt.Errorf("get role: %w", core.MapDBError(err))
	}

	return &role, nil
}

func (r *repository) GetRoleByName(
	ctx context.Context,
	name string,
) (*Role, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM roles
		WHERE name = $1`

	var role Role
	if err := r.db.GetContext(ctx, &role, query, name); err != nil {
		return nil, fmt.Errorf("get role by name: %w", core.MapDBError(err))
	}

	return &role, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, core.ErrNotFound)
}
