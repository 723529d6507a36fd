// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

const RoleUser = "user"

type Role struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// User is a users row joined with its role. The role columns are NULL when
// the user has none.
type User struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	PasswordHash    string    `db:"password_hash"`
	RoleID          *int64    `db:"role_id"`
	RoleName        *string   `db:"role_name"`
	RoleDescription *string   `db:"role_description"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
