// AngelaMos | 2026
// entity.go

package course

import (
	"time"
)

type Course struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Credits     int64     `db:"credits"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EnrolledStudent is a student row reached through an enrollment.
type EnrolledStudent struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	StudentID    string    `db:"student_id"`
	EnrollmentID int64     `db:"enrollment_id"`
	EnrolledAt   time.Time `db:"enrolled_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
