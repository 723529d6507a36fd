// AngelaMos | 2026
// entity.go

package student

import (
	"time"
)

type Student struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	StudentID string    `db:"student_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// EnrolledCourse is a course row reached through one of the student's
// enrollments. OwnerID is the enrolled student's id.
type EnrolledCourse struct {
	OwnerID      int64     `db:"owner_id"`
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Description  *string   `db:"description"`
	Credits      int64     `db:"credits"`
	EnrollmentID int64     `db:"enrollment_id"`
	EnrolledAt   time.Time `db:"enrolled_at"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
