// AngelaMos | 2026
// entity.go

package enrollment

import (
	"time"
)

type Enrollment struct {
	ID        int64     `db:"id"`
	StudentID int64     `db:"student_id"`
	CourseID  int64     `db:"course_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type StudentRef struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	StudentID string    `db:"student_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CourseRef struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Credits     int64     `db:"credits"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// Detail is an enrollment with its student and course, scanned from
// "student.*" and "course.*" column aliases.
type Detail struct {
	Enrollment
	Student StudentRef `db:"student"`
	Course  CourseRef  `db:"course"`
}
