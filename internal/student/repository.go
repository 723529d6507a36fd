// AngelaMos | 2026
// repository.go

package student

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

const (
	constraintEmail     = "students_email_key"
	constraintStudentID = "students_student_id_key"
)

type Repository interface {
	List(ctx context.Context) ([]Student, error)
	GetByID(ctx context.Context, id int64) (*Student, error)
	ListCourses(ctx context.Context, studentIDs []int64) ([]EnrolledCourse, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	StudentIDTaken(ctx context.Context, studentID string, exceptID int64) (bool, error)
	Create(ctx context.Context, student *Student) error
	Update(ctx context.Context, student *Student) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const studentColumns = `id, name, email, student_id, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY id`

	students := []Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	return students, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	var student Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, fmt.Errorf("get student: %w", core.MapDBError(err))
	}

	return &student, nil
}

// ListCourses returns the courses every student in studentIDs is enrolled
// in, in one round trip.
func (r *repository) ListCourses(
	ctx context.Context,
	studentIDs []int64,
) ([]EnrolledCourse, error) {
	courses := []EnrolledCourse{}
	if len(studentIDs) == 0 {
		return courses, nil
	}

	query, args, err := sqlx.In(`
		SELECT
			e.student_id AS owner_id,
			c.id, c.name, c.description, c.credits, c.created_at, c.updated_at,
			e.id AS enrollment_id, e.created_at AS enrolled_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id IN (?)
		ORDER BY e.student_id, c.id`, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("build student courses query: %w", err)
	}

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if err := r.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list student courses: %w", err)
	}

	return courses, nil
}

func (r *repository) EmailTaken(
	ctx context.Context,
	email string,
	exceptID int64,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id <> $2)`

	var taken bool
	if err := r.db.GetContext(ctx, &taken, query, email, exceptID); err != nil {
		return false, fmt.Errorf("check student email: %w", err)
	}

	return taken, nil
}

func (r *repository) StudentIDTaken(
	ctx context.Context,
	studentID string,
	exceptID int64,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1 AND id <> $2)`

	var taken bool
	if err := r.db.GetContext(ctx, &taken, query, studentID, exceptID); err != nil {
		return false, fmt.Errorf("check student id: %w", err)
	}

	return taken, nil
}

func (r *repository) Create(ctx context.Context, student *Student) error {
	query := `
		INSERT INTO students (name, email, student_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		student.Name,
		student.Email,
		student.StudentID,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create student: %w", core.MapDBError(err))
	}

	return nil
}

func (r *repository) Update(ctx context.Context, student *Student) error {
	query := `
		UPDATE students
		SET name = $2, email = $3, student_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		student.ID,
		student.Name,
		student.Email,
		student.StudentID,
	).Scan(&student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update student: %w", core.MapDBError(err))
	}

	return nil
}

// Delete removes the student along with its enrollments.
func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete student: %w", core.ErrNotFound)
	}

	return nil
}
