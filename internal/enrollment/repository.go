// AngelaMos | 2026
// repository.go

package enrollment

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

const (
	constraintPair    = "enrollments_student_course_key"
	constraintStudent = "enrollments_student_id_fkey"
	constraintCourse  = "enrollments_course_id_fkey"
)

type Repository interface {
	List(ctx context.Context) ([]Detail, error)
	GetByID(ctx context.Context, id int64) (*Detail, error)
	StudentExists(ctx context.Context, id int64) (bool, error)
	CourseExists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, enrollment *Enrollment) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const detailQuery = `
	SELECT
		e.id, e.student_id, e.course_id, e.created_at, e.updated_at,
		s.id AS "student.id",
		s.name AS "student.name",
		s.email AS "student.email",
		s.student_id AS "student.student_id",
		s.created_at AS "student.created_at",
		s.updated_at AS "student.updated_at",
		c.id AS "course.id",
		c.name AS "course.name",
		c.description AS "course.description",
		c.credits AS "course.credits",
		c.created_at AS "course.created_at",
		c.updated_at AS "course.updated_at"
	FROM enrollments e
	JOIN students s ON s.id = e.student_id
	JOIN courses c ON c.id = e.course_id`

func (r *repository) List(ctx context.Context) ([]Detail, error) {
	details := []Detail{}
	if err := r.db.SelectContext(ctx, &details, detailQuery+` ORDER BY e.id`); err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	return details, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Detail, error) {
	var detail Detail
	if err := r.db.GetContext(ctx, &detail, detailQuery+` WHERE e.id = $1`, id); err != nil {
		return nil, fmt.Errorf("get enrollment: %w", core.MapDBError(err))
	}

	return &detail, nil
}

func (r *repository) StudentExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check student: %w", err)
	}
	return exists, nil
}

func (r *repository) CourseExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check course: %w", err)
	}
	return exists, nil
}

func (r *repository) Create(ctx context.Context, enrollment *Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		enrollment.StudentID,
		enrollment.CourseID,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create enrollment: %w", core.MapDBError(err))
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete enrollment: %w", core.ErrNotFound)
	}

	return nil
}
