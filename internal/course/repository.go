// AngelaMos | 2026
// repository.go

package course

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

type Repository interface {
	List(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id int64) (*Course, error)
	ListStudents(ctx context.Context, courseID int64) ([]EnrolledStudent, error)
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const courseColumns = `id, name, description, credits, created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY id`

	courses := []Course{}
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	return courses, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	var course Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, fmt.Errorf("get course: %w", core.MapDBError(err))
	}

	return &course, nil
}

func (r *repository) ListStudents(
	ctx context.Context,
	courseID int64,
) ([]EnrolledStudent, error) {
	query := `
		SELECT
			s.id, s.name, s.email, s.student_id, s.created_at, s.updated_at,
			e.id AS enrollment_id, e.created_at AS enrolled_at
		FROM enrollments e
		JOIN students s ON s.id = e.student_id
		WHERE e.course_id = $1
		ORDER BY s.id`

	students := []EnrolledStudent{}
	if err := r.db.SelectContext(ctx, &students, query, courseID); err != nil {
		return nil, fmt.Errorf("list course students: %w", err)
	}

	return students, nil
}

func (r *repository) Create(ctx context.Context, course *Course) error {
	query := `
		INSERT INTO courses (name, description, credits)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		course.Name,
		course.Description,
		course.Credits,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create course: %w", core.MapDBError(err))
	}

	return nil
}

func (r *repository) Update(ctx context.Context, course *Course) error {
	query := `
		UPDATE courses
		SET name = $2, description = $3, credits = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		course.ID,
		course.Name,
		course.Description,
		course.Credits,
	).Scan(&course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update course: %w", core.MapDBError(err))
	}

	return nil
}

// Delete removes the course along with its enrollments.
func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete course: %w", core.ErrNotFound)
	}

	return nil
}
