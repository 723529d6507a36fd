// AngelaMos | 2026
// service.go

package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/metrics"
)

const resource = "enrollment"

const (
	msgStudentInvalid  = "The selected student id is invalid."
	msgCourseInvalid   = "The selected course id is invalid."
	msgAlreadyEnrolled = "The student is already enrolled in this course."
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Detail, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	return s.repo.GetByID(ctx, id)
}

// Create enrolls a student in a course. Both must exist; nothing is
// written otherwise.
func (s *Service) Create(
	ctx context.Context,
	req CreateEnrollmentRequest,
) (*Detail, error) {
	fields := core.FieldErrors{}

	studentExists, err := s.repo.StudentExists(ctx, *req.StudentID)
	if err != nil {
		return nil, err
	}
	if !studentExists {
		fields.Add("student_id", msgStudentInvalid)
	}

	courseExists, err := s.repo.CourseExists(ctx, *req.CourseID)
	if err != nil {
		return nil, err
	}
	if !courseExists {
		fields.Add("course_id", msgCourseInvalid)
	}

	if fields.Any() {
		return nil, core.ValidationError(fields)
	}

	enrollment := &Enrollment{
		StudentID: *req.StudentID,
		CourseID:  *req.CourseID,
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, constraintViolation(err)
	}

	metrics.RecordWrite(resource, "create")

	detail, err := s.repo.GetByID(ctx, enrollment.ID)
	if err != nil {
		return nil, fmt.Errorf("load enrollment: %w", err)
	}
	return detail, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWrite(resource, "delete")
	return nil
}

// constraintViolation maps writes rejected by the database onto the same
// field errors the pre-checks produce.
func constraintViolation(err error) error {
	if !errors.Is(err, core.ErrDuplicateKey) && !errors.Is(err, core.ErrForeignKey) {
		return err
	}

	switch core.ConstraintName(err) {
	case constraintPair:
		return core.FieldError("course_id", msgAlreadyEnrolled)
	case constraintStudent:
		return core.FieldError("student_id", msgStudentInvalid)
	case constraintCourse:
		return core.FieldError("course_id", msgCourseInvalid)
	default:
		return err
	}
}
