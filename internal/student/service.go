// AngelaMos | 2026
// service.go

package student

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
	"github.com/carterperez-dev/templates/campus-api/internal/metrics"
)

const resource = "student"

const (
	msgEmailTaken     = "The email has already been taken."
	msgStudentIDTaken = "The student id has already been taken."
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every student with the courses each is enrolled in.
func (s *Service) List(
	ctx context.Context,
) ([]Student, map[int64][]EnrolledCourse, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(students))
	for _, st := range students {
		ids = append(ids, st.ID)
	}

	courses, err := s.repo.ListCourses(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("load courses: %w", err)
	}

	byStudent := make(map[int64][]EnrolledCourse, len(students))
	for _, c := range courses {
		byStudent[c.OwnerID] = append(byStudent[c.OwnerID], c)
	}

	return students, byStudent, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Student, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetWithCourses(
	ctx context.Context,
	id int64,
) (*Student, []EnrolledCourse, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	courses, err := s.repo.ListCourses(ctx, []int64{id})
	if err != nil {
		return nil, nil, fmt.Errorf("load courses: %w", err)
	}

	return student, courses, nil
}

func (s *Service) Create(
	ctx context.Context,
	req CreateStudentRequest,
) (*Student, error) {
	if err := s.checkUnique(ctx, &req.Email, &req.StudentID, 0); err != nil {
		return nil, err
	}

	student := &Student{
		Name:      req.Name,
		Email:     req.Email,
		StudentID: req.StudentID,
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, uniqueViolation(err)
	}

	metrics.RecordWrite(resource, "create")
	return student, nil
}

// Update applies req to an already loaded student. Uniqueness is checked
// against every other student, so resubmitting the student's own email or
// student id is accepted.
func (s *Service) Update(
	ctx context.Context,
	student *Student,
	req UpdateStudentRequest,
) (*Student, error) {
	if err := s.checkUnique(ctx, req.Email, req.StudentID, student.ID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.StudentID != nil {
		student.StudentID = *req.StudentID
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, uniqueViolation(err)
	}

	metrics.RecordWrite(resource, "update")
	return student, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWrite(resource, "delete")
	return nil
}

func (s *Service) checkUnique(
	ctx context.Context,
	email, studentID *string,
	exceptID int64,
) error {
	fields := core.FieldErrors{}

	if email != nil {
		taken, err := s.repo.EmailTaken(ctx, *email, exceptID)
		if err != nil {
			return err
		}
		if taken {
			fields.Add("email", msgEmailTaken)
		}
	}

	if studentID != nil {
		taken, err := s.repo.StudentIDTaken(ctx, *studentID, exceptID)
		if err != nil {
			return err
		}
		if taken {
			fields.Add("student_id", msgStudentIDTaken)
		}
	}

	if fields.Any() {
		return core.ValidationError(fields)
	}
	return nil
}

// uniqueViolation reports a write that lost a race with a concurrent one
// the same way the pre-check would have.
func uniqueViolation(err error) error {
	if !errors.Is(err, core.ErrDuplicateKey) {
		return err
	}

	switch core.ConstraintName(err) {
	case constraintEmail:
		return core.FieldError("email", msgEmailTaken)
	case constraintStudentID:
		return core.FieldError("student_id", msgStudentIDTaken)
	default:
		return err
	}
}
