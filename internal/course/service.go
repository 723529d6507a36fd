// AngelaMos | 2026
// service.go

package course

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/templates/campus-api/internal/metrics"
)

const resource = "course"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Course, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Course, error) {
	return s.repo.GetByID(ctx, id)
}

// GetWithStudents loads a course and every student enrolled in it.
func (s *Service) GetWithStudents(
	ctx context.Context,
	id int64,
) (*Course, []EnrolledStudent, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	students, err := s.repo.ListStudents(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load students: %w", err)
	}

	return course, students, nil
}

func (s *Service) Create(
	ctx context.Context,
	req CreateCourseRequest,
) (*Course, error) {
	course := &Course{
		Name:        req.Name,
		Description: req.Description,
		Credits:     *req.Credits,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}

	metrics.RecordWrite(resource, "create")
	return course, nil
}

// Update applies req to an already loaded course.
func (s *Service) Update(
	ctx context.Context,
	course *Course,
	req UpdateCourseRequest,
) (*Course, error) {
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Description.Set {
		course.Description = req.Description.Ptr()
	}
	if credits := req.Credits.Ptr(); credits != nil {
		course.Credits = *credits
	}

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}

	metrics.RecordWrite(resource, "update")
	return course, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordWrite(resource, "delete")
	return nil
}
