// AngelaMos | 2026
// dto.go

package course

import (
	"time"

	"github.com/carterperez-dev/templates/campus-api/internal/core"
)

type CreateCourseRequest struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	Description *string `json:"description"`
	Credits     *int64  `json:"credits"     validate:"required,min=1,max=2147483647"`
}

type UpdateCourseRequest struct {
	Name        *string               `json:"name"        validate:"omitnil,min=1,max=255"`
	Description core.Nullable[string] `json:"description"`
	Credits     core.Nullable[int64]  `json:"credits"     validate:"omitnil,min=1,max=2147483647"`
}

// ValidateFields rejects a null credits value. Only description may be
// cleared.
func (r UpdateCourseRequest) ValidateFields() core.FieldErrors {
	fields := core.FieldErrors{}
	if r.Credits.IsNull() {
		fields.Add("credits", "The credits field must be an integer.")
	}
	return fields
}

type CourseResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Credits     int64     `json:"credits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EnrolledStudentResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	StudentID    string    `json:"student_id"`
	EnrollmentID int64     `json:"enrollment_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CourseDetailResponse struct {
	CourseResponse
	Students []EnrolledStudentResponse `json:"students"`
}

func ToCourseResponse(c *Course) CourseResponse {
	return CourseResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Credits:     c.Credits,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToCourseResponseList(courses []Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, ToCourseResponse(&courses[i]))
	}
	return responses
}

func ToCourseDetailResponse(c *Course, students []EnrolledStudent) CourseDetailResponse {
	detail := CourseDetailResponse{
		CourseResponse: ToCourseResponse(c),
		Students:       make([]EnrolledStudentResponse, 0, len(students)),
	}

	for _, s := range students {
		detail.Students = append(detail.Students, EnrolledStudentResponse{
			ID:           s.ID,
			Name:         s.Name,
			Email:        s.Email,
			StudentID:    s.StudentID,
			EnrollmentID: s.EnrollmentID,
			EnrolledAt:   s.EnrolledAt,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}

	return detail
}
