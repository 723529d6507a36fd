// AngelaMos | 2026
// dto.go

package student

import (
	"time"
)

type CreateStudentRequest struct {
	Name      string `json:"name"       validate:"required,max=255"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	StudentID string `json:"student_id" validate:"required,max=255"`
}

type UpdateStudentRequest struct {
	Name      *string `json:"name"       validate:"omitnil,min=1,max=255"`
	Email     *string `json:"email"      validate:"omitnil,email,max=255"`
	StudentID *string `json:"student_id" validate:"omitnil,min=1,max=255"`
}

type StudentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StudentID string    `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EnrolledCourseResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Credits      int64     `json:"credits"`
	EnrollmentID int64     `json:"enrollment_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StudentDetailResponse struct {
	StudentResponse
	Courses []EnrolledCourseResponse `json:"courses"`
}

func ToStudentResponse(s *Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		StudentID: s.StudentID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToStudentDetailResponse(s *Student, courses []EnrolledCourse) StudentDetailResponse {
	detail := StudentDetailResponse{
		StudentResponse: ToStudentResponse(s),
		Courses:         make([]EnrolledCourseResponse, 0, len(courses)),
	}

	for _, c := range courses {
		detail.Courses = append(detail.Courses, EnrolledCourseResponse{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			Credits:      c.Credits,
			EnrollmentID: c.EnrollmentID,
			EnrolledAt:   c.EnrolledAt,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}

	return detail
}

// ToStudentDetailList pairs each student with its courses, keyed by
// student id.
func ToStudentDetailList(
	students []Student,
	courses map[int64][]EnrolledCourse,
) []StudentDetailResponse {
	responses := make([]StudentDetailResponse, 0, len(students))
	for i := range students {
		responses = append(responses,
			ToStudentDetailResponse(&students[i], courses[students[i].ID]))
	}
	return responses
}
