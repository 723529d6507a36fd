// AngelaMos | 2026
// dto.go

package enrollment

import (
	"time"
)

type CreateEnrollmentRequest struct {
	StudentID *int64 `json:"student_id" validate:"required"`
	CourseID  *int64 `json:"course_id"  validate:"required"`
}

type StudentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	StudentID string    `json:"student_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CourseResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Credits     int64     `json:"credits"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EnrollmentResponse struct {
	ID        int64           `json:"id"`
	StudentID int64           `json:"student_id"`
	CourseID  int64           `json:"course_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Student   StudentResponse `json:"student"`
	Course    CourseResponse  `json:"course"`
}

func ToEnrollmentResponse(d *Detail) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        d.ID,
		StudentID: d.StudentID,
		CourseID:  d.CourseID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		Student: StudentResponse{
			ID:        d.Student.ID,
			Name:      d.Student.Name,
			Email:     d.Student.Email,
			StudentID: d.Student.StudentID,
			CreatedAt: d.Student.CreatedAt,
			UpdatedAt: d.Student.UpdatedAt,
		},
		Course: CourseResponse{
			ID:          d.Course.ID,
			Name:        d.Course.Name,
			Description: d.Course.Description,
			Credits:     d.Course.Credits,
			CreatedAt:   d.Course.CreatedAt,
			UpdatedAt:   d.Course.UpdatedAt,
		},
	}
}

func ToEnrollmentResponseList(details []Detail) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(details))
	for i := range details {
		responses = append(responses, ToEnrollmentResponse(&details[i]))
	}
	return responses
}
