package dto

import (
	"time"

	"github.com/spec-kit/school-service/internal/domain"
)

// EnrollmentRequest is the payload for enrolling a student in a course.
type EnrollmentRequest struct {
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`
}

// EnrollmentResponse is the enrollment wire shape.
type EnrollmentResponse struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// NewEnrollmentResponse maps a domain enrollment onto the wire shape.
func NewEnrollmentResponse(enrollment *domain.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         enrollment.ID,
		StudentID:  enrollment.StudentID,
		CourseID:   enrollment.CourseID,
		EnrolledAt: enrollment.EnrolledAt,
	}
}
