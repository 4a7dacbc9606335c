package dto

import "github.com/spec-kit/school-service/internal/domain"

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CourseResponse is the course wire shape.
type CourseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// NewCourseResponse maps a domain course onto the wire shape.
func NewCourseResponse(course *domain.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Code:        course.Code,
		Description: course.Description,
	}
}
