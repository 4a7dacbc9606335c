package dto

import (
	"time"

	"github.com/spec-kit/school-service/internal/domain"
)

const birthDateLayout = "2006-01-02"

// StudentRequest is the payload for creating or updating a roster student.
type StudentRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date,omitempty"`
}

// StudentResponse is the canonical student representation, id included.
type StudentResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	BirthDate *string `json:"birth_date,omitempty"`
}

// NewStudentResponse maps a domain student onto the wire shape.
func NewStudentResponse(student *domain.Student) StudentResponse {
	resp := StudentResponse{
		ID:    student.ID,
		Name:  student.Name,
		Email: student.Email,
		Phone: student.Phone,
	}
	if student.BirthDate != nil {
		formatted := student.BirthDate.Format(birthDateLayout)
		resp.BirthDate = &formatted
	}
	return resp
}

// ParseBirthDate parses the optional YYYY-MM-DD birth date field.
func ParseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
