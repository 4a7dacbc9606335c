package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStudentRegistered   EventType = "student_registered"
	EventStudentEnrolled     EventType = "student_enrolled"
	EventEnrollmentCancelled EventType = "enrollment_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StudentID string      `json:"student_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StudentRegisteredPayload payload.
type StudentRegisteredPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StudentEnrolledPayload payload.
type StudentEnrolledPayload struct {
	EnrollmentID string `json:"enrollment_id"`
	CourseID     string `json:"course_id"`
	CourseCode   string `json:"course_code"`
}

// EnrollmentCancelledPayload payload.
type EnrollmentCancelledPayload struct {
	EnrollmentID string `json:"enrollment_id"`
	CourseID     string `json:"course_id"`
}
