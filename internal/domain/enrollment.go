package domain

import "time"

// Enrollment links a student to a course. The (StudentID, CourseID)
// pair is unique while the enrollment is active.
type Enrollment struct {
	ID         string
	StudentID  string
	CourseID   string
	EnrolledAt time.Time
}
