package domain

import "time"

// Course is the domain model for offered courses. Code is the
// externally-visible unique identifier.
type Course struct {
	ID          string
	Name        string
	Code        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
