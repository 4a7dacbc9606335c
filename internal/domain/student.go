package domain

import "time"

// Student is the domain model for enrolled or prospective students.
// PasswordHash is nil for students created through the roster endpoints;
// only students registered with a credential can authenticate.
type Student struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	BirthDate    *time.Time
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCredential reports whether the student can complete a login.
func (s *Student) HasCredential() bool {
	return s != nil && s.PasswordHash != nil && *s.PasswordHash != ""
}
