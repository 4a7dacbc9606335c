package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/observability"
	"github.com/spec-kit/school-service/internal/repository"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// StudentService coordinates roster workflows.
type StudentService struct {
	students repository.StudentRepository
}

// StudentInput describes creation/update payloads. Roster students carry no
// credential; registration with a password goes through AuthService.
type StudentInput struct {
	Name      string
	Email     string
	Phone     string
	BirthDate *time.Time
}

// NewStudentService constructs the service.
func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// Create adds a student without a credential.
func (s *StudentService) Create(ctx context.Context, input StudentInput) (*domain.Student, error) {
	if _, err := s.students.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	student := &domain.Student{
		Name:      strings.TrimSpace(input.Name),
		Email:     input.Email,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	observability.Ctx(ctx).Info("student created",
		zap.String("student_id", student.ID),
		zap.String("student_email", student.Email))
	return student, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": id})
		}
		return nil, err
	}
	return student, nil
}

// GetByEmail returns a student by email.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"email": email})
		}
		return nil, err
	}
	return student, nil
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

// SearchByName returns students whose name contains the term, case-insensitive.
func (s *StudentService) SearchByName(ctx context.Context, name string) ([]domain.Student, error) {
	students, err := s.students.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.NewNotFound("student", map[string]any{"name": name})
	}
	return students, nil
}

// Update replaces mutable fields of an existing student.
func (s *StudentService) Update(ctx context.Context, id string, input StudentInput) (*domain.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != student.Email {
		if _, err := s.students.GetByEmail(ctx, input.Email); err == nil {
			return nil, apperrors.NewDuplicateEmail()
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		student.Email = input.Email
	}
	if input.Name != "" {
		student.Name = strings.TrimSpace(input.Name)
	}
	if input.Phone != "" {
		student.Phone = input.Phone
	}
	if input.BirthDate != nil {
		student.BirthDate = input.BirthDate
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student and, via the schema, their enrollments.
func (s *StudentService) Delete(ctx context.Context, id string) (*domain.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return nil, err
	}
	observability.Ctx(ctx).Info("student deleted", zap.String("student_id", id))
	return student, nil
}
