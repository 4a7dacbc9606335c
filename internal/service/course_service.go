package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/observability"
	"github.com/spec-kit/school-service/internal/repository"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// CourseService coordinates course catalog workflows.
type CourseService struct {
	courses repository.CourseRepository
}

// CourseInput describes creation/update payloads.
type CourseInput struct {
	Name        string
	Code        string
	Description string
}

// NewCourseService constructs the service.
func NewCourseService(courses repository.CourseRepository) *CourseService {
	return &CourseService{courses: courses}
}

// Create adds a course with a unique code.
func (s *CourseService) Create(ctx context.Context, input CourseInput) (*domain.Course, error) {
	code := strings.TrimSpace(input.Code)
	if _, err := s.courses.GetByCode(ctx, code); err == nil {
		return nil, apperrors.NewConflict("course code already exists", map[string]any{"code": code})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	course := &domain.Course{
		Name:        strings.TrimSpace(input.Name),
		Code:        code,
		Description: input.Description,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	observability.Ctx(ctx).Info("course created",
		zap.String("course_id", course.ID),
		zap.String("course_code", course.Code))
	return course, nil
}

// Get returns a course by code.
func (s *CourseService) Get(ctx context.Context, code string) (*domain.Course, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", map[string]any{"code": code})
		}
		return nil, err
	}
	return course, nil
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

// Update replaces mutable fields of an existing course. Code is immutable.
func (s *CourseService) Update(ctx context.Context, code string, input CourseInput) (*domain.Course, error) {
	course, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		course.Name = strings.TrimSpace(input.Name)
	}
	if input.Description != "" {
		course.Description = input.Description
	}

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course by code.
func (s *CourseService) Delete(ctx context.Context, code string) (*domain.Course, error) {
	course, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.courses.DeleteByCode(ctx, code); err != nil {
		return nil, err
	}
	observability.Ctx(ctx).Info("course deleted", zap.String("course_code", code))
	return course, nil
}
