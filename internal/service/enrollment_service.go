package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/observability"
	"github.com/spec-kit/school-service/internal/repository"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// EnrollmentService coordinates enrollment workflows.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	students    repository.StudentRepository
	courses     repository.CourseRepository
	dispatcher  events.Dispatcher
}

// EnrollmentDependencies bundles repositories for the enrollment service.
type EnrollmentDependencies struct {
	EnrollmentRepo repository.EnrollmentRepository
	StudentRepo    repository.StudentRepository
	CourseRepo     repository.CourseRepository
	Dispatcher     events.Dispatcher
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(deps EnrollmentDependencies) *EnrollmentService {
	return &EnrollmentService{
		enrollments: deps.EnrollmentRepo,
		students:    deps.StudentRepo,
		courses:     deps.CourseRepo,
		dispatcher:  deps.Dispatcher,
	}
}

// Enroll links a student to a course. Both must exist and the pair must not
// already be enrolled.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": studentID})
		}
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("course", map[string]any{"id": courseID})
		}
		return nil, err
	}

	if _, err := s.enrollments.GetByStudentAndCourse(ctx, studentID, courseID); err == nil {
		return nil, apperrors.NewConflict("student already enrolled in course", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventStudentEnrolled,
		StudentID: student.ID,
		Payload: events.StudentEnrolledPayload{
			EnrollmentID: enrollment.ID,
			CourseID:     course.ID,
			CourseCode:   course.Code,
		},
	})

	observability.Ctx(ctx).Info("student enrolled",
		zap.String("student_id", student.ID),
		zap.String("course_id", course.ID))
	return enrollment, nil
}

// Cancel removes an enrollment by id.
func (s *EnrollmentService) Cancel(ctx context.Context, id string) error {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("enrollment", map[string]any{"id": id})
		}
		return err
	}

	if err := s.enrollments.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventEnrollmentCancelled,
		StudentID: enrollment.StudentID,
		Payload: events.EnrollmentCancelledPayload{
			EnrollmentID: enrollment.ID,
			CourseID:     enrollment.CourseID,
		},
	})
	return nil
}

// List returns all enrollments.
func (s *EnrollmentService) List(ctx context.Context) ([]domain.Enrollment, error) {
	return s.enrollments.List(ctx)
}

// ListByStudent returns a student's enrollments.
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student", map[string]any{"id": studentID})
		}
		return nil, err
	}
	return s.enrollments.ListByStudent(ctx, studentID)
}

func (s *EnrollmentService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
