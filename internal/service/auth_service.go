package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/events"
	"github.com/spec-kit/school-service/internal/observability"
	"github.com/spec-kit/school-service/internal/repository"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	students   repository.StudentRepository
	tokenMgr   *auth.TokenManager
	limiter    *auth.LoginLimiter
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	StudentRepo repository.StudentRepository
	TokenMgr    *auth.TokenManager
	Limiter     *auth.LoginLimiter
	Dispatcher  events.Dispatcher
	BcryptCost  int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		students:   deps.StudentRepo,
		tokenMgr:   deps.TokenMgr,
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// Login authenticates a student by email and password and issues an access
// token with the email as subject. Unknown email, missing credential, and
// wrong password all return auth.ErrUnauthorized with no distinguishing
// detail.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if !s.limiter.Allow(ctx, email) {
		observability.Ctx(ctx).Warn("login throttled", zap.String("email", email))
		return "", time.Time{}, apperrors.NewTooManyRequests("too many login attempts")
	}

	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.limiter.RecordFailure(ctx, email)
			return "", time.Time{}, auth.ErrUnauthorized
		}
		return "", time.Time{}, err
	}

	// Roster-only students have no credential and can never log in.
	if !student.HasCredential() || !auth.CheckPassword(*student.PasswordHash, password) {
		s.limiter.RecordFailure(ctx, email)
		return "", time.Time{}, auth.ErrUnauthorized
	}

	token, expiresAt, err := s.tokenMgr.Issue(student.Email, nil, 0)
	if err != nil {
		return "", time.Time{}, err
	}

	s.limiter.Reset(ctx, email)
	observability.Ctx(ctx).Info("login succeeded", zap.String("student_id", student.ID))
	return token, expiresAt, nil
}

// RegisterUser creates a student with a credential.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password, phone string, birthDate *time.Time) (*domain.Student, error) {
	if _, err := s.students.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	student := &domain.Student{
		Name:         name,
		Email:        email,
		Phone:        phone,
		BirthDate:    birthDate,
		PasswordHash: &hash,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventStudentRegistered,
		StudentID: student.ID,
		Payload: events.StudentRegisteredPayload{
			Name:  student.Name,
			Email: student.Email,
		},
	})

	observability.Ctx(ctx).Info("student registered",
		zap.String("student_id", student.ID),
		zap.String("student_email", student.Email))
	return student, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
