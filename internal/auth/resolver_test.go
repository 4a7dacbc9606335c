package auth

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/school-service/internal/domain"
)

type fakeStudentRepo struct {
	byEmail map[string]*domain.Student
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *domain.Student) error { return nil }
func (f *fakeStudentRepo) Update(ctx context.Context, student *domain.Student) error { return nil }
func (f *fakeStudentRepo) Delete(ctx context.Context, id string) error               { return nil }
func (f *fakeStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return nil, pgx.ErrNoRows
}
func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	if student, ok := f.byEmail[email]; ok {
		return student, nil
	}
	return nil, pgx.ErrNoRows
}
func (f *fakeStudentRepo) List(ctx context.Context) ([]domain.Student, error) { return nil, nil }
func (f *fakeStudentRepo) SearchByName(ctx context.Context, name string) ([]domain.Student, error) {
	return nil, nil
}

func newTestResolver(t *testing.T, students map[string]*domain.Student) (*Resolver, *TokenManager) {
	t.Helper()
	tm := NewTokenManager(testKeyPair(t), time.Hour)
	return NewResolver(tm, &fakeStudentRepo{byEmail: students}), tm
}

func TestResolve_Success(t *testing.T) {
	t.Parallel()

	known := &domain.Student{ID: "s-1", Email: "student@example.com"}
	resolver, tm := newTestResolver(t, map[string]*domain.Student{known.Email: known})

	token, _, err := tm.Issue(known.Email, nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	principal, err := resolver.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if principal.ID != known.ID || principal.Email != known.Email {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestResolve_Unauthorized(t *testing.T) {
	t.Parallel()

	resolver, tm := newTestResolver(t, map[string]*domain.Student{
		"student@example.com": {ID: "s-1", Email: "student@example.com"},
	})

	expired, _, err := tm.Issue("student@example.com", nil, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	unknownSubject, _, err := tm.Issue("ghost@example.com", nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	noSubject, _, err := tm.Issue("", nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cases := map[string]string{
		"empty token":     "",
		"malformed token": "not.a.jwt",
		"expired token":   expired,
		"unknown subject": unknownSubject,
		"missing subject": noSubject,
	}
	for name, token := range cases {
		if _, err := resolver.Resolve(context.Background(), token); err != ErrUnauthorized {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestResolveActive_PassThrough(t *testing.T) {
	t.Parallel()

	known := &domain.Student{ID: "s-1", Email: "student@example.com"}
	resolver, tm := newTestResolver(t, map[string]*domain.Student{known.Email: known})

	token, _, err := tm.Issue(known.Email, nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	principal, err := resolver.ResolveActive(context.Background(), token)
	if err != nil {
		t.Fatalf("ResolveActive error: %v", err)
	}
	if principal.ID != known.ID {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestLoginLimiter_NilClientAllows(t *testing.T) {
	t.Parallel()

	limiter := NewLoginLimiter(nil, 3, time.Minute)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		limiter.RecordFailure(ctx, "student@example.com")
	}
	if !limiter.Allow(ctx, "student@example.com") {
		t.Fatalf("nil-client limiter must always allow")
	}
	limiter.Reset(ctx, "student@example.com")
}
