package service

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/spec-kit/school-service/pkg/util"
)

func TestStudentService_CreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	if _, err := svc.Create(context.Background(), StudentInput{Name: "A", Email: "a@x.com"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err := svc.Create(context.Background(), StudentInput{Name: "B", Email: "a@x.com"})
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "DUPLICATE_EMAIL" {
		t.Fatalf("expected DUPLICATE_EMAIL, got %v", err)
	}
}

func TestStudentService_CreateWithoutCredential(t *testing.T) {
	t.Parallel()

	repo := newFakeStudentRepo()
	svc := NewStudentService(repo)

	student, err := svc.Create(context.Background(), StudentInput{Name: "Roster Kid", Email: "kid@x.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if student.HasCredential() {
		t.Fatalf("roster students must not carry a credential")
	}
}

func TestStudentService_GetNotFound(t *testing.T) {
	t.Parallel()

	svc := NewStudentService(newFakeStudentRepo())

	_, err := svc.Get(context.Background(), "missing")
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
