package http

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/school-service/internal/auth"
	"github.com/spec-kit/school-service/internal/domain"
	"github.com/spec-kit/school-service/internal/observability"
)

type stubStudentRepo struct {
	byEmail map[string]*domain.Student
}

func (s *stubStudentRepo) Create(ctx context.Context, student *domain.Student) error { return nil }
func (s *stubStudentRepo) Update(ctx context.Context, student *domain.Student) error { return nil }
func (s *stubStudentRepo) Delete(ctx context.Context, id string) error               { return nil }
func (s *stubStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return nil, pgx.ErrNoRows
}
func (s *stubStudentRepo) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	if student, ok := s.byEmail[email]; ok {
		return student, nil
	}
	return nil, pgx.ErrNoRows
}
func (s *stubStudentRepo) List(ctx context.Context) ([]domain.Student, error) { return nil, nil }
func (s *stubStudentRepo) SearchByName(ctx context.Context, name string) ([]domain.Student, error) {
	return nil, nil
}

func newProtectedApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate RSA key: %v", err)
	}
	keys := &auth.KeyPair{SigningKey: priv, VerifyKey: &priv.PublicKey, Method: jwt.SigningMethodRS256}
	tokenMgr := auth.NewTokenManager(keys, 15*time.Minute)

	repo := &stubStudentRepo{byEmail: map[string]*domain.Student{
		"student@example.com": {ID: "s-1", Email: "student@example.com", Name: "Known Student"},
	}}
	guard := auth.NewMiddleware(auth.NewResolver(tokenMgr, repo))

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	app.Get("/me", guard.Handle, func(c *fiber.Ctx) error {
		principal, _ := auth.PrincipalFromContext(c)
		return c.SendString(principal.Email)
	})
	return app, tokenMgr
}

func TestProtectedRoute_ValidToken(t *testing.T) {
	app, tokenMgr := newProtectedApp(t)

	token, _, err := tokenMgr.Issue("student@example.com", nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req, 2000)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "student@example.com" {
		t.Fatalf("unexpected principal: %q", body)
	}
}

func TestProtectedRoute_Rejections(t *testing.T) {
	app, tokenMgr := newProtectedApp(t)

	expired, _, err := tokenMgr.Issue("student@example.com", nil, -1*time.Second)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	unknown, _, err := tokenMgr.Issue("ghost@example.com", nil, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	cases := map[string]string{
		"no header":       "",
		"not bearer":      "Basic dXNlcjpwYXNz",
		"garbage token":   "Bearer garbage",
		"expired token":   "Bearer " + expired,
		"unknown subject": "Bearer " + unknown,
	}
	for name, header := range cases {
		req := httptest.NewRequest("GET", "/me", nil)
		if header != "" {
			req.Header.Set(fiber.HeaderAuthorization, header)
		}
		resp, err := app.Test(req, 2000)
		if err != nil {
			t.Fatalf("%s: app.Test error: %v", name, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, resp.StatusCode)
		}
		if got := resp.Header.Get(fiber.HeaderWWWAuthenticate); got != "Bearer" {
			t.Fatalf("%s: expected Bearer challenge, got %q", name, got)
		}
	}
}
