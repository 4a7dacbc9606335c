package http

import (
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/school-service/internal/observability"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

func newTestApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	return app, logs
}

func TestRequestContext_HeaderRoundtrip(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString(observability.RequestIDFromContext(c.UserContext()))
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(RequestIDHeader, "inbound-id-123")
	resp, err := app.Test(req, 2000)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if got := resp.Header.Get(RequestIDHeader); got != "inbound-id-123" {
		t.Fatalf("response header mismatch: got %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "inbound-id-123" {
		t.Fatalf("context ID mismatch: got %q", body)
	}
}

func TestRequestContext_GeneratesWhenAbsent(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil), 2000)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Fatalf("expected a generated request ID on the response")
	}
}

func TestRequestContext_ConcurrentIsolation(t *testing.T) {
	app, logs := newTestApp(t)
	app.Get("/work", func(c *fiber.Ctx) error {
		// Hold both requests in flight at once.
		observability.Ctx(c.UserContext()).Info("handling work")
		time.Sleep(50 * time.Millisecond)
		observability.Ctx(c.UserContext()).Info("work done")
		return c.SendString(observability.RequestIDFromContext(c.UserContext()))
	})

	type result struct {
		header string
		body   string
	}
	run := func(withHeader bool) result {
		req := httptest.NewRequest("GET", "/work", nil)
		if withHeader {
			req.Header.Set(RequestIDHeader, "aaa")
		}
		resp, err := app.Test(req, 5000)
		if err != nil {
			t.Errorf("app.Test error: %v", err)
			return result{}
		}
		body, _ := io.ReadAll(resp.Body)
		return result{header: resp.Header.Get(RequestIDHeader), body: string(body)}
	}

	var wg sync.WaitGroup
	var resA, resB result
	wg.Add(2)
	go func() { defer wg.Done(); resA = run(true) }()
	go func() { defer wg.Done(); resB = run(false) }()
	wg.Wait()

	if resA.header != "aaa" || resA.body != "aaa" {
		t.Fatalf("request A must keep its inbound ID, got header=%q body=%q", resA.header, resA.body)
	}
	if resB.header == "" || resB.header == "aaa" {
		t.Fatalf("request B must get a fresh ID, got %q", resB.header)
	}
	if resB.header != resB.body {
		t.Fatalf("request B header/context mismatch: %q vs %q", resB.header, resB.body)
	}

	// Every log line emitted while handling a request carries exactly that
	// request's ID.
	seen := map[string]int{}
	for _, entry := range logs.All() {
		if entry.Message != "handling work" && entry.Message != "work done" {
			continue
		}
		fields := entry.ContextMap()
		id, ok := fields[observability.RequestIDField].(string)
		if !ok {
			t.Fatalf("log entry %q missing request_id field", entry.Message)
		}
		if id != "aaa" && id != resB.header {
			t.Fatalf("log entry %q carries foreign request_id %q", entry.Message, id)
		}
		seen[id]++
	}
	if seen["aaa"] != 2 || seen[resB.header] != 2 {
		t.Fatalf("expected two handler log lines per request, got %v", seen)
	}
}

func TestErrorMiddleware_UnauthorizedChallenge(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/secure", func(c *fiber.Ctx) error {
		return apperrors.NewUnauthorized("could not validate credentials")
	})

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set(RequestIDHeader, "corr-1")
	resp, err := app.Test(req, 2000)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get(fiber.HeaderWWWAuthenticate); got != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer, got %q", got)
	}
	// Correlation ID survives the error path.
	if got := resp.Header.Get(RequestIDHeader); got != "corr-1" {
		t.Fatalf("expected request ID on error response, got %q", got)
	}
}

func TestErrorMiddleware_PanicRecovery(t *testing.T) {
	app, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), 2000)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", resp.StatusCode)
	}
}
