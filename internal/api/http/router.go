package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/http/handlers"
	"github.com/spec-kit/school-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Students       *handlers.StudentsHandler
	Courses        *handlers.CoursesHandler
	Enrollments    *handlers.EnrollmentsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything except health, login, and
// registration requires a bearer token.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Auth.Token)
	app.Post("/users", cfg.Auth.Register)

	students := app.Group("/students", cfg.AuthMiddleware.Handle)
	students.Get("/", cfg.Students.List)
	students.Post("/", cfg.Students.Create)
	students.Get("/name/:name", cfg.Students.SearchByName)
	students.Get("/email/:email", cfg.Students.GetByEmail)
	students.Get("/:id", cfg.Students.Get)
	students.Put("/:id", cfg.Students.Update)
	students.Delete("/:id", cfg.Students.Delete)
	students.Get("/:id/enrollments", cfg.Students.ListEnrollments)

	courses := app.Group("/courses", cfg.AuthMiddleware.Handle)
	courses.Get("/", cfg.Courses.List)
	courses.Post("/", cfg.Courses.Create)
	courses.Get("/:code", cfg.Courses.Get)
	courses.Put("/:code", cfg.Courses.Update)
	courses.Delete("/:code", cfg.Courses.Delete)

	enrollments := app.Group("/enrollments", cfg.AuthMiddleware.Handle)
	enrollments.Get("/", cfg.Enrollments.List)
	enrollments.Post("/", cfg.Enrollments.Create)
	enrollments.Delete("/:id", cfg.Enrollments.Delete)
}
