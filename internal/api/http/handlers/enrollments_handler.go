package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/service"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// EnrollmentsHandler manages enrollment endpoints.
type EnrollmentsHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentsHandler constructs handler.
func NewEnrollmentsHandler(enrollments *service.EnrollmentService) *EnrollmentsHandler {
	return &EnrollmentsHandler{enrollments: enrollments}
}

// List GET /enrollments.
func (h *EnrollmentsHandler) List(c *fiber.Ctx) error {
	enrollments, err := h.enrollments.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		items = append(items, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /enrollments.
func (h *EnrollmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.StudentID == "" || req.CourseID == "" {
		return apperrors.NewValidationError("student_id and course_id required", nil)
	}

	enrollment, err := h.enrollments.Enroll(c.UserContext(), req.StudentID, req.CourseID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEnrollmentResponse(enrollment)})
}

// Delete DELETE /enrollments/:id.
func (h *EnrollmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.enrollments.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
