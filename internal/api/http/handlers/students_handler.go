package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/api/dto"
	"github.com/spec-kit/school-service/internal/service"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

// StudentsHandler manages roster endpoints.
type StudentsHandler struct {
	students    *service.StudentService
	enrollments *service.EnrollmentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService, enrollments *service.EnrollmentService) *StudentsHandler {
	return &StudentsHandler{students: students, enrollments: enrollments}
}

// List GET /students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		items = append(items, dto.NewStudentResponse(&students[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /students/:id.
func (h *StudentsHandler) Get(c *fiber.Ctx) error {
	student, err := h.students.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// GetByEmail GET /students/email/:email.
func (h *StudentsHandler) GetByEmail(c *fiber.Ctx) error {
	student, err := h.students.GetByEmail(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// SearchByName GET /students/name/:name.
func (h *StudentsHandler) SearchByName(c *fiber.Ctx) error {
	students, err := h.students.SearchByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	items := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		items = append(items, dto.NewStudentResponse(&students[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /students. Roster students carry no credential.
func (h *StudentsHandler) Create(c *fiber.Ctx) error {
	input, err := parseStudentRequest(c)
	if err != nil {
		return err
	}
	if input.Name == "" || input.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	student, err := h.students.Create(c.UserContext(), *input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// Update PUT /students/:id.
func (h *StudentsHandler) Update(c *fiber.Ctx) error {
	input, err := parseStudentRequest(c)
	if err != nil {
		return err
	}

	student, err := h.students.Update(c.UserContext(), c.Params("id"), *input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// Delete DELETE /students/:id.
func (h *StudentsHandler) Delete(c *fiber.Ctx) error {
	student, err := h.students.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStudentResponse(student)})
}

// ListEnrollments GET /students/:id/enrollments.
func (h *StudentsHandler) ListEnrollments(c *fiber.Ctx) error {
	enrollments, err := h.enrollments.ListByStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		items = append(items, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseStudentRequest(c *fiber.Ctx) (*service.StudentInput, error) {
	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	birthDate, err := dto.ParseBirthDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birth_date must be YYYY-MM-DD", nil)
	}
	return &service.StudentInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: birthDate,
	}, nil
}
