package employees

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

type Handlers struct {
	Service *services.EmployeeService
}

func (h *Handlers) List(c *fiber.Ctx) error {
	employees, err := h.Service.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(employees)
}

func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
	}
	employee, err := h.Service.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(employee)
}

func (h *Handlers) Create(c *fiber.Ctx) error {
	type CreateEmployeeRequest struct {
		Name         string  `json:"name"`
		Email        string  `json:"email"`
		Position     string  `json:"position"`
		ManagerID    *string `json:"manager_id"`
		DepartmentID *string `json:"department_id"`
		Role         string  `json:"role"`
	}

	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	managerID, err := parseOptionalID(req.ManagerID, "Invalid manager id")
	if err != nil {
		return err
	}
	departmentID, err := parseOptionalID(req.DepartmentID, "Invalid department id")
	if err != nil {
		return err
	}

	employee, err := h.Service.Create(c.Context(), services.CreateEmployeeInput{
		Name:         req.Name,
		Email:        req.Email,
		Position:     req.Position,
		ManagerID:    managerID,
		DepartmentID: departmentID,
		Role:         models.EmployeeRole(req.Role),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(employee)
}

func parseOptionalID(s *string, message string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, message)
	}
	return &id, nil
}
