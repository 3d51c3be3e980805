package departments

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

type Handlers struct {
	Service *services.DepartmentService
}

type departmentRequest struct {
	Name          string          `json:"name"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

func (h *Handlers) List(c *fiber.Ctx) error {
	departments, err := h.Service.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(departments)
}

func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
	}
	department, err := h.Service.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(department)
}

func (h *Handlers) Create(c *fiber.Ctx) error {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	department, err := h.Service.Create(c.Context(), req.Name, req.MonthlyBudget)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
	}
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	department, err := h.Service.Update(c.Context(), id, req.Name, req.MonthlyBudget)
	if err != nil {
		return err
	}
	return c.JSON(department)
}

// Usage returns approved spending per department for a month (default: the
// current one), next to each department's budget.
func (h *Handlers) Usage(c *fiber.Ctx) error {
	month := time.Now()
	if m := c.Query("month"); m != "" {
		parsed, err := time.Parse("2006-01", m)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month, expected YYYY-MM")
		}
		month = parsed
	}

	usage, err := h.Service.MonthlyUsageAll(c.Context(), month)
	if err != nil {
		return err
	}
	departments, err := h.Service.FindAll(c.Context())
	if err != nil {
		return err
	}

	rows := make([]fiber.Map, 0, len(departments))
	for _, d := range departments {
		spent := decimal.Zero
		if s, ok := usage[d.ID]; ok {
			spent = s
		}
		rows = append(rows, fiber.Map{
			"department_id":  d.ID,
			"name":           d.Name,
			"monthly_budget": d.MonthlyBudget,
			"approved_spent": spent,
			"over_budget":    spent.GreaterThan(d.MonthlyBudget),
		})
	}
	return c.JSON(fiber.Map{
		"month":       month.Format("2006-01"),
		"departments": rows,
	})
}
