package expenses

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

type Handlers struct {
	Service *services.ExpenseService
}

func (h *Handlers) List(c *fiber.Ctx) error {
	expenses, err := h.Service.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(expenses)
}

func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense id")
	}
	expense, err := h.Service.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(expense)
}

func (h *Handlers) Create(c *fiber.Ctx) error {
	type CreateExpenseRequest struct {
		EmployeeID  string          `json:"employee_id"`
		CategoryID  string          `json:"category_id"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
	}

	var req CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	expense, err := h.Service.Create(c.Context(), services.CreateExpenseInput{
		EmployeeID:  employeeID,
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense id")
	}

	type UpdateExpenseRequest struct {
		CategoryID  string          `json:"category_id"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
	}

	var req UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	expense, err := h.Service.Update(c.Context(), id, services.UpdateExpenseInput{
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(expense)
}

func (h *Handlers) ApproveByManager(c *fiber.Ctx) error {
	return h.transition(c, h.Service.ApproveByManager)
}

func (h *Handlers) ApproveByFinance(c *fiber.Ctx) error {
	return h.transition(c, h.Service.ApproveByFinance)
}

func (h *Handlers) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense id")
	}

	type RejectRequest struct {
		Reason string `json:"reason"`
	}
	var req RejectRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	actorID := c.Locals("employee_id").(uuid.UUID)
	expense, err := h.Service.Reject(c.Context(), id, actorID, req.Reason)
	if err != nil {
		return err
	}
	return c.JSON(expense)
}

func (h *Handlers) AttachReceipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense id")
	}

	type ReceiptRequest struct {
		Filename string `json:"filename"`
		URL      string `json:"url"`
	}
	var req ReceiptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	expense, err := h.Service.AttachReceipt(c.Context(), id, req.Filename, req.URL)
	if err != nil {
		return err
	}
	return c.JSON(expense)
}

func (h *Handlers) transition(c *fiber.Ctx, fn func(ctx context.Context, expenseID, actorID uuid.UUID) (*models.Expense, error)) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid expense id")
	}
	actorID := c.Locals("employee_id").(uuid.UUID)
	expense, err := fn(c.Context(), id, actorID)
	if err != nil {
		return err
	}
	return c.JSON(expense)
}

// parseDate parses an optional YYYY-MM-DD date; empty means unset.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}
