package categories

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

type Handlers struct {
	Service *services.CategoryService
}

func (h *Handlers) List(c *fiber.Ctx) error {
	categories, err := h.Service.FindAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

func (h *Handlers) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category id")
	}
	category, err := h.Service.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

func (h *Handlers) Create(c *fiber.Ctx) error {
	type CreateCategoryRequest struct {
		Name         string           `json:"name"`
		DailyLimit   *decimal.Decimal `json:"daily_limit"`
		MonthlyLimit *decimal.Decimal `json:"monthly_limit"`
	}

	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	category, err := h.Service.Create(c.Context(), req.Name, req.DailyLimit, req.MonthlyLimit)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
