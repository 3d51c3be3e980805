package reports

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

type Handlers struct {
	Service *services.ReportService
}

func (h *Handlers) Expenses(c *fiber.Ctx) error {
	start, err := parseRequiredDate(c.Query("start"), "start")
	if err != nil {
		return err
	}
	end, err := parseRequiredDate(c.Query("end"), "end")
	if err != nil {
		return err
	}

	rows, err := h.Service.ExpenseRows(c.Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

func parseRequiredDate(s, name string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Query parameter "+name+" is required")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+" date, expected YYYY-MM-DD")
	}
	return t, nil
}
