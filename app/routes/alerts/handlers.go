package alerts

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

type Handlers struct {
	Service *services.AlertService
}

func (h *Handlers) List(c *fiber.Ctx) error {
	statusParam := c.Query("status")
	if statusParam == "" {
		alerts, err := h.Service.FindAll(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(alerts)
	}

	status, err := models.ParseAlertStatus(statusParam)
	if err != nil {
		return err
	}
	alerts, err := h.Service.FindByStatus(c.Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(alerts)
}

func (h *Handlers) Resolve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid alert id")
	}
	alert, err := h.Service.Resolve(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(alert)
}
