package alerts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/auth"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

func SetupAlertsRoutes(app *fiber.App, service *services.AlertService) {
	h := &Handlers{Service: service}

	api := app.Group("/api/alerts")
	api.Use(auth.Middleware)
	api.Get("/", h.List)
	api.Patch("/:id/resolve", h.Resolve)
}
