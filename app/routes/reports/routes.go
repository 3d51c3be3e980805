package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/auth"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

func SetupReportsRoutes(app *fiber.App, service *services.ReportService) {
	h := &Handlers{Service: service}

	api := app.Group("/api/reports")
	api.Use(auth.Middleware)
	api.Get("/expenses", h.Expenses)
}
