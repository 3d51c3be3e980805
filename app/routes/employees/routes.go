package employees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/auth"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

func SetupEmployeesRoutes(app *fiber.App, service *services.EmployeeService) {
	h := &Handlers{Service: service}

	api := app.Group("/api/employees")
	api.Use(auth.Middleware)
	api.Get("/", h.List)
	api.Get("/:id", h.Get)
	api.Post("/", h.Create)
}
