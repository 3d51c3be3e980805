package departments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/auth"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

func SetupDepartmentsRoutes(app *fiber.App, service *services.DepartmentService) {
	h := &Handlers{Service: service}

	api := app.Group("/api/departments")
	api.Use(auth.Middleware)
	api.Get("/", h.List)
	api.Get("/usage", h.Usage)
	api.Get("/:id", h.Get)
	api.Post("/", h.Create)
	api.Put("/:id", h.Update)
}
