package expenses

import (
	"github.com/gofiber/fiber/v2"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/auth"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

func SetupExpensesRoutes(app *fiber.App, service *services.ExpenseService) {
	h := &Handlers{Service: service}

	api := app.Group("/api/expenses")
	api.Use(auth.Middleware)
	api.Get("/", h.List)
	api.Get("/:id", h.Get)
	api.Post("/", h.Create)
	api.Put("/:id", h.Update)
	api.Post("/:id/approve/manager", h.ApproveByManager)
	api.Post("/:id/approve/finance", h.ApproveByFinance)
	api.Post("/:id/reject", h.Reject)
	api.Patch("/:id/receipt", h.AttachReceipt)
}
