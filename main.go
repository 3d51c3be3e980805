package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/config"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/database"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/alerts"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/categories"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/departments"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/employees"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/expenses"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/routes/reports"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/services"
)

// errorHandler maps the domain error taxonomy to HTTP responses.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = fiber.StatusNotFound
	case models.IsValidation(err), models.IsBusinessRule(err):
		code = fiber.StatusBadRequest
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func main() {
	// Initialize configuration and database
	config.Load()
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	db := config.GetDB()

	// Stores
	expenseStore := database.NewExpenseQueries(db)
	alertStore := database.NewAlertQueries(db)
	employeeStore := database.NewEmployeeQueries(db)
	categoryStore := database.NewCategoryQueries(db)
	departmentStore := database.NewDepartmentQueries(db)

	// Services
	alertService := &services.AlertService{Alerts: alertStore}
	expenseService := &services.ExpenseService{
		Expenses:    expenseStore,
		Employees:   employeeStore,
		Categories:  categoryStore,
		Departments: departmentStore,
		Alerts:      alertService,
	}
	departmentService := &services.DepartmentService{Departments: departmentStore, Expenses: expenseStore}
	categoryService := &services.CategoryService{Categories: categoryStore}
	employeeService := &services.EmployeeService{Employees: employeeStore, Departments: departmentStore}
	reportService := &services.ReportService{Expenses: expenseStore}

	// Start background scheduler
	services.StartScheduler(departmentService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	expenses.SetupExpensesRoutes(app, expenseService)
	alerts.SetupAlertsRoutes(app, alertService)
	categories.SetupCategoriesRoutes(app, categoryService)
	departments.SetupDepartmentsRoutes(app, departmentService)
	employees.SetupEmployeesRoutes(app, employeeService)
	reports.SetupReportsRoutes(app, reportService)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
