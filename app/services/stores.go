package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// ExpenseStore is the persistence contract for expenses, including the
// department-month aggregates the validation engine reads. Insert persists
// the expense together with any alerts in one transaction; if an alert
// cannot be stored the whole insert fails.
type ExpenseStore interface {
	Insert(ctx context.Context, e *models.Expense, alerts []*models.Alert) error
	Update(ctx context.Context, e *models.Expense) error
	// UpdateStatus persists a status transition guarded by the expected
	// previous status, so a concurrent transition cannot be overwritten.
	UpdateStatus(ctx context.Context, e *models.Expense, from models.ExpenseStatus) error
	SetReceipt(ctx context.Context, id uuid.UUID, filename, url string) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	FindAll(ctx context.Context) ([]*models.Expense, error)
	// SumApprovedAmount returns the total amount of APPROVED_FINANCE
	// expenses for a department with dates in [start, end).
	SumApprovedAmount(ctx context.Context, departmentID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
	SumApprovedAmountExcluding(ctx context.Context, departmentID uuid.UUID, start, end time.Time, exclude uuid.UUID) (decimal.Decimal, error)
	SumApprovedAmountByDepartment(ctx context.Context, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error)
	ReportRows(ctx context.Context, start, end time.Time) ([]*models.ExpenseReportRow, error)
}

// AlertStore is the persistence contract for alerts.
type AlertStore interface {
	Insert(ctx context.Context, a *models.Alert) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	FindAll(ctx context.Context) ([]*models.Alert, error)
	FindByStatus(ctx context.Context, status models.AlertStatus) ([]*models.Alert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.AlertStatus) error
}

// EmployeeStore resolves employee references.
type EmployeeStore interface {
	Insert(ctx context.Context, e *models.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	FindAll(ctx context.Context) ([]*models.Employee, error)
}

// CategoryStore resolves category references.
type CategoryStore interface {
	Insert(ctx context.Context, c *models.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
}

// DepartmentStore resolves department references.
type DepartmentStore interface {
	Insert(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Department, error)
	FindAll(ctx context.Context) ([]*models.Department, error)
}
