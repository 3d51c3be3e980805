package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// DepartmentService manages departments and exposes monthly budget usage.
type DepartmentService struct {
	Departments DepartmentStore
	Expenses    ExpenseStore
}

func (s *DepartmentService) Create(ctx context.Context, name string, monthlyBudget decimal.Decimal) (*models.Department, error) {
	if err := validateDepartmentFields(name, monthlyBudget); err != nil {
		return nil, err
	}
	d := &models.Department{
		ID:            uuid.New(),
		Name:          name,
		MonthlyBudget: monthlyBudget,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.Departments.Insert(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update changes name and budget. Reducing the budget below the current
// month's approved spending is refused, so a department can never be
// configured into an already-breached state.
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, name string, monthlyBudget decimal.Decimal) (*models.Department, error) {
	existing, err := s.Departments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateDepartmentFields(name, monthlyBudget); err != nil {
		return nil, err
	}

	if monthlyBudget.LessThan(existing.MonthlyBudget) {
		start, end := monthRange(time.Now())
		alreadySpent, err := s.Expenses.SumApprovedAmount(ctx, existing.ID, start, end)
		if err != nil {
			return nil, err
		}
		if alreadySpent.GreaterThan(monthlyBudget) {
			return nil, models.NewBusinessRuleError(fmt.Sprintf(
				"Cannot reduce budget: current approved spending this month (%s) exceeds new monthly budget (%s)",
				alreadySpent, monthlyBudget))
		}
	}

	existing.Name = name
	existing.MonthlyBudget = monthlyBudget
	existing.UpdatedAt = time.Now()
	if err := s.Departments.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DepartmentService) FindAll(ctx context.Context) ([]*models.Department, error) {
	return s.Departments.FindAll(ctx)
}

func (s *DepartmentService) FindByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	return s.Departments.FindByID(ctx, id)
}

// MonthlyUsage returns the approved spending of one department for the
// calendar month containing month.
func (s *DepartmentService) MonthlyUsage(ctx context.Context, id uuid.UUID, month time.Time) (decimal.Decimal, error) {
	start, end := monthRange(month)
	return s.Expenses.SumApprovedAmount(ctx, id, start, end)
}

// MonthlyUsageAll returns the approved spending of every department for the
// calendar month containing month, keyed by department id.
func (s *DepartmentService) MonthlyUsageAll(ctx context.Context, month time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	start, end := monthRange(month)
	return s.Expenses.SumApprovedAmountByDepartment(ctx, start, end)
}

func validateDepartmentFields(name string, monthlyBudget decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("Department name must be provided")
	}
	if monthlyBudget.IsNegative() {
		return models.NewValidationError("Monthly budget must be non-negative")
	}
	return nil
}
