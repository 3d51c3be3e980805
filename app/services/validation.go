package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

type opKind int

const (
	opCreate opKind = iota
	opUpdate
)

// violation is a limit or budget breach. On create it becomes an alert plus
// a needsReview flag; on update it blocks the operation.
type violation struct {
	Type    models.AlertType
	Message string
}

// validate runs the limit and budget checks against an expense candidate.
// The computation is the same for create and update; the consequence is not.
// Create collects violations and returns them for the caller to turn into
// alerts, update aborts at the first one with a BusinessRuleError.
//
// Structural problems (non-positive amount, missing category, unconfigured
// department budget) are hard ValidationErrors for both operations.
//
// The department aggregate counts APPROVED_FINANCE expenses only, so
// concurrently created PENDING expenses can each pass this check before any
// of them is finance-approved. That is a documented property of the design;
// the scheduler sweep surfaces department-months that ended up over budget.
func (s *ExpenseService) validate(ctx context.Context, e *models.Expense, emp *models.Employee, cat *models.Category, op opKind, exclude uuid.UUID) ([]violation, error) {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, models.NewValidationError("Amount must be positive")
	}
	if cat == nil {
		return nil, models.NewValidationError("Category not set")
	}

	var soft []violation
	breach := func(v violation) error {
		if op == opUpdate {
			return models.NewBusinessRuleError(v.Message)
		}
		soft = append(soft, v)
		return nil
	}

	if cat.DailyLimit != nil && e.Amount.GreaterThan(*cat.DailyLimit) {
		if err := breach(violation{models.AlertCategoryLimit, "Daily category limit exceeded"}); err != nil {
			return nil, err
		}
	}
	if cat.MonthlyLimit != nil && e.Amount.GreaterThan(*cat.MonthlyLimit) {
		if err := breach(violation{models.AlertCategoryLimit, "Monthly category limit exceeded"}); err != nil {
			return nil, err
		}
	}

	if emp.DepartmentID == nil {
		return nil, models.NewValidationError("Department budget not configured")
	}
	dept, err := s.Departments.FindByID(ctx, *emp.DepartmentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewValidationError("Department budget not configured")
		}
		return nil, err
	}

	start, end := monthRange(e.Date)
	var alreadySpent decimal.Decimal
	if exclude == uuid.Nil {
		alreadySpent, err = s.Expenses.SumApprovedAmount(ctx, dept.ID, start, end)
	} else {
		alreadySpent, err = s.Expenses.SumApprovedAmountExcluding(ctx, dept.ID, start, end, exclude)
	}
	if err != nil {
		return nil, err
	}

	if alreadySpent.Add(e.Amount).GreaterThan(dept.MonthlyBudget) {
		if err := breach(violation{models.AlertDepartmentBudget, "Department monthly budget exceeded"}); err != nil {
			return nil, err
		}
	}
	return soft, nil
}

// monthRange returns the half-open range [start, end) of the calendar month
// containing t. The end is exclusive so a date late on the month's last day
// still falls inside its own month.
func monthRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
