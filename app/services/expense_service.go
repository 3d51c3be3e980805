package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

const defaultCurrency = "BRL"

// ExpenseService owns the expense lifecycle: creation, updates, the
// manager/finance approval steps and rejection. Limit and budget validation
// runs through the rules in validation.go.
type ExpenseService struct {
	Expenses    ExpenseStore
	Employees   EmployeeStore
	Categories  CategoryStore
	Departments DepartmentStore
	Alerts      *AlertService
}

type CreateExpenseInput struct {
	EmployeeID  uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Date        time.Time
	Description string
}

type UpdateExpenseInput struct {
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Date        time.Time
	Description string
}

// Create validates the candidate and persists it as PENDING. Limit and
// budget breaches do not block creation: the expense is flagged for review
// and an alert is stored atomically with it.
func (s *ExpenseService) Create(ctx context.Context, in CreateExpenseInput) (*models.Expense, error) {
	emp, err := s.Employees.FindByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	cat, err := s.Categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e := &models.Expense{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		CategoryID:  cat.ID,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Description: in.Description,
		Date:        in.Date,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if strings.TrimSpace(e.Currency) == "" {
		e.Currency = defaultCurrency
	}
	if e.Date.IsZero() {
		e.Date = now
	}

	violations, err := s.validate(ctx, e, emp, cat, opCreate, uuid.Nil)
	if err != nil {
		return nil, err
	}

	var alerts []*models.Alert
	for _, v := range violations {
		e.NeedsReview = true
		alerts = append(alerts, s.Alerts.Build(e, v.Type, v.Message))
	}

	if err := s.Expenses.Insert(ctx, e, alerts); err != nil {
		return nil, err
	}
	return e, nil
}

// Update edits a PENDING expense. Unlike creation, any limit or budget
// breach blocks the edit and nothing is persisted. The department-month
// aggregate excludes the expense being edited so its prior amount is not
// counted twice.
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, in UpdateExpenseInput) (*models.Expense, error) {
	existing, err := s.Expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != models.StatusPending {
		return nil, models.NewBusinessRuleError("only pending expenses can be updated")
	}
	emp, err := s.Employees.FindByID(ctx, existing.EmployeeID)
	if err != nil {
		return nil, err
	}
	cat, err := s.Categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if in.Date.IsZero() {
		return nil, models.NewValidationError("Date must be provided")
	}

	candidate := *existing
	candidate.CategoryID = cat.ID
	candidate.Amount = in.Amount
	candidate.Currency = in.Currency
	candidate.Date = in.Date
	candidate.Description = in.Description

	if _, err := s.validate(ctx, &candidate, emp, cat, opUpdate, existing.ID); err != nil {
		return nil, err
	}

	candidate.UpdatedAt = time.Now()
	if err := s.Expenses.Update(ctx, &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *ExpenseService) FindAll(ctx context.Context) ([]*models.Expense, error) {
	return s.Expenses.FindAll(ctx)
}

func (s *ExpenseService) FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	return s.Expenses.FindByID(ctx, id)
}

// ApproveByManager moves a PENDING expense to APPROVED_MANAGER.
func (s *ExpenseService) ApproveByManager(ctx context.Context, expenseID, approverID uuid.UUID) (*models.Expense, error) {
	e, err := s.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	from := e.Status
	if err := e.ApproveByManager(); err != nil {
		return nil, err
	}
	if err := s.Expenses.UpdateStatus(ctx, e, from); err != nil {
		return nil, err
	}
	log.Printf("Expense %s approved by manager %s", e.ID, approverID)
	return e, nil
}

// ApproveByFinance moves an APPROVED_MANAGER expense to APPROVED_FINANCE and
// clears needsReview.
func (s *ExpenseService) ApproveByFinance(ctx context.Context, expenseID, approverID uuid.UUID) (*models.Expense, error) {
	e, err := s.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	from := e.Status
	if err := e.ApproveByFinance(); err != nil {
		return nil, err
	}
	if err := s.Expenses.UpdateStatus(ctx, e, from); err != nil {
		return nil, err
	}
	log.Printf("Expense %s approved by finance %s", e.ID, approverID)
	return e, nil
}

// Reject moves a PENDING or APPROVED_MANAGER expense to REJECTED. The reason
// is stored for audit.
func (s *ExpenseService) Reject(ctx context.Context, expenseID, actorID uuid.UUID, reason string) (*models.Expense, error) {
	e, err := s.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	from := e.Status
	if err := e.Reject(reason); err != nil {
		return nil, err
	}
	if err := s.Expenses.UpdateStatus(ctx, e, from); err != nil {
		return nil, err
	}
	log.Printf("Expense %s rejected by %s", e.ID, actorID)
	return e, nil
}

// AttachReceipt records receipt metadata on an expense. The file itself
// lives with the external storage collaborator.
func (s *ExpenseService) AttachReceipt(ctx context.Context, expenseID uuid.UUID, filename, url string) (*models.Expense, error) {
	e, err := s.Expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(filename) == "" {
		return nil, models.NewValidationError("Receipt filename must be provided")
	}
	if err := s.Expenses.SetReceipt(ctx, e.ID, filename, url); err != nil {
		return nil, err
	}
	e.ReceiptFilename = filename
	e.ReceiptURL = url
	return e, nil
}
