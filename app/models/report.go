package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseReportRow is one line of the expense report, with references
// resolved to display names.
type ExpenseReportRow struct {
	ID             uuid.UUID       `json:"id"`
	Date           time.Time       `json:"date"`
	EmployeeName   string          `json:"employee"`
	DepartmentName string          `json:"department,omitempty"`
	CategoryName   string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         ExpenseStatus   `json:"status"`
	NeedsReview    bool            `json:"needs_review"`
}
