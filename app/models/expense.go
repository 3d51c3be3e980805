package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents an employee expense claim moving through the approval
// workflow. Status and NeedsReview are owned exclusively by this entity; the
// transition methods below are the only legal way to change Status.
type Expense struct {
	ID              uuid.UUID       `json:"id"`
	EmployeeID      uuid.UUID       `json:"employee_id"`
	CategoryID      uuid.UUID       `json:"category_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description,omitempty"`
	Date            time.Time       `json:"date"`
	Status          ExpenseStatus   `json:"status"`
	NeedsReview     bool            `json:"needs_review"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	ReceiptFilename string          `json:"receipt_filename,omitempty"`
	ReceiptURL      string          `json:"receipt_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ApproveByManager moves a pending expense to APPROVED_MANAGER.
func (e *Expense) ApproveByManager() error {
	if e.Status != StatusPending {
		return NewBusinessRuleError("expense is not pending and cannot be approved by manager")
	}
	e.Status = StatusApprovedManager
	return nil
}

// ApproveByFinance moves a manager-approved expense to APPROVED_FINANCE and
// clears the review flag unconditionally.
func (e *Expense) ApproveByFinance() error {
	if e.Status != StatusApprovedManager {
		return NewBusinessRuleError("expense was not approved by manager and cannot be approved by finance")
	}
	e.Status = StatusApprovedFinance
	e.NeedsReview = false
	return nil
}

// Reject moves a pending or manager-approved expense to REJECTED. The reason
// is kept for audit only.
func (e *Expense) Reject(reason string) error {
	if e.Status == StatusApprovedFinance {
		return NewBusinessRuleError("finalized expense cannot be rejected")
	}
	if e.Status == StatusRejected {
		return NewBusinessRuleError("expense is already rejected")
	}
	e.Status = StatusRejected
	e.NeedsReview = false
	e.RejectionReason = reason
	return nil
}
