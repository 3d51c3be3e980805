package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups expenses, e.g. Viagem, Refeição, Transporte, Outros.
// Limits are optional; a nil limit means the check is skipped.
type Category struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	DailyLimit   *decimal.Decimal `json:"daily_limit,omitempty"`
	MonthlyLimit *decimal.Decimal `json:"monthly_limit,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}
