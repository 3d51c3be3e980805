package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert records a soft budget or limit violation tied to an expense. Alerts
// are created in status NEW and only ever move NEW -> RESOLVED. Several
// alerts may reference the same expense; they are never deduplicated.
type Alert struct {
	ID        uuid.UUID   `json:"id"`
	ExpenseID uuid.UUID   `json:"expense_id"`
	Type      AlertType   `json:"type"`
	Message   string      `json:"message"`
	Status    AlertStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
