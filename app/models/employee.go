package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee submits expenses. DepartmentID may be unset, in which case any
// expense validation for this employee fails with an unconfigured-budget
// error.
type Employee struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Position     string       `json:"position,omitempty"`
	ManagerID    *uuid.UUID   `json:"manager_id,omitempty"`
	DepartmentID *uuid.UUID   `json:"department_id,omitempty"`
	Role         EmployeeRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}
