package models

import "fmt"

// ExpenseStatus defines the approval workflow states of an expense.
type ExpenseStatus string

const (
	StatusPending         ExpenseStatus = "PENDING"
	StatusApprovedManager ExpenseStatus = "APPROVED_MANAGER"
	StatusApprovedFinance ExpenseStatus = "APPROVED_FINANCE"
	StatusRejected        ExpenseStatus = "REJECTED"
)

// Terminal reports whether no further transition is allowed from s.
func (s ExpenseStatus) Terminal() bool {
	return s == StatusApprovedFinance || s == StatusRejected
}

// AlertType defines which rule produced an alert.
type AlertType string

const (
	AlertCategoryLimit    AlertType = "CATEGORY_LIMIT"
	AlertDepartmentBudget AlertType = "DEPARTMENT_BUDGET"
)

// AlertStatus defines the lifecycle of an alert.
type AlertStatus string

const (
	AlertNew      AlertStatus = "NEW"
	AlertResolved AlertStatus = "RESOLVED"
)

// ParseAlertStatus validates a status string coming from a request.
func ParseAlertStatus(s string) (AlertStatus, error) {
	switch AlertStatus(s) {
	case AlertNew, AlertResolved:
		return AlertStatus(s), nil
	}
	return "", NewValidationError(fmt.Sprintf("invalid alert status %q", s))
}

// EmployeeRole defines the role of an employee in the approval chain.
type EmployeeRole string

const (
	RoleEmployee EmployeeRole = "EMPLOYEE"
	RoleManager  EmployeeRole = "MANAGER"
	RoleFinance  EmployeeRole = "FINANCE"
)
