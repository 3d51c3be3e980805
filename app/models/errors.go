package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by lookups for ids that do not exist.
var ErrNotFound = errors.New("not found")

// NotFoundf builds a NotFound error with context, e.g. NotFoundf("expense %s", id).
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+" %w", append(args, ErrNotFound)...)
}

// ValidationError marks structurally invalid input: missing or non-positive
// amount, missing category, unconfigured department budget.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// BusinessRuleError marks a recognized domain rule blocking an operation:
// update-time limit or budget breaches and illegal state transitions.
// Retrying without changing the input or the underlying data cannot succeed.
type BusinessRuleError struct {
	msg string
}

func NewBusinessRuleError(msg string) error {
	return &BusinessRuleError{msg: msg}
}

func (e *BusinessRuleError) Error() string { return e.msg }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsBusinessRule reports whether err is a BusinessRuleError.
func IsBusinessRule(err error) bool {
	var v *BusinessRuleError
	return errors.As(err, &v)
}
