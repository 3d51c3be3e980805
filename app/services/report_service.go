package services

import (
	"context"
	"time"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// ReportService produces expense report rows over a date range.
type ReportService struct {
	Expenses ExpenseStore
}

func (s *ReportService) ExpenseRows(ctx context.Context, start, end time.Time) ([]*models.ExpenseReportRow, error) {
	if end.Before(start) {
		return nil, models.NewValidationError("End date must not be before start date")
	}
	return s.Expenses.ReportRows(ctx, start, end)
}
