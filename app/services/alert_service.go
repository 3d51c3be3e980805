package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// AlertService issues and resolves soft-violation alerts.
type AlertService struct {
	Alerts AlertStore
}

// Build constructs a NEW alert for an expense without persisting it. The
// expense service stores built alerts in the same transaction as the expense
// they describe.
func (s *AlertService) Build(e *models.Expense, typ models.AlertType, message string) *models.Alert {
	return &models.Alert{
		ID:        uuid.New(),
		ExpenseID: e.ID,
		Type:      typ,
		Message:   message,
		Status:    models.AlertNew,
		CreatedAt: time.Now(),
	}
}

func (s *AlertService) FindAll(ctx context.Context) ([]*models.Alert, error) {
	return s.Alerts.FindAll(ctx)
}

func (s *AlertService) FindByStatus(ctx context.Context, status models.AlertStatus) ([]*models.Alert, error) {
	return s.Alerts.FindByStatus(ctx, status)
}

// Resolve moves a NEW alert to RESOLVED. Resolving an unknown id is a
// NotFound; resolving an already resolved alert is a business rule
// violation, never a silent success.
func (s *AlertService) Resolve(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	a, err := s.Alerts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == models.AlertResolved {
		return nil, models.NewBusinessRuleError("alert is already resolved")
	}
	if err := s.Alerts.UpdateStatus(ctx, a.ID, models.AlertNew, models.AlertResolved); err != nil {
		return nil, err
	}
	a.Status = models.AlertResolved
	return a, nil
}
