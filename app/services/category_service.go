package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// CategoryService manages expense categories and their optional limits.
type CategoryService struct {
	Categories CategoryStore
}

func (s *CategoryService) Create(ctx context.Context, name string, dailyLimit, monthlyLimit *decimal.Decimal) (*models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.NewValidationError("Category name must be provided")
	}
	if dailyLimit != nil && dailyLimit.IsNegative() {
		return nil, models.NewValidationError("Daily limit must be non-negative")
	}
	if monthlyLimit != nil && monthlyLimit.IsNegative() {
		return nil, models.NewValidationError("Monthly limit must be non-negative")
	}
	if dailyLimit != nil && monthlyLimit != nil && monthlyLimit.LessThan(*dailyLimit) {
		return nil, models.NewValidationError("Monthly limit must not be lower than daily limit")
	}

	c := &models.Category{
		ID:           uuid.New(),
		Name:         name,
		DailyLimit:   dailyLimit,
		MonthlyLimit: monthlyLimit,
		CreatedAt:    time.Now(),
	}
	if err := s.Categories.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]*models.Category, error) {
	return s.Categories.FindAll(ctx)
}

func (s *CategoryService) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.Categories.FindByID(ctx, id)
}
