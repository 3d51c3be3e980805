package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// EmployeeService manages employees.
type EmployeeService struct {
	Employees   EmployeeStore
	Departments DepartmentStore
}

type CreateEmployeeInput struct {
	Name         string
	Email        string
	Position     string
	ManagerID    *uuid.UUID
	DepartmentID *uuid.UUID
	Role         models.EmployeeRole
}

func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput) (*models.Employee, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Employee name must be provided")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, models.NewValidationError("Employee email must be provided")
	}
	if in.DepartmentID != nil {
		if _, err := s.Departments.FindByID(ctx, *in.DepartmentID); err != nil {
			return nil, err
		}
	}
	if in.ManagerID != nil {
		if _, err := s.Employees.FindByID(ctx, *in.ManagerID); err != nil {
			return nil, err
		}
	}

	role := in.Role
	if role == "" {
		role = models.RoleEmployee
	}
	e := &models.Employee{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		Position:     in.Position,
		ManagerID:    in.ManagerID,
		DepartmentID: in.DepartmentID,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.Employees.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) FindAll(ctx context.Context) ([]*models.Employee, error) {
	return s.Employees.FindAll(ctx)
}

func (s *EmployeeService) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return s.Employees.FindByID(ctx, id)
}
