package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

func TestCreateEmployee(t *testing.T) {
	f := newFixture()
	svc := &EmployeeService{Employees: f.employees, Departments: f.departments}

	deptID := f.department.ID
	managerID := f.employee.ID
	e, err := svc.Create(context.Background(), CreateEmployeeInput{
		Name:         "Bruno Lima",
		Email:        "bruno.lima@example.com",
		Position:     "Analista",
		ManagerID:    &managerID,
		DepartmentID: &deptID,
	})
	require.NoError(t, err)
	require.Equal(t, models.RoleEmployee, e.Role, "role defaults to EMPLOYEE")
	require.Equal(t, deptID, *e.DepartmentID)

	stored, err := svc.FindByID(context.Background(), e.ID)
	require.NoError(t, err)
	require.Equal(t, "bruno.lima@example.com", stored.Email)
}

func TestCreateEmployeeValidation(t *testing.T) {
	f := newFixture()
	svc := &EmployeeService{Employees: f.employees, Departments: f.departments}

	_, err := svc.Create(context.Background(), CreateEmployeeInput{Email: "x@example.com"})
	require.Error(t, err)
	require.True(t, models.IsValidation(err))

	_, err = svc.Create(context.Background(), CreateEmployeeInput{Name: "Bruno"})
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
}

func TestCreateEmployeeUnknownReferences(t *testing.T) {
	f := newFixture()
	svc := &EmployeeService{Employees: f.employees, Departments: f.departments}

	unknown := uuid.New()
	_, err := svc.Create(context.Background(), CreateEmployeeInput{
		Name:         "Bruno",
		Email:        "bruno@example.com",
		DepartmentID: &unknown,
	})
	require.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Create(context.Background(), CreateEmployeeInput{
		Name:      "Bruno",
		Email:     "bruno@example.com",
		ManagerID: &unknown,
	})
	require.ErrorIs(t, err, models.ErrNotFound)
}
