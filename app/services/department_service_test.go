package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

func TestCreateDepartment(t *testing.T) {
	f := newFixture()

	d, err := f.deptService.Create(context.Background(), "Comercial", decimal.NewFromInt(5000))
	require.NoError(t, err)
	require.Equal(t, "Comercial", d.Name)

	_, err = f.deptService.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
}

func TestCreateDepartmentValidation(t *testing.T) {
	f := newFixture()

	_, err := f.deptService.Create(context.Background(), "  ", decimal.NewFromInt(100))
	require.Error(t, err)
	require.True(t, models.IsValidation(err))

	_, err = f.deptService.Create(context.Background(), "Comercial", decimal.NewFromInt(-1))
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
	require.EqualError(t, err, "Monthly budget must be non-negative")
}

func TestUpdateDepartmentBudgetReductionGuard(t *testing.T) {
	f := newFixture()
	f.addApproved(500, time.Now())

	_, err := f.deptService.Update(context.Background(), f.department.ID, "Engenharia", decimal.NewFromInt(400))
	require.Error(t, err)
	require.True(t, models.IsBusinessRule(err))
	require.Contains(t, err.Error(), "Cannot reduce budget")

	stored, err := f.deptService.FindByID(context.Background(), f.department.ID)
	require.NoError(t, err)
	require.True(t, stored.MonthlyBudget.Equal(decimal.NewFromInt(1000)))

	d, err := f.deptService.Update(context.Background(), f.department.ID, "Engenharia", decimal.NewFromInt(600))
	require.NoError(t, err)
	require.True(t, d.MonthlyBudget.Equal(decimal.NewFromInt(600)))
}

func TestUpdateDepartmentRaisingBudget(t *testing.T) {
	f := newFixture()
	f.addApproved(900, time.Now())

	d, err := f.deptService.Update(context.Background(), f.department.ID, "Engenharia e Produto", decimal.NewFromInt(2000))
	require.NoError(t, err)
	require.Equal(t, "Engenharia e Produto", d.Name)
	require.True(t, d.MonthlyBudget.Equal(decimal.NewFromInt(2000)))
}

func TestMonthlyUsage(t *testing.T) {
	f := newFixture()
	now := time.Now()
	f.addApproved(300, now)
	f.addApproved(200, now)
	f.addApproved(400, now.AddDate(0, -1, 0))

	spent, err := f.deptService.MonthlyUsage(context.Background(), f.department.ID, now)
	require.NoError(t, err)
	require.True(t, spent.Equal(decimal.NewFromInt(500)))

	usage, err := f.deptService.MonthlyUsageAll(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	require.True(t, usage[f.department.ID].Equal(decimal.NewFromInt(500)))
}

func TestSweepBudgets(t *testing.T) {
	f := newFixture()
	f.addApproved(1100, time.Now())

	require.NoError(t, SweepBudgets(context.Background(), f.deptService, time.Now()))
}
