package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

func TestTokenRoundTrip(t *testing.T) {
	employee := &models.Employee{
		ID:    uuid.New(),
		Name:  "Ana Souza",
		Email: "ana.souza@example.com",
		Role:  models.RoleManager,
	}

	token, err := GenerateToken(employee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, employee.Email, claims.Email)
	require.Equal(t, models.RoleManager, claims.Role)

	id, err := claims.ParseEmployeeID()
	require.NoError(t, err)
	require.Equal(t, employee.ID, id)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	employee := &models.Employee{
		ID:    uuid.New(),
		Email: "ana.souza@example.com",
		Role:  models.RoleEmployee,
	}
	token, err := GenerateToken(employee)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	require.Error(t, err)
}
