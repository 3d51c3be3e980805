package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/config"
	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// Claims is the token contract with the external identity provider. The
// expense API only verifies tokens; issuing them and managing credentials is
// the provider's job.
type Claims struct {
	EmployeeID string              `json:"employee_id"`
	Email      string              `json:"email"`
	Role       models.EmployeeRole `json:"role"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	if config.AppConfig != nil && config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "expense-manager-dev-secret" // Default for development
	}
	return []byte(secret)
}

// GenerateToken signs a token for an employee. Used by the identity
// collaborator sharing this secret and by the tests.
func GenerateToken(employee *models.Employee) (string, error) {
	claims := Claims{
		EmployeeID: employee.ID.String(),
		Email:      employee.Email,
		Role:       employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "expense-manager",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ValidateToken parses and verifies a token, returning its claims.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}

// EmployeeID extracts the employee id from validated claims.
func (c *Claims) ParseEmployeeID() (uuid.UUID, error) {
	return uuid.Parse(c.EmployeeID)
}
