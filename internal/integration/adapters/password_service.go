// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/budget-control/backend/internal/application/adapter"
)

// passwordService implements the adapter.PasswordService interface with bcrypt.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new password service hashing with the given bcrypt cost.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &passwordService{
		cost: cost,
	}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
