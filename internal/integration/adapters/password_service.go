// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

// passwordService implements the adapter.PasswordService using bcrypt.
// Only the legacy credential path uses it.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{
		cost: bcrypt.DefaultCost,
	}
}

// Hash generates a bcrypt hash of the password.
func (s *passwordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare verifies a password against its bcrypt hash.
func (s *passwordService) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
