// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoice-hub/backend/internal/domain/entity"
)

// UserRepository defines the interface for user identity data access.
type UserRepository interface {
	// Upsert inserts the identity on first login and refreshes the token
	// fields and update timestamp on later logins, preserving the original
	// primary key. It returns the stored user.
	Upsert(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID retrieves a user by their internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByGoogleID retrieves a user by the provider subject identifier.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
}
