// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
)

// GetProfileUseCase retrieves the session-bound user identity.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the user record for the authenticated user ID.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
