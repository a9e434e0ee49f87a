// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

// LogoutInput represents the input for logout.
type LogoutInput struct {
	RefreshToken string
}

// LogoutUseCase handles session termination.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the refresh token. Errors are ignored: the token may
// already be expired or revoked, and logout must still succeed.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) {
	if input.RefreshToken != "" {
		_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)
	}
}
