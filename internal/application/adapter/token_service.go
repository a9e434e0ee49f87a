// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token management.
type TokenService interface {
	// GenerateTokenPair issues a new access and refresh token pair and
	// persists the refresh token.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken revokes a stored refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error
}
