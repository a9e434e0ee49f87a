// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoice-hub/backend/internal/integration/persistence/model"
)

// TokenRepository stores session refresh tokens.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteExpiredTokens(ctx context.Context) error
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveRefreshToken stores a refresh token with its expiry.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	tokenModel := model.RefreshTokenModel{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&tokenModel).Error
}

// IsRefreshTokenValid reports whether the token is stored and unexpired.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var tokenModel model.RefreshTokenModel
	result := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now().UTC()).
		First(&tokenModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// DeleteRefreshToken removes a stored refresh token.
func (r *tokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token = ?", token).Error
}

// DeleteExpiredTokens removes every expired refresh token.
func (r *tokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Delete(&model.RefreshTokenModel{}, "expires_at <= ?", time.Now().UTC()).Error
}
