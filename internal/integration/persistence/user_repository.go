// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
	"github.com/invoice-hub/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Upsert inserts the identity on first login. On later logins it refreshes
// the profile and provider token fields plus the update timestamp, keeping
// the original primary key and creation time.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	var existing model.UserModel
	result := r.db.WithContext(ctx).Where("google_id = ?", user.GoogleID).First(&existing)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
		userModel := model.UserFromEntity(user)
		if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
			return nil, err
		}
		return userModel.ToEntity(), nil
	}

	updates := map[string]interface{}{
		"email":         user.Email,
		"name":          user.Name,
		"picture":       user.Picture,
		"access_token":  user.AccessToken,
		"refresh_token": user.RefreshToken,
		"updated_at":    time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, existing.ID)
}

// FindByID retrieves a user by their internal ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByGoogleID retrieves a user by the provider subject identifier.
func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}
