// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/invoice-hub/backend/internal/domain/entity"

// UserResponse represents the session-bound identity in API responses.
// Provider tokens never leave the server.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}

// ToUserResponse converts a domain user to its API shape.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}
}
