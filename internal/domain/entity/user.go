// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an OAuth-derived identity in the Invoice Hub system.
// It is keyed internally by ID and externally by the provider's subject
// identifier (GoogleID), and upserted on every login.
type User struct {
	ID           uuid.UUID
	GoogleID     string
	Email        string
	Name         string
	Picture      string
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User from a provider identity.
func NewUser(googleID, email, name, picture, accessToken, refreshToken string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		GoogleID:     googleID,
		Email:        email,
		Name:         name,
		Picture:      picture,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// LegacyUser is the pre-OAuth numeric-id credential record. It is kept only
// for interface compatibility with older tooling and takes no part in the
// active login flow.
type LegacyUser struct {
	ID           int64
	Username     string
	PasswordHash string
}
