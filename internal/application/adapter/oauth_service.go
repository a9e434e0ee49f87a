// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// OAuthUserInfo is the provider profile of an authenticated user.
type OAuthUserInfo struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// OAuthSession is the result of a successful authorization code exchange.
type OAuthSession struct {
	AccessToken  string
	RefreshToken string
	User         OAuthUserInfo
}

// OAuthService defines the interface for the external OAuth provider.
type OAuthService interface {
	// AuthCodeURL builds the provider consent URL carrying the given state.
	AuthCodeURL(state string) string

	// ExchangeCode trades an authorization code for provider tokens and the
	// user profile.
	ExchangeCode(ctx context.Context, code string) (*OAuthSession, error)
}

// StateStore holds short-lived OAuth state values for CSRF protection.
type StateStore interface {
	// SaveState stores a state value with a bounded lifetime.
	SaveState(ctx context.Context, state string) error

	// ConsumeState removes a state value, reporting whether it existed.
	ConsumeState(ctx context.Context, state string) (bool, error)
}
