// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauthapi "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

// GoogleOAuthService implements the adapter.OAuthService against Google's
// OAuth2 endpoints.
type GoogleOAuthService struct {
	config *oauth2.Config
}

// NewGoogleOAuthService creates a new Google OAuth service instance.
func NewGoogleOAuthService(clientID, clientSecret, redirectURL string) *GoogleOAuthService {
	return &GoogleOAuthService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// AuthCodeURL builds the consent URL. Offline access is requested so Google
// returns a refresh token to store on the identity record.
func (s *GoogleOAuthService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// ExchangeCode trades the authorization code for tokens and fetches the
// user profile.
func (s *GoogleOAuthService) ExchangeCode(ctx context.Context, code string) (*adapter.OAuthSession, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	service, err := oauthapi.NewService(ctx, option.WithTokenSource(s.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}

	info, err := service.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch userinfo: %w", err)
	}

	return &adapter.OAuthSession{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		User: adapter.OAuthUserInfo{
			Subject: info.Id,
			Email:   info.Email,
			Name:    info.Name,
			Picture: info.Picture,
		},
	}, nil
}
