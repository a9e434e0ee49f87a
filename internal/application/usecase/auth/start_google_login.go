// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/invoice-hub/backend/internal/application/adapter"
)

// StartGoogleLoginOutput carries the provider consent URL for the redirect.
type StartGoogleLoginOutput struct {
	AuthURL string
}

// StartGoogleLoginUseCase begins the OAuth flow: it mints a random state
// value, stores it with a bounded lifetime and builds the consent URL.
type StartGoogleLoginUseCase struct {
	oauthService adapter.OAuthService
	stateStore   adapter.StateStore
}

// NewStartGoogleLoginUseCase creates a new StartGoogleLoginUseCase instance.
func NewStartGoogleLoginUseCase(oauthService adapter.OAuthService, stateStore adapter.StateStore) *StartGoogleLoginUseCase {
	return &StartGoogleLoginUseCase{
		oauthService: oauthService,
		stateStore:   stateStore,
	}
}

// Execute generates the state value and the consent URL.
func (uc *StartGoogleLoginUseCase) Execute(ctx context.Context) (*StartGoogleLoginOutput, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate oauth state: %w", err)
	}
	state := hex.EncodeToString(buf)

	if err := uc.stateStore.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to store oauth state: %w", err)
	}

	return &StartGoogleLoginOutput{
		AuthURL: uc.oauthService.AuthCodeURL(state),
	}, nil
}
