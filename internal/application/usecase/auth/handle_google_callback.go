// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/invoice-hub/backend/internal/application/adapter"
	"github.com/invoice-hub/backend/internal/domain/entity"
	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

// HandleGoogleCallbackInput represents the provider redirect parameters.
type HandleGoogleCallbackInput struct {
	State string
	Code  string
}

// HandleGoogleCallbackOutput carries the upserted user and their session tokens.
type HandleGoogleCallbackOutput struct {
	User   *entity.User
	Tokens *adapter.TokenPair
}

// HandleGoogleCallbackUseCase completes the OAuth flow: state verification,
// code exchange, identity upsert and session token issuance.
type HandleGoogleCallbackUseCase struct {
	oauthService adapter.OAuthService
	stateStore   adapter.StateStore
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewHandleGoogleCallbackUseCase creates a new HandleGoogleCallbackUseCase instance.
func NewHandleGoogleCallbackUseCase(
	oauthService adapter.OAuthService,
	stateStore adapter.StateStore,
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *HandleGoogleCallbackUseCase {
	return &HandleGoogleCallbackUseCase{
		oauthService: oauthService,
		stateStore:   stateStore,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute verifies the state, exchanges the code and upserts the identity.
// A first login inserts the user; later logins refresh the provider tokens
// and the update timestamp while keeping the original primary key.
func (uc *HandleGoogleCallbackUseCase) Execute(ctx context.Context, input HandleGoogleCallbackInput) (*HandleGoogleCallbackOutput, error) {
	ok, err := uc.stateStore.ConsumeState(ctx, input.State)
	if err != nil {
		return nil, fmt.Errorf("failed to verify oauth state: %w", err)
	}
	if !ok {
		return nil, domainerror.ErrInvalidOAuthState
	}

	session, err := uc.oauthService.ExchangeCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrOAuthExchangeFailed, err)
	}

	user := entity.NewUser(
		session.User.Subject,
		session.User.Email,
		session.User.Name,
		session.User.Picture,
		session.AccessToken,
		session.RefreshToken,
	)
	stored, err := uc.userRepo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, stored.ID, stored.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session tokens: %w", err)
	}

	return &HandleGoogleCallbackOutput{
		User:   stored,
		Tokens: tokens,
	}, nil
}
