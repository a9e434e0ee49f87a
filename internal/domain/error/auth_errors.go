// Package error defines domain-specific errors for the Invoice Hub application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidOAuthState is returned when the OAuth state parameter is missing or unknown.
	ErrInvalidOAuthState = errors.New("invalid oauth state")

	// ErrOAuthExchangeFailed is returned when the authorization code exchange fails.
	ErrOAuthExchangeFailed = errors.New("oauth code exchange failed")

	// ErrInvalidToken is returned when a session token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidCredentials is returned by the legacy credential path when
	// username and password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthErrorCode defines error codes for authentication errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidOAuthState  AuthErrorCode = "AUTH-010003"
	ErrCodeOAuthExchange      AuthErrorCode = "AUTH-010004"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-010005"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010006"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020001"
)
