// Package error defines domain-specific errors for the Invoice Hub application.
package error

import "errors"

// Chat domain errors. These never surface to the end user as HTTP errors;
// the chat flow degrades to a conversational fallback instead.
var (
	// ErrAIServiceUnavailable is returned when the generative model is not configured.
	ErrAIServiceUnavailable = errors.New("ai service is not available")

	// ErrEmptyChatMessage is returned when a chat request carries no message.
	ErrEmptyChatMessage = errors.New("chat message cannot be empty")

	// ErrEmptyAIResponse is returned when the model reply contains no text content.
	ErrEmptyAIResponse = errors.New("empty response from ai service")
)

// ChatErrorCode represents chat-specific error codes.
type ChatErrorCode string

// Chat error codes.
const (
	ErrCodeEmptyChatMessage ChatErrorCode = "CHAT-010001"
)
