// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AIService defines the interface for the external generative model.
type AIService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Answer sends a fully assembled prompt to the model and returns its
	// free-text reply.
	Answer(ctx context.Context, prompt string) (string, error)
}
