// Package llm wraps chat-completion providers behind one interface.
// Anthropic is the primary provider; OpenAI serves as fallback when the
// Anthropic key is absent or a call keeps failing.
package llm

import (
	"context"
	"errors"

	"github.com/jahboukie/inner-architect/internal/domain"
)

// ErrNoProvider is returned when no provider is configured.
var ErrNoProvider = errors.New("llm: no provider configured")

// Request is one chat-completion call.
type Request struct {
	System    string
	History   []domain.TranscriptEntry
	Message   string
	MaxTokens int
}

// Provider is a chat-completion backend.
type Provider interface {
	// Complete returns the assistant reply for the request.
	Complete(ctx context.Context, req Request) (string, error)
	// Name identifies the provider in logs.
	Name() string
}
