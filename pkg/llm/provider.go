package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// LLMProvider defines the contract for any completion backend
type LLMProvider interface {
	// Chat sends a message list to the model and returns the response text
	Chat(ctx context.Context, history []Message) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string) (string, error)
}

// UpstreamError carries a structured error message returned by the remote
// API, as opposed to a transport failure.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
