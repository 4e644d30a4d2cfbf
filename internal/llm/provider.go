package llm

import (
	"context"
	"errors"
)

// ErrTruncated means the model stopped at its output token limit, so the
// reply is incomplete.
var ErrTruncated = errors.New("response truncated at the output token limit")

// Provider is the interface all LLM providers must implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a completion request and returns the full response
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks if the provider is reachable
	Ping(ctx context.Context) error
}

// CompletionRequest represents a request to the LLM
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Message represents a chat message
type Message struct {
	Role    string
	Content string
}

// CompletionResponse represents the full response
type CompletionResponse struct {
	Content      string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a single-message completion request carrying the
// whole instruction as user content. MaxTokens is left at zero so the
// provider's own output limit applies.
func NewRequest(model, instruction string) *CompletionRequest {
	return &CompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: "user", Content: instruction},
		},
		Temperature: 0.7,
	}
}

// Truncated reports whether a finish reason means the output limit was hit.
// Gemini reports MAX_TOKENS, OpenAI-compatible APIs report length.
func Truncated(finishReason string) bool {
	switch finishReason {
	case "MAX_TOKENS", "length":
		return true
	}
	return false
}
