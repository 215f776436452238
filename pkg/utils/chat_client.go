package utils

import (
	"context"
	"fmt"
	"strings"
)

// Chat completion settings shared by all providers. A moderate temperature favors
// itinerary variety over determinism; the probe caps output very small.
const (
	CompletionTemperature = 0.7
	CompletionMaxTokens   = 2048
	ProbeMaxTokens        = 50
	ProbeMessage          = "Say 'API connection successful' if you can read this."
)

// ChatClientInterface is the abstract text-generation capability the planner
// depends on: a fallible, non-deterministic function from a two-turn prompt to
// text. Implementations are long-lived and safe for concurrent use.
type ChatClientInterface interface {
	// Complete sends a system/user prompt pair and returns the first
	// completion's text content.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Ping sends a trivial fixed prompt to confirm reachability and
	// credentials. The result is observational only.
	Ping(ctx context.Context) error
}

// NewChatClient creates a chat client for the configured provider.
func NewChatClient(provider, apiKey, model string) (ChatClientInterface, error) {
	switch strings.ToLower(provider) {
	case "groq":
		return NewGroqChatClient(apiKey, model), nil
	case "openai":
		return NewOpenAIChatClient(apiKey, model), nil
	case "gemini":
		return NewGeminiChatClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'groq', 'openai' or 'gemini'", provider)
	}
}
