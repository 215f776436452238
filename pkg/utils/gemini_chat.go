package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiCallTimeout = 30 * time.Second

// GeminiChatClient implements ChatClientInterface using Google's Gemini models.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(apiKey, model string) (*GeminiChatClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(CompletionTemperature)
	m.SetMaxOutputTokens(CompletionMaxTokens)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, geminiCallTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiChatClient) Ping(ctx context.Context) error {
	m := c.client.GenerativeModel(c.model)
	m.SetMaxOutputTokens(ProbeMaxTokens)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, geminiCallTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(ProbeMessage))
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("probe returned no candidates")
	}
	return nil
}

// Close closes the underlying Gemini client.
func (c *GeminiChatClient) Close() error {
	return c.client.Close()
}
