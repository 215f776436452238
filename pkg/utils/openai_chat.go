package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// OpenAIChatClient implements ChatClientInterface over any OpenAI-compatible
// chat-completion endpoint. Groq exposes the same wire format, so the Groq
// provider is this client pointed at the Groq base URL.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) *OpenAIChatClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func NewGroqChatClient(apiKey, model string) *OpenAIChatClient {
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: CompletionTemperature,
		MaxTokens:   CompletionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIChatClient) Ping(ctx context.Context) error {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: ProbeMessage},
		},
		MaxTokens: ProbeMaxTokens,
	})
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("probe returned no completion")
	}
	return nil
}
