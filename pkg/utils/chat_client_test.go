package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatClient_ProviderSelection(t *testing.T) {
	groq, err := NewChatClient("groq", "test-key", "")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIChatClient{}, groq)

	oa, err := NewChatClient("OpenAI", "test-key", "gpt-4o")
	require.NoError(t, err)
	assert.IsType(t, &OpenAIChatClient{}, oa)
}

func TestNewChatClient_UnsupportedProvider(t *testing.T) {
	_, err := NewChatClient("anthropic", "test-key", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported chat provider")
}
