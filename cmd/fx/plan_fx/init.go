package plan_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripmap/internal/api/controllers"
	"tripmap/internal/services"
	"tripmap/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvidePlanService,
	ProvidePlanController)

// ChatConfig holds configuration for the chat-completion client.
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	client, err := utils.NewChatClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}
	return client, nil
}

func ProvidePlanService(chatClient utils.ChatClientInterface) services.PlanServiceInterface {
	return services.NewPlanService(chatClient)
}

func ProvidePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}

// getChatConfig reads configuration from environment variables. A missing API
// key is logged but not fatal: credential problems surface at call time and
// the generator degrades to its fallback plan.
func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "groq")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
		model = getEnvWithDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	}

	if apiKey == "" {
		log.Printf("No API key configured for provider %s, generation will use fallback plans", provider)
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
