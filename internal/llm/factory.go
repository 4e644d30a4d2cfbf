package llm

import (
	"cmp"
	"context"
	"fmt"

	"github.com/sant0-9/promptsia/internal/config"
)

// NewProvider creates a provider from config. Every provider except Gemini
// goes through the OpenAI-compatible client with the provider's base URL.
func NewProvider(ctx context.Context, cfg *config.Config, apiKey string) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini requires an API key")
		}
		return NewGeminiProvider(ctx, apiKey, cfg.Model)

	case "ollama":
		info := config.GetProvider("ollama")
		// Ollama ignores the key but the client insists on one.
		return NewOpenAIProvider("ollama", cmp.Or(apiKey, "ollama"), cmp.Or(cfg.BaseURL, info.BaseURL), cmp.Or(cfg.Model, info.DefaultModel)), nil

	case "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("custom provider requires base_url")
		}
		return NewOpenAIProvider("custom", apiKey, cfg.BaseURL, cfg.Model), nil

	default:
		info := config.GetProvider(cfg.Provider)
		if info == nil {
			return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
		}
		if apiKey == "" {
			return nil, fmt.Errorf("%s requires an API key", cfg.Provider)
		}
		return NewOpenAIProvider(info.ID, apiKey, cmp.Or(cfg.BaseURL, info.BaseURL), cmp.Or(cfg.Model, info.DefaultModel)), nil
	}
}
