package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	BaseURL      string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "gemini",
		Name:         "Gemini",
		Description:  "Google, fast and cheap",
		SignupURL:    "https://aistudio.google.com/app/apikey",
		Models:       []string{"gemini-2.5-flash", "gemini-2.5-pro", "gemini-2.0-flash"},
		DefaultModel: "gemini-2.5-flash",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT-4o, most capable",
		BaseURL:      "https://api.openai.com/v1",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o", "gpt-4o-mini", "gpt-4.1-mini"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Description:  "Claude, great writing",
		BaseURL:      "https://api.anthropic.com/v1/",
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022"},
		DefaultModel: "claude-3-5-haiku-20241022",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		Description:  "Very fast, cheap",
		BaseURL:      "https://api.groq.com/openai/v1",
		SignupURL:    "https://console.groq.com/keys",
		Models:       []string{"llama-3.3-70b-versatile", "llama-3.1-8b-instant"},
		DefaultModel: "llama-3.3-70b-versatile",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		BaseURL:      "https://openrouter.ai/api/v1",
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"google/gemini-2.5-flash", "openai/gpt-4o-mini", "meta-llama/llama-3.1-70b-instruct"},
		DefaultModel: "google/gemini-2.5-flash",
	},
	{
		ID:           "ollama",
		Name:         "Ollama",
		Description:  "Local, free, private",
		BaseURL:      "http://localhost:11434/v1",
		Models:       []string{"llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel: "llama3.1:8b",
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
