package openai

import "os"

// holds OpenAI-specific configuration
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewConfig reads configuration from the environment. A missing API
// key is not an error here: the server must still boot so requests can
// be answered with a configuration error instead of crashing startup.
func NewConfig() (*Config, error) {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   model,
		BaseURL: baseURL,
	}, nil
}
