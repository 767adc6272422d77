package gemini

import "os"

// holds Gemini-specific configuration
type Config struct {
	APIKey string
	Model  string
}

// NewConfig reads configuration from the environment. As with the
// OpenAI provider, a missing key does not fail startup; each request
// is answered with a configuration error instead.
func NewConfig() (*Config, error) {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash" // default model
	}

	return &Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  model,
	}, nil
}
