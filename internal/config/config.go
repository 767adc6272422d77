package config

import (
	"errors"
	"os"
)

// app config, mostly AI provider related
type Config struct {
	Provider string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider: getEnvOrDefault("AI_PROVIDER", "openai"),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Provider {
	case "openai", "gemini":
		return nil
	}
	return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: openai, gemini")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
