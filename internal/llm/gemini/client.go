package gemini

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
)

// Client represents a Gemini LLM client

type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	return &Client{config: config}, nil
}

// ensureClient creates the underlying SDK client on first use, so a
// missing API key surfaces as a per-request configuration error rather
// than a startup failure.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}
	if c.config.APIKey == "" {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "GEMINI_API_KEY is not configured",
		}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}
	c.client = client
	return nil
}

// GenerateCompletion sends the prompt and returns the completion text.
func (c *Client) GenerateCompletion(ctx context.Context, prompt string, requestID string) (*models.CompletionResponse, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	startTime := time.Now()
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate completion",
			Err:      err,
		}
	}

	if result == nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Empty response generated",
		}
	}

	return &models.CompletionResponse{
		Text:      text,
		RequestID: requestID,
		Metadata: models.CompletionMetadata{
			ProcessingTime: int(time.Since(startTime).Milliseconds()),
			Provider:       "gemini",
			Model:          c.config.Model,
		},
	}, nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}
