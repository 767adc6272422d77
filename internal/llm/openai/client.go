package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
)

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	httpClient *http.Client
	config     *Config
}

// chatRequest is the OpenAI-compatible request body
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *apiError    `json:"error,omitempty"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func NewClient(config *Config) (*Client, error) {
	return &Client{
		// no explicit timeout; inbound requests are already bounded by
		// the router's timeout middleware
		httpClient: &http.Client{},
		config:     config,
	}, nil
}

// GenerateCompletion sends the prompt as a single user message and
// returns the completion text.
func (c *Client) GenerateCompletion(ctx context.Context, prompt string, requestID string) (*models.CompletionResponse, error) {
	if c.config.APIKey == "" {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeAPIKey,
			Message:  "OPENAI_API_KEY is not configured",
		}
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.config.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeBadRequest,
			Message:  "Failed to marshal request body",
			Err:      err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeBadRequest,
			Message:  "Failed to create HTTP request",
			Err:      err,
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeServiceDown,
			Message:  "HTTP request to completion API failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Failed to read response body",
			Err:      err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "Failed to parse completion response",
			Err:      err,
		}
	}
	if parsed.Error != nil {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeServerError,
			Message:  parsed.Error.Message,
		}
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, &llm.ProviderError{
			Provider: "openai",
			Code:     llm.ErrCodeInvalidResponse,
			Message:  "No completion text in response",
		}
	}

	return &models.CompletionResponse{
		Text:      parsed.Choices[0].Message.Content,
		RequestID: requestID,
		Metadata: models.CompletionMetadata{
			ProcessingTime: int(time.Since(startTime).Milliseconds()),
			Provider:       "openai",
			Model:          c.config.Model,
		},
	}, nil
}

// statusError maps a non-200 status to a provider error. 404s carrying
// a "model" or "resource was not found" message indicate
// misconfiguration and must not be retried.
func (c *Client) statusError(statusCode int, body []byte) *llm.ProviderError {
	message := apiErrorMessage(body)

	perr := &llm.ProviderError{
		Provider:   "openai",
		StatusCode: statusCode,
		Message:    message,
	}

	switch {
	case statusCode == http.StatusTooManyRequests:
		perr.Code = llm.ErrCodeRateLimit
	case statusCode == http.StatusBadRequest:
		perr.Code = llm.ErrCodeBadRequest
	case statusCode == http.StatusNotFound:
		lower := strings.ToLower(message)
		switch {
		case strings.Contains(lower, "model"):
			perr.Code = llm.ErrCodeModelAccess
		case strings.Contains(lower, "resource was not found"):
			perr.Code = llm.ErrCodeEndpointNotFound
		default:
			perr.Code = llm.ErrCodeServiceDown
		}
	case statusCode >= http.StatusInternalServerError:
		perr.Code = llm.ErrCodeServerError
	default:
		perr.Code = llm.ErrCodeServiceDown
	}

	if perr.Message == "" {
		perr.Message = http.StatusText(statusCode)
	}
	return perr
}

func apiErrorMessage(body []byte) string {
	var envelope struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}

func (c *Client) GetProviderName() string {
	return "openai"
}
