package llm

import (
	"context"
	"errors"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
)

// defines the interface for LLM providers
type Provider interface {
	GenerateCompletion(ctx context.Context, prompt string, requestID string) (*models.CompletionResponse, error)
	GetProviderName() string
}

// represents an error from an LLM provider
type ProviderError struct {
	Provider   string
	Code       string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Common error codes shared across providers
const (
	ErrCodeAPIKey           = "missing_api_key"
	ErrCodeRateLimit        = "rate_limit_exceeded"
	ErrCodeBadRequest       = "bad_request"
	ErrCodeServerError      = "server_error"
	ErrCodeInvalidResponse  = "invalid_response"
	ErrCodeModelAccess      = "model_access"
	ErrCodeEndpointNotFound = "endpoint_not_found"
	ErrCodeServiceDown      = "service_unavailable"
)

// IsConfigError reports whether the error indicates a misconfiguration
// (missing key, bad model, wrong endpoint) that must surface to the
// caller instead of being retried or degraded to a fallback problem.
func IsConfigError(err error) bool {
	var perr *ProviderError
	if !errors.As(err, &perr) {
		return false
	}
	switch perr.Code {
	case ErrCodeAPIKey, ErrCodeModelAccess, ErrCodeEndpointNotFound:
		return true
	}
	return false
}

// Code extracts the provider error code, or "" for non-provider errors.
func Code(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}
