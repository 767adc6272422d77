package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&Config{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return client
}

func TestGenerateCompletionSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"question\":\"q\",\"answer\":\"a\"}"}}]}`))
	})

	resp, err := client.GenerateCompletion(context.Background(), "prompt", "req-1")
	if err != nil {
		t.Fatalf("GenerateCompletion returned error: %v", err)
	}
	if resp.Text != `{"question":"q","answer":"a"}` {
		t.Fatalf("unexpected completion text: %s", resp.Text)
	}
	if resp.Metadata.Provider != "openai" || resp.Metadata.Model != "test-model" {
		t.Fatalf("unexpected metadata: %+v", resp.Metadata)
	}
}

func TestGenerateCompletionMissingKey(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	client.config.APIKey = ""

	_, err := client.GenerateCompletion(context.Background(), "prompt", "req-1")
	if llm.Code(err) != llm.ErrCodeAPIKey {
		t.Fatalf("expected missing key error, got %v", err)
	}
	if called {
		t.Fatal("expected zero outbound calls without an API key")
	}
}

func TestGenerateCompletionStatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{"rate limit", http.StatusTooManyRequests, `{"error":{"message":"rate limit"}}`, llm.ErrCodeRateLimit},
		{"bad request", http.StatusBadRequest, `{"error":{"message":"bad request"}}`, llm.ErrCodeBadRequest},
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`, llm.ErrCodeServerError},
		{"model not found", http.StatusNotFound, `{"error":{"message":"The model gpt-x does not exist"}}`, llm.ErrCodeModelAccess},
		{"endpoint not found", http.StatusNotFound, `{"error":{"message":"Resource was not found"}}`, llm.ErrCodeEndpointNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			_, err := client.GenerateCompletion(context.Background(), "prompt", "req-1")
			if llm.Code(err) != tc.wantCode {
				t.Fatalf("expected code %s, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestGenerateCompletionEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.GenerateCompletion(context.Background(), "prompt", "req-1")
	if llm.Code(err) != llm.ErrCodeInvalidResponse {
		t.Fatalf("expected invalid response error, got %v", err)
	}
}

func TestIsConfigErrorClassification(t *testing.T) {
	if !llm.IsConfigError(&llm.ProviderError{Code: llm.ErrCodeAPIKey}) {
		t.Fatal("missing key should be a config error")
	}
	if !llm.IsConfigError(&llm.ProviderError{Code: llm.ErrCodeModelAccess}) {
		t.Fatal("model access should be a config error")
	}
	if llm.IsConfigError(&llm.ProviderError{Code: llm.ErrCodeRateLimit}) {
		t.Fatal("rate limit should not be a config error")
	}
}
