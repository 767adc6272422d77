package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/config"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/fallback"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/prompts"
)

func TestHealthzHandler(t *testing.T) {
	handler := NewHealthHandler(nil, nil, nil, nil)
	recorder := httptest.NewRecorder()
	handler.HealthzHandler(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" || resp["service"] != "problems" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestReadyzHandlerReady(t *testing.T) {
	pm, err := prompts.NewPromptManager()
	if err != nil {
		t.Fatalf("failed to load prompts: %v", err)
	}
	bank, err := fallback.NewBank()
	if err != nil {
		t.Fatalf("failed to load bank: %v", err)
	}

	handler := NewHealthHandler(&mockProvider{}, pm, bank, &config.Config{Provider: "openai"})
	recorder := httptest.NewRecorder()
	handler.ReadyzHandler(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp ReadinessResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ready" {
		t.Fatalf("expected ready, got %s", resp.Status)
	}
	for name, check := range resp.Checks {
		if check.Status != "ok" {
			t.Fatalf("expected check %s to pass, got %+v", name, check)
		}
	}
}

func TestReadyzHandlerNotReady(t *testing.T) {
	handler := NewHealthHandler(nil, nil, nil, nil)
	recorder := httptest.NewRecorder()
	handler.ReadyzHandler(recorder, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", recorder.Code)
	}

	var resp ReadinessResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "not_ready" {
		t.Fatalf("expected not_ready, got %s", resp.Status)
	}
	if resp.Checks["provider"].Status != "failed" {
		t.Fatalf("expected provider check to fail, got %+v", resp.Checks["provider"])
	}
}
