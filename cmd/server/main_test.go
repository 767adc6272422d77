package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/config"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/fallback"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/generator"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/handlers"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/history"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/prompts"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeProvider struct{}

func (fakeProvider) GenerateCompletion(context.Context, string, string) (*models.CompletionResponse, error) {
	return &models.CompletionResponse{}, nil
}
func (fakeProvider) GetProviderName() string { return "fake" }

type fakePrompt struct{}

func (fakePrompt) BuildProblemPrompt(string, string, prompts.Variety) (string, error) {
	return "prompt", nil
}
func (fakePrompt) GetTemplates() map[string]string { return map[string]string{} }

var (
	_ llm.Provider           = (*fakeProvider)(nil)
	_ prompts.PromptProvider = (*fakePrompt)(nil)
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_ENV", "value")
	if got := getEnv("TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("getEnv returned %s", got)
	}
	if got := getEnv("MISSING_ENV", "fallback"); got != "fallback" {
		t.Fatalf("getEnv default failed, got %s", got)
	}

	t.Setenv("TEST_INT", "10")
	if got := getEnvInt("TEST_INT", 5); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := getEnvInt("MISSING_INT", 7); got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}
}

func TestRegisterRoutes(t *testing.T) {
	router := chi.NewRouter()

	bank, err := fallback.NewBank()
	if err != nil {
		t.Fatalf("failed to load bank: %v", err)
	}
	gen := generator.New(fakeProvider{}, fakePrompt{}, history.New(history.DefaultCapacity), bank, zap.NewNop())

	problemHandler := handlers.NewProblemHandler(gen, zap.NewNop())
	curriculumHandler := handlers.NewCurriculumHandler()
	statsHandler := handlers.NewStatsHandler(nil)
	healthHandler := handlers.NewHealthHandler(nil, nil, nil, &config.Config{Provider: "openai"})

	registerRoutes(router, problemHandler, curriculumHandler, statsHandler, healthHandler)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected /healthz to be registered, got %d", rec.Code)
	}
}
