package handlers

import (
	"net/http"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/config"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/curriculum"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/fallback"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/prompts"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"`  // "ready" | "not_ready"
	Service string                    `json:"service"` // Service name
	Checks  map[string]ReadinessCheck `json:"checks"`  // Individual check results
}

type HealthHandler struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	bank          *fallback.Bank
	config        *config.Config
}

func NewHealthHandler(provider llm.Provider, promptManager prompts.PromptProvider, bank *fallback.Bank, cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		provider:      provider,
		promptManager: promptManager,
		bank:          bank,
		config:        cfg,
	}
}

func (handler *HealthHandler) HealthzHandler(writer http.ResponseWriter, request *http.Request) {
	utils.JSON(writer, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "problems",
		"version": "1.0.0",
	})
}

func (handler *HealthHandler) ReadyzHandler(writer http.ResponseWriter, request *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	// verify AI provider is initialized
	if handler.provider == nil {
		checks["provider"] = ReadinessCheck{
			Status:  "failed",
			Message: "AI provider not initialized",
		}
		allChecksPass = false
	} else {
		checks["provider"] = ReadinessCheck{Status: "ok"}
	}

	// verify prompt manager has templates loaded
	if handler.promptManager == nil || len(handler.promptManager.GetTemplates()) == 0 {
		checks["prompt_manager"] = ReadinessCheck{
			Status:  "failed",
			Message: "No prompt templates loaded",
		}
		allChecksPass = false
	} else {
		checks["prompt_manager"] = ReadinessCheck{Status: "ok"}
	}

	// verify the curriculum map is populated
	if len(curriculum.Grades()) == 0 {
		checks["curriculum"] = ReadinessCheck{
			Status:  "failed",
			Message: "Curriculum map is empty",
		}
		allChecksPass = false
	} else {
		checks["curriculum"] = ReadinessCheck{Status: "ok"}
	}

	// verify the fallback bank loaded
	if handler.bank == nil || handler.bank.Size() == 0 {
		checks["fallback_bank"] = ReadinessCheck{
			Status:  "failed",
			Message: "Fallback problem bank not loaded",
		}
		allChecksPass = false
	} else {
		checks["fallback_bank"] = ReadinessCheck{Status: "ok"}
	}

	// verify configuration is valid
	if handler.config == nil {
		checks["configuration"] = ReadinessCheck{
			Status:  "failed",
			Message: "Configuration not loaded",
		}
		allChecksPass = false
	} else {
		checks["configuration"] = ReadinessCheck{Status: "ok"}
	}

	response := ReadinessResponse{
		Service: "problems",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(writer, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(writer, http.StatusServiceUnavailable, response)
	}
}
