package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/generator"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/middleware"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/store"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

type ProblemHandler struct {
	generator     *generator.Generator
	generationLog *store.GenerationLog
	logger        *zap.Logger
}

func NewProblemHandler(gen *generator.Generator, logger *zap.Logger) *ProblemHandler {
	return &ProblemHandler{
		generator: gen,
		logger:    logger,
	}
}

// SetGenerationLog enables usage recording; the handler works without it
func (h *ProblemHandler) SetGenerationLog(log *store.GenerationLog) {
	h.generationLog = log
}

// GenerateHandler serves GET /api/v1/problems?grade=&topic=&nonce=
func (h *ProblemHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	// Get the validated request from middleware
	req := middleware.GetValidatedRequest[*models.ProblemRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	result, err := h.generator.Generate(r.Context(), req.Grade, req.Topic, req.RequestID)
	if err != nil {
		h.writeConfigError(w, req.RequestID, err)
		return
	}

	h.logger.Info("Problem resolved",
		zap.String("request_id", req.RequestID),
		zap.String("grade", req.Grade),
		zap.String("topic", req.Topic),
		zap.String("source", result.Metadata.Source),
		zap.Int("attempts", result.Metadata.Attempts))

	if h.generationLog != nil {
		if err := h.generationLog.Record(req.RequestID, req.Grade, req.Topic, result.Problem, result.Metadata); err != nil {
			h.logger.Warn("Failed to record served problem", zap.String("request_id", req.RequestID), zap.Error(err))
		}
	}

	utils.NoStoreJSON(w, http.StatusOK, result.Problem)
}

// writeConfigError maps the generator's configuration errors onto the
// two caller-visible 400 responses and the missing-key 500
func (h *ProblemHandler) writeConfigError(w http.ResponseWriter, requestID string, err error) {
	h.logger.Error("Configuration error", zap.String("request_id", requestID), zap.Error(err))

	switch llm.Code(err) {
	case llm.ErrCodeAPIKey:
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "API key not configured",
			Message: "The completion API key is missing from the server environment",
		})
	case llm.ErrCodeModelAccess:
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "Model access error",
			Message: err.Error(),
		})
	case llm.ErrCodeEndpointNotFound:
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   "API endpoint error",
			Message: err.Error(),
		})
	default:
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to generate problem",
			Message: err.Error(),
		})
	}
}

func generateRequestID() string {
	return uuid.New().String()
}

// ensureRequestID generates a request ID if one is not provided
func ensureRequestID(requestID string) string {
	if requestID == "" {
		return generateRequestID()
	}
	return requestID
}
