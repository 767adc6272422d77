package handlers

import (
	"net/http"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/store"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

type StatsHandler struct {
	generationLog *store.GenerationLog
}

func NewStatsHandler(generationLog *store.GenerationLog) *StatsHandler {
	return &StatsHandler{generationLog: generationLog}
}

// UsageStatsHandler serves aggregate served-problem statistics
func (h *StatsHandler) UsageStatsHandler(w http.ResponseWriter, r *http.Request) {
	if h.generationLog == nil {
		utils.JSON(w, http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "Usage tracking unavailable",
			Message: "No database is configured for this instance",
		})
		return
	}

	stats, err := h.generationLog.GetUsageStats()
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to load usage stats",
			Message: err.Error(),
		})
		return
	}

	utils.JSON(w, http.StatusOK, stats)
}
