package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/curriculum"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"
)

type CurriculumHandler struct{}

func NewCurriculumHandler() *CurriculumHandler {
	return &CurriculumHandler{}
}

// ListHandler returns the full grade -> topics map
func (h *CurriculumHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	grades := curriculum.Grades()
	out := make(map[string][]string, len(grades))
	for _, grade := range grades {
		out[grade] = curriculum.Topics(grade)
	}
	utils.JSON(w, http.StatusOK, out)
}

// TopicsHandler returns the topic list for one grade
func (h *CurriculumHandler) TopicsHandler(w http.ResponseWriter, r *http.Request) {
	grade := chi.URLParam(r, "grade")

	topics := curriculum.Topics(grade)
	if topics == nil {
		utils.JSON(w, http.StatusNotFound, models.ErrorResponse{
			Error:   "Unknown grade",
			Message: "Grade " + grade + " is not in the curriculum",
		})
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"grade":  grade,
		"topics": topics,
	})
}
