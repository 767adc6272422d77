package routers

import (
	"github.com/rekhamallam/LCPSMathLearningApp/internal/handlers"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/middleware"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"

	"github.com/go-chi/chi/v5"
)

func ProblemRoutes(router *chi.Mux, problemHandler *handlers.ProblemHandler, curriculumHandler *handlers.CurriculumHandler, statsHandler *handlers.StatsHandler) {
	router.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.ValidateQuery[*models.ProblemRequest]()).Get("/problems", problemHandler.GenerateHandler)
		r.Get("/problems/stats", statsHandler.UsageStatsHandler)
		r.Get("/curriculum", curriculumHandler.ListHandler)
		r.Get("/curriculum/{grade}", curriculumHandler.TopicsHandler)
	})
}
