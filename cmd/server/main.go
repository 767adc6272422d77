package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/config"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/fallback"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/generator"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/handlers"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/history"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/jobs"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/llm"
	_ "github.com/rekhamallam/LCPSMathLearningApp/internal/llm/gemini"
	_ "github.com/rekhamallam/LCPSMathLearningApp/internal/llm/openai"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/prompts"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/routers"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/store"
	"github.com/rekhamallam/LCPSMathLearningApp/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func registerRoutes(router *chi.Mux, problemHandler *handlers.ProblemHandler, curriculumHandler *handlers.CurriculumHandler, statsHandler *handlers.StatsHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.ProblemRoutes(router, problemHandler, curriculumHandler, statsHandler)
}

// Helper functions for environment variables
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.GenerationRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// static fallback bank
	bank, err := fallback.NewBank()
	if err != nil {
		logger.Fatal("Failed to load fallback problem bank", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	questionHistory := history.New(getEnvInt("QUESTION_HISTORY_SIZE", history.DefaultCapacity))
	problemGenerator := generator.New(aiProvider, promptManager, questionHistory, bank, logger)

	problemHandler := handlers.NewProblemHandler(problemGenerator, logger)
	curriculumHandler := handlers.NewCurriculumHandler()
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, bank, cfg)

	// Initialize database for usage tracking
	db, err := initDatabase()
	if err != nil {
		logger.Error("Failed to initialize database, usage tracking will be disabled", zap.Error(err))
	}

	var generationLog *store.GenerationLog
	var exporterJob *jobs.UsageExporterJob

	if db != nil {
		generationLog = store.NewGenerationLog(db)
		problemHandler.SetGenerationLog(generationLog)

		exporterConfig := &jobs.ExporterConfig{
			Schedule:      getEnv("USAGE_EXPORT_SCHEDULE", "0 2 * * *"),
			ExportDir:     getEnv("USAGE_EXPORT_DIR", "./exports"),
			ExportEnabled: getEnv("USAGE_EXPORT_ENABLED", "false") == "true",
		}

		exporterJob = jobs.NewUsageExporterJob(generationLog, exporterConfig)
		if exporterConfig.ExportEnabled {
			if err := exporterJob.Start(); err != nil {
				logger.Error("Failed to start usage exporter job", zap.Error(err))
			} else {
				logger.Info("Usage exporter job started", zap.String("schedule", exporterConfig.Schedule))
			}
		}

		logger.Info("Usage tracking initialized successfully")
	}

	statsHandler := handlers.NewStatsHandler(generationLog)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", getEnv("FRONTEND_ORIGIN", "http://localhost:3000")},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))

	registerRoutes(router, problemHandler, curriculumHandler, statsHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Problem service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Problem service shutting down...")

	if exporterJob != nil {
		exporterJob.Stop()
		logger.Info("Usage exporter job stopped")
	}

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Problem service exited")
}
