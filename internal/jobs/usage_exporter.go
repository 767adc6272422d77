package jobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/store"
)

// UsageExporterJob periodically writes served-problem records to JSONL
// files for curriculum analytics
type UsageExporterJob struct {
	generationLog *store.GenerationLog
	config        *ExporterConfig
	cron          *cron.Cron
}

// ExporterConfig contains configuration for the exporter job
type ExporterConfig struct {
	Schedule      string // Cron schedule (e.g., "0 2 * * *" for 2 AM daily)
	ExportDir     string // Directory to store exported files
	ExportEnabled bool   // Whether to run exports
}

// NewUsageExporterJob creates a new exporter job
func NewUsageExporterJob(generationLog *store.GenerationLog, config *ExporterConfig) *UsageExporterJob {
	return &UsageExporterJob{
		generationLog: generationLog,
		config:        config,
		cron:          cron.New(),
	}
}

// Start begins the scheduled export job
func (job *UsageExporterJob) Start() error {
	if !job.config.ExportEnabled {
		log.Println("Usage export is disabled, skipping scheduler")
		return nil
	}

	log.Printf("Starting usage exporter with schedule: %s", job.config.Schedule)

	_, err := job.cron.AddFunc(job.config.Schedule, func() {
		if err := job.RunExport(); err != nil {
			log.Printf("Export job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}

	job.cron.Start()
	return nil
}

// Stop stops the scheduled export job
func (job *UsageExporterJob) Stop() {
	if job.cron != nil {
		job.cron.Stop()
		log.Println("Usage exporter stopped")
	}
}

// RunExport performs a single export run
func (job *UsageExporterJob) RunExport() error {
	records, err := job.generationLog.GetUnexported(0) // no limit
	if err != nil {
		return fmt.Errorf("failed to get unexported records: %w", err)
	}

	if len(records) == 0 {
		log.Println("No unexported usage records found")
		return nil
	}

	jsonlData, err := job.generationLog.ExportToJSONL(records)
	if err != nil {
		return fmt.Errorf("failed to export to JSONL: %w", err)
	}

	if err := os.MkdirAll(job.config.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("usage_export_%s.jsonl", timestamp)
	path := filepath.Join(job.config.ExportDir, filename)

	if err := os.WriteFile(path, jsonlData, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	log.Printf("Exported %d usage records to %s", len(records), path)

	recordIDs := make([]uint, len(records))
	for i, record := range records {
		recordIDs[i] = record.ID
	}
	if err := job.generationLog.MarkAsExported(recordIDs); err != nil {
		return fmt.Errorf("failed to mark records as exported: %w", err)
	}

	return nil
}
