package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/models"
)

// GenerationLog persists served problems for usage analytics
type GenerationLog struct {
	db *gorm.DB
}

func NewGenerationLog(db *gorm.DB) *GenerationLog {
	return &GenerationLog{db: db}
}

// Record stores one served problem
func (gl *GenerationLog) Record(requestID, grade, topic string, result models.Problem, meta models.ProblemMetadata) error {
	record := &models.GenerationRecord{
		RequestID: requestID,
		Grade:     grade,
		Topic:     topic,
		Source:    meta.Source,
		Attempts:  meta.Attempts,
		Question:  result.Question,
		ModelName: meta.Model,
		ServedAt:  time.Now(),
		Exported:  false,
	}

	if err := gl.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to store generation record: %w", err)
	}
	return nil
}

// GetUnexported retrieves records that haven't been exported yet
func (gl *GenerationLog) GetUnexported(limit int) ([]models.GenerationRecord, error) {
	var records []models.GenerationRecord

	query := gl.db.Where("exported = ?", false).Order("served_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get unexported records: %w", err)
	}
	return records, nil
}

// MarkAsExported marks records as exported
func (gl *GenerationLog) MarkAsExported(recordIDs []uint) error {
	now := time.Now()
	result := gl.db.Model(&models.GenerationRecord{}).
		Where("id IN ?", recordIDs).
		Updates(map[string]interface{}{
			"exported":    true,
			"exported_at": now,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark records as exported: %w", result.Error)
	}
	return nil
}

// ExportToJSONL serializes records to JSONL for curriculum analytics
func (gl *GenerationLog) ExportToJSONL(records []models.GenerationRecord) ([]byte, error) {
	var out []byte
	for i, record := range records {
		point := models.UsageDataPoint{
			Grade:    record.Grade,
			Topic:    record.Topic,
			Source:   record.Source,
			Attempts: record.Attempts,
			Question: record.Question,
			ServedAt: record.ServedAt.Format(time.RFC3339),
		}

		line, err := json.Marshal(point)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal usage data point: %w", err)
		}

		out = append(out, line...)
		if i < len(records)-1 {
			out = append(out, '\n')
		}
	}
	return out, nil
}

// GetUsageStats returns aggregate statistics about served problems
func (gl *GenerationLog) GetUsageStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalCount int64
	if err := gl.db.Model(&models.GenerationRecord{}).Count(&totalCount).Error; err != nil {
		return nil, err
	}
	stats["total_served"] = totalCount

	var fallbackCount int64
	if err := gl.db.Model(&models.GenerationRecord{}).Where("source = ?", "fallback").Count(&fallbackCount).Error; err != nil {
		return nil, err
	}
	stats["fallback_served"] = fallbackCount
	stats["generated_served"] = totalCount - fallbackCount

	var unexportedCount int64
	if err := gl.db.Model(&models.GenerationRecord{}).Where("exported = ?", false).Count(&unexportedCount).Error; err != nil {
		return nil, err
	}
	stats["unexported_count"] = unexportedCount

	return stats, nil
}
