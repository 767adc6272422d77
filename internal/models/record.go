package models

import (
	"time"

	"gorm.io/gorm"
)

// GenerationRecord stores one served problem for usage analytics
// Note: no client identifiers are stored
type GenerationRecord struct {
	gorm.Model
	RequestID  string     `gorm:"uniqueIndex;not null" json:"request_id"`
	Grade      string     `gorm:"not null;index" json:"grade"`
	Topic      string     `gorm:"not null;index" json:"topic"`
	Source     string     `gorm:"not null" json:"source"` // "generated" | "fallback"
	Attempts   int        `gorm:"not null" json:"attempts"`
	Question   string     `gorm:"type:text;not null" json:"question"`
	ModelName  string     `json:"model_name"`
	ServedAt   time.Time  `gorm:"not null" json:"served_at"`
	Exported   bool       `gorm:"not null;default:false;index" json:"exported"`
	ExportedAt *time.Time `json:"exported_at"`
}

// UsageDataPoint is a single line in the JSONL usage export
type UsageDataPoint struct {
	Grade    string `json:"grade"`
	Topic    string `json:"topic"`
	Source   string `json:"source"`
	Attempts int    `json:"attempts"`
	Question string `json:"question"`
	ServedAt string `json:"served_at"`
}
