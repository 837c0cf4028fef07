package models

import (
	"time"

	"gorm.io/gorm"
)

// ExportStatus is the outcome of one export attempt.
type ExportStatus string

const (
	ExportStatusOK     ExportStatus = "ok"
	ExportStatusFailed ExportStatus = "failed"
)

// Export is a journal entry for one PDF export attempt.
// It records what was produced, never the invoice contents.
type Export struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Ref identifies the attempt in notifications and API responses
	Ref string `gorm:"size:36;uniqueIndex;not null" json:"ref"`

	InvoiceNumber string `gorm:"size:50;index" json:"invoice_number"`
	DesignID      string `gorm:"size:50" json:"design_id"`
	Filename      string `gorm:"size:255" json:"filename"`
	Path          string `gorm:"size:500" json:"path,omitempty"`
	Bytes         int64  `json:"bytes"`

	Status ExportStatus `gorm:"size:20;not null" json:"status"`
	Error  string       `gorm:"type:text" json:"error,omitempty"`
}

// Succeeded returns true if the artifact was written.
func (e *Export) Succeeded() bool {
	return e.Status == ExportStatusOK
}

// RecentExports returns the latest export attempts, newest first.
func RecentExports(db *gorm.DB, limit int) ([]Export, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var exports []Export
	err := db.Order("id DESC").Limit(limit).Find(&exports).Error
	return exports, err
}
