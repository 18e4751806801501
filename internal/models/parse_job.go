package models

import (
	"time"

	"github.com/google/uuid"
)

type ParseJobStatus string

const (
	StatusQueued     ParseJobStatus = "queued"
	StatusProcessing ParseJobStatus = "processing"
	StatusCompleted  ParseJobStatus = "completed"
	StatusFailed     ParseJobStatus = "failed"
)

// ParseJob is one asynchronous parsing run over an uploaded document or a
// LinkedIn profile URL. Exactly one of DocumentID / LinkedInURL is set.
type ParseJob struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID    *uuid.UUID     `gorm:"type:uuid" json:"document_id,omitempty"`
	LinkedInURL   *string        `gorm:"type:text" json:"linkedin_url,omitempty"`
	Status        ParseJobStatus `gorm:"not null;default:'queued'" json:"status"`
	ParsingMethod *string        `gorm:"type:text" json:"parsing_method,omitempty"`
	ResultJSON    *string        `gorm:"type:text" json:"-"`
	ErrorMessage  *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Document *Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (ParseJob) TableName() string {
	return "parse_jobs"
}
