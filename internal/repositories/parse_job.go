package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-parser/internal/models"
)

type ParseJobRepository interface {
	Create(job *models.ParseJob) error
	FindByID(id uuid.UUID) (*models.ParseJob, error)
	UpdateStatus(id uuid.UUID, status models.ParseJobStatus) error
	UpdateResult(id uuid.UUID, resultJSON, parsingMethod string) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.ParseJob, error)
	FindLatestCompletedForDocument(docID, excludeJobID uuid.UUID) (*models.ParseJob, error)
	FindLatestCompletedForURL(url string, excludeJobID uuid.UUID) (*models.ParseJob, error)
}

type parseJobRepository struct {
	db *gorm.DB
}

func NewParseJobRepository(db *gorm.DB) ParseJobRepository {
	return &parseJobRepository{db: db}
}

func (r *parseJobRepository) Create(job *models.ParseJob) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create parse job: %w", err)
	}
	return nil
}

func (r *parseJobRepository) FindByID(id uuid.UUID) (*models.ParseJob, error) {
	var job models.ParseJob
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("parse job not found")
		}
		return nil, fmt.Errorf("failed to find parse job: %w", err)
	}
	return &job, nil
}

func (r *parseJobRepository) UpdateStatus(id uuid.UUID, status models.ParseJobStatus) error {
	result := r.db.Model(&models.ParseJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("parse job not found")
	}
	return nil
}

func (r *parseJobRepository) UpdateResult(id uuid.UUID, resultJSON, parsingMethod string) error {
	result := r.db.Model(&models.ParseJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         models.StatusCompleted,
			"result_json":    resultJSON,
			"parsing_method": parsingMethod,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("parse job not found")
	}
	return nil
}

func (r *parseJobRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.ParseJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("parse job not found")
	}
	return nil
}

func (r *parseJobRepository) FindPendingJobs(limit int) ([]models.ParseJob, error) {
	var jobs []models.ParseJob
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}
	return jobs, nil
}

func (r *parseJobRepository) FindLatestCompletedForDocument(docID, excludeJobID uuid.UUID) (*models.ParseJob, error) {
	var job models.ParseJob
	err := r.db.
		Where("document_id = ? AND status = ? AND id <> ?", docID, models.StatusCompleted, excludeJobID).
		Order("updated_at DESC").
		First(&job).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find previous parse: %w", err)
	}
	return &job, nil
}

func (r *parseJobRepository) FindLatestCompletedForURL(url string, excludeJobID uuid.UUID) (*models.ParseJob, error) {
	var job models.ParseJob
	err := r.db.
		Where("linkedin_url = ? AND status = ? AND id <> ?", url, models.StatusCompleted, excludeJobID).
		Order("updated_at DESC").
		First(&job).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find previous parse: %w", err)
	}
	return &job, nil
}
