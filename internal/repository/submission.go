package repository

import (
	"netlist-visualizer-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission. Submissions are never updated after
// creation, so this is the only write operation.
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByUser retrieves a user's submissions, newest first, with pagination
func (r *SubmissionRepository) GetByUser(userID string, limit, offset int) ([]models.Submission, int64, error) {
	var submissions []models.Submission
	var total int64

	// Get total count
	if err := r.db.Model(&models.Submission{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}
