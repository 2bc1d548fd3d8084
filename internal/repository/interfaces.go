package repository

import (
	"netlist-visualizer-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SubmissionRepositoryInterface defines the interface for submission repository operations
type SubmissionRepositoryInterface interface {
	Create(submission *models.Submission) error
	GetByID(id uuid.UUID) (*models.Submission, error)
	GetByUser(userID string, limit, offset int) ([]models.Submission, int64, error)
}
