package service

import (
	"netlist-visualizer-backend/internal/netlist"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SubmissionServiceInterface defines the operations exposed to the HTTP handlers
type SubmissionServiceInterface interface {
	Upload(userID string, raw []byte) (*UploadSummary, error)
	List(userID string, limit, offset int) (*SubmissionList, error)
	Get(userID string, id uuid.UUID) (*SubmissionDetail, error)
}

// GraphServiceInterface derives the visual graph for a stored submission
type GraphServiceInterface interface {
	ForSubmission(userID string, id uuid.UUID) (netlist.Graph, error)
}
