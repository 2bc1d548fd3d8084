package service

import (
	"errors"

	apperrors "netlist-visualizer-backend/internal/errors"
	"netlist-visualizer-backend/internal/netlist"
	"netlist-visualizer-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GraphService recomputes the derived node/edge projection for a stored
// submission. The graph is transient: built on read, positioned by the
// configured layouter, discarded after the response.
type GraphService struct {
	repo     repository.SubmissionRepositoryInterface
	layouter netlist.Layouter
}

// NewGraphService creates a new graph service. A nil layouter falls back
// to the deterministic column layout.
func NewGraphService(repo repository.SubmissionRepositoryInterface, layouter netlist.Layouter) *GraphService {
	if layouter == nil {
		layouter = netlist.DefaultColumnLayout()
	}
	return &GraphService{repo: repo, layouter: layouter}
}

// ForSubmission builds the graph from the stored netlist and its stored
// violations. Submissions whose netlist never passed the schema validator
// have no typed form to build from and yield ErrGraphUnavailable.
func (s *GraphService) ForSubmission(userID string, id uuid.UUID) (netlist.Graph, error) {
	if userID == "" {
		userID = "anonymous"
	}

	submission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return netlist.Graph{}, apperrors.ErrSubmissionNotFound
		}
		return netlist.Graph{}, apperrors.NewStorageUnavailableError("get submission", err)
	}
	if submission.UserID != userID {
		return netlist.Graph{}, apperrors.ErrSubmissionNotFound
	}

	n, structural, err := netlist.DecodeNetlist(submission.Netlist)
	if err != nil || len(structural) > 0 {
		return netlist.Graph{}, apperrors.ErrGraphUnavailable
	}

	validation, err := submission.Validation()
	if err != nil {
		return netlist.Graph{}, err
	}

	return s.layouter.Apply(netlist.BuildGraph(n, validation.Violations)), nil
}
