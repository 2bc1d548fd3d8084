package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"netlist-visualizer-backend/internal/database/models"
	apperrors "netlist-visualizer-backend/internal/errors"
	"netlist-visualizer-backend/internal/netlist"
	"netlist-visualizer-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pagination bounds for listing submissions.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SubmissionService runs the upload pipeline: decode, validate, persist.
// Validation runs are independent of each other; the service holds only
// read-only rule configuration, so concurrent uploads need no locking.
type SubmissionService struct {
	repo  repository.SubmissionRepositoryInterface
	rules netlist.RuleConfig
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo repository.SubmissionRepositoryInterface, rules netlist.RuleConfig) *SubmissionService {
	if rules.MaxViolations <= 0 {
		rules.MaxViolations = netlist.MaxViolations
	}
	return &SubmissionService{repo: repo, rules: rules}
}

// UploadSummary is the response to a successful upload, valid or not.
type UploadSummary struct {
	ID         uuid.UUID           `json:"id"`
	Status     netlist.Status      `json:"status"`
	Violations []netlist.Violation `json:"violations"`
}

// SubmissionListItem is one row of the paginated listing.
type SubmissionListItem struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt string         `json:"createdAt"`
	Status    netlist.Status `json:"status"`
}

// SubmissionList is a page of a user's submissions.
type SubmissionList struct {
	Total int64                `json:"total"`
	Items []SubmissionListItem `json:"items"`
}

// SubmissionDetail is the full stored record for one submission.
type SubmissionDetail struct {
	ID         uuid.UUID           `json:"id"`
	CreatedAt  string              `json:"createdAt"`
	Status     netlist.Status      `json:"status"`
	Violations []netlist.Violation `json:"violations"`
	Netlist    json.RawMessage     `json:"netlist"`
}

// Upload validates a raw netlist document and persists the outcome. Both
// valid and invalid netlists become submissions; only input that is not
// JSON at all (MalformedInputError) or a storage failure aborts the
// pipeline. The stored record is never mutated afterwards.
func (s *SubmissionService) Upload(userID string, raw []byte) (*UploadSummary, error) {
	if userID == "" {
		userID = "anonymous"
	}

	_, result, err := netlist.Validate(raw, s.rules)
	if err != nil {
		return nil, err
	}

	violations, err := json.Marshal(result.Violations)
	if err != nil {
		return nil, fmt.Errorf("encode violations: %w", err)
	}

	submission := &models.Submission{
		UserID:     userID,
		Netlist:    json.RawMessage(raw),
		Status:     string(result.Status),
		Violations: violations,
	}
	if err := s.repo.Create(submission); err != nil {
		return nil, apperrors.NewStorageUnavailableError("create submission", err)
	}

	return &UploadSummary{
		ID:         submission.ID,
		Status:     result.Status,
		Violations: result.Violations,
	}, nil
}

// List returns a page of the user's submissions, newest first.
func (s *SubmissionService) List(userID string, limit, offset int) (*SubmissionList, error) {
	if userID == "" {
		userID = "anonymous"
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	submissions, total, err := s.repo.GetByUser(userID, limit, offset)
	if err != nil {
		return nil, apperrors.NewStorageUnavailableError("list submissions", err)
	}

	items := make([]SubmissionListItem, len(submissions))
	for i, sub := range submissions {
		items[i] = SubmissionListItem{
			ID:        sub.ID,
			CreatedAt: formatCreatedAt(sub.CreatedAt),
			Status:    netlist.Status(sub.Status),
		}
	}
	return &SubmissionList{Total: total, Items: items}, nil
}

// Get returns the full record, but only if it belongs to the user.
func (s *SubmissionService) Get(userID string, id uuid.UUID) (*SubmissionDetail, error) {
	if userID == "" {
		userID = "anonymous"
	}

	submission, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, apperrors.NewStorageUnavailableError("get submission", err)
	}
	// Ownership doubles as authorization; an existing record owned by
	// someone else looks identical to a missing one.
	if submission.UserID != userID {
		return nil, apperrors.ErrSubmissionNotFound
	}

	validation, err := submission.Validation()
	if err != nil {
		return nil, fmt.Errorf("decode stored validation: %w", err)
	}

	return &SubmissionDetail{
		ID:         submission.ID,
		CreatedAt:  formatCreatedAt(submission.CreatedAt),
		Status:     validation.Status,
		Violations: validation.Violations,
		Netlist:    submission.Netlist,
	}, nil
}

// formatCreatedAt renders the ISO-8601 UTC form used on the wire.
func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
