package models

import (
	"encoding/json"
	"time"

	"netlist-visualizer-backend/internal/netlist"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission is one uploaded netlist together with its validation report.
// Rows are immutable after creation: there is no update path anywhere in
// the codebase, and deletion is left to operators.
type Submission struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt  time.Time       `json:"created_at"`
	UserID     string          `json:"user_id" gorm:"size:120;not null;index;default:'anonymous'"`
	Netlist    json.RawMessage `json:"netlist" gorm:"type:jsonb;not null"`
	Status     string          `json:"status" gorm:"type:varchar(10);not null;index"`
	Violations json.RawMessage `json:"violations" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}

// BeforeCreate sets the UUID if not already set
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Validation reconstructs the typed ValidationResult stored on the row.
func (s *Submission) Validation() (netlist.ValidationResult, error) {
	violations := []netlist.Violation{}
	if len(s.Violations) > 0 {
		if err := json.Unmarshal(s.Violations, &violations); err != nil {
			return netlist.ValidationResult{}, err
		}
	}
	return netlist.ValidationResult{
		Status:     netlist.Status(s.Status),
		Violations: violations,
	}, nil
}
