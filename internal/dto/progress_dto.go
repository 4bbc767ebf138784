package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProgressUpdateRequest struct {
	Status string `json:"status"`
	DayID  uint   `json:"day_id"`
}

// ProgressRecord is a progress row joined with the step and day titles.
type ProgressRecord struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	DayID       uint       `json:"day_id"`
	StepID      uint       `json:"step_id"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	LastUpdated time.Time  `json:"last_updated"`
	StepTitle   string     `json:"step_title,omitempty"`
	DayTitle    string     `json:"day_title,omitempty"`
}
