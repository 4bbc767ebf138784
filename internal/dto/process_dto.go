package dto

import (
	"time"

	"github.com/catalystlab/catalyst-backend/internal/models"
)

type CreateProcessRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateProcessRequest carries a partial update; nil fields are left alone.
type UpdateProcessRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	CurrentDay  *int    `json:"current_day,omitempty"`
	CurrentStep *int    `json:"current_step,omitempty"`
}

// ProcessSummary annotates a process with its completion percentage computed
// from the eagerly materialized step records.
type ProcessSummary struct {
	models.Process
	TotalSteps     int `json:"total_steps"`
	CompletedSteps int `json:"completed_steps"`
	Progress       int `json:"progress"`
}

// ProcessStepStatus is a process step record joined with curriculum position.
type ProcessStepStatus struct {
	DayID       uint       `json:"day_id"`
	StepID      uint       `json:"step_id"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DayNumber   int        `json:"day_number"`
	DayTitle    string     `json:"day_title"`
	StepNumber  int        `json:"step_number"`
	StepTitle   string     `json:"step_title"`
}

// ProcessResponsesRequest upserts process responses keyed by the composite
// "dayID-stepID-fieldName" string.
type ProcessResponsesRequest struct {
	Responses map[string]string `json:"responses"`
}
