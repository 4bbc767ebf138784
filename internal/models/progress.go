package models

import (
	"time"

	"github.com/google/uuid"
)

// Step progress statuses.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is one of the three progress statuses.
func ValidStatus(s string) bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}

// UserProgress holds one record per (user, step). StartedAt is set on the
// first transition into in_progress and never overwritten; CompletedAt is
// refreshed on every transition into completed.
type UserProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_step" json:"user_id"`
	DayID       uint       `gorm:"not null;index" json:"day_id"`
	StepID      uint       `gorm:"not null;uniqueIndex:idx_progress_user_step" json:"step_id"`
	Status      string     `gorm:"size:20;not null;default:'not_started'" json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	LastUpdated time.Time  `gorm:"autoUpdateTime" json:"last_updated"`
}

func (UserProgress) TableName() string { return "user_progress" }
