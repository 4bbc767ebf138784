package models

import (
	"time"

	"github.com/google/uuid"
)

// Process statuses.
const (
	ProcessActive    = "active"
	ProcessCompleted = "completed"
	ProcessArchived  = "archived"
)

// ValidProcessStatus reports whether s is a known process status.
func ValidProcessStatus(s string) bool {
	return s == ProcessActive || s == ProcessCompleted || s == ProcessArchived
}

// Process is a user-created re-run of the curriculum against a real problem.
// It owns its own step records and response namespace.
type Process struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string     `gorm:"not null;size:255" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Status      string     `gorm:"size:20;not null;default:'active'" json:"status"`
	CurrentDay  int        `gorm:"not null;default:1" json:"current_day"`
	CurrentStep int        `gorm:"not null;default:1" json:"current_step"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Process) TableName() string { return "processes" }

// ProcessStep is eagerly materialized for every (day, step) pair at process
// creation, so progress percentage is a single count over this table.
type ProcessStep struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProcessID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_process_step" json:"process_id"`
	DayID       uint       `gorm:"not null" json:"day_id"`
	StepID      uint       `gorm:"not null;uniqueIndex:idx_process_step" json:"step_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (ProcessStep) TableName() string { return "process_steps" }
