package models

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse is a training-scope answer. At most one row exists per
// (user_id, day_id, step_id, field_name); writes to an existing key update
// the value in place.
type UserResponse struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_resp_key" json:"user_id"`
	DayID      uint      `gorm:"not null;uniqueIndex:idx_user_resp_key" json:"day_id"`
	StepID     uint      `gorm:"not null;uniqueIndex:idx_user_resp_key" json:"step_id"`
	FieldName  string    `gorm:"size:100;not null;uniqueIndex:idx_user_resp_key" json:"field_name"`
	FieldValue string    `gorm:"type:text;not null" json:"field_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (UserResponse) TableName() string { return "user_responses" }

// ProcessResponse mirrors UserResponse in a disjoint namespace keyed by
// process id instead of user id.
type ProcessResponse struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProcessID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_proc_resp_key" json:"process_id"`
	DayID      uint      `gorm:"not null;uniqueIndex:idx_proc_resp_key" json:"day_id"`
	StepID     uint      `gorm:"not null;uniqueIndex:idx_proc_resp_key" json:"step_id"`
	FieldName  string    `gorm:"size:100;not null;uniqueIndex:idx_proc_resp_key" json:"field_name"`
	FieldValue string    `gorm:"type:text;not null" json:"field_value"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ProcessResponse) TableName() string { return "process_responses" }
