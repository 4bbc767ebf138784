package models

import (
	"time"

	"gorm.io/datatypes"
)

// TrainingDay is immutable seed data; the fixed curriculum has six rows.
type TrainingDay struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNum    int    `gorm:"not null;uniqueIndex" json:"order_num"`
	Title       string `gorm:"not null;size:255" json:"title"`
	Subtitle    string `gorm:"size:255" json:"subtitle"`
	Description string `gorm:"type:text" json:"description"`
}

func (TrainingDay) TableName() string { return "training_days" }

// TrainingStep belongs to exactly one day; (day_id, step_number) is unique.
type TrainingStep struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	DayID        uint           `gorm:"not null;uniqueIndex:idx_steps_day_number" json:"day_id"`
	StepNumber   int            `gorm:"not null;uniqueIndex:idx_steps_day_number" json:"step_number"`
	Title        string         `gorm:"not null;size:255" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Tools        datatypes.JSON `gorm:"type:jsonb" json:"tools,omitempty"`
	Importance   string         `gorm:"type:text" json:"importance,omitempty"`
	Limitations  string         `gorm:"type:text" json:"limitations,omitempty"`
	Instructions string         `gorm:"type:text" json:"instructions,omitempty"`
}

func (TrainingStep) TableName() string { return "training_steps" }

// Tool is a seeded one-pager shown next to the steps that reference it.
type Tool struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Icon        string         `gorm:"size:50" json:"icon"`
	Description string         `gorm:"type:text" json:"description"`
	WhenToUse   string         `gorm:"type:text" json:"when_to_use"`
	HowTo       datatypes.JSON `gorm:"type:jsonb" json:"how_to"`
	Tips        string         `gorm:"type:text" json:"tips"`
	CreatedAt   time.Time      `json:"-"`
}

func (Tool) TableName() string { return "tools" }
