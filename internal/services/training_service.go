package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/catalystlab/catalyst-backend/internal/models"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
)

var (
	ErrDayNotFound  = errors.New("training day not found")
	ErrStepNotFound = errors.New("training step not found")
	ErrToolNotFound = errors.New("tool not found")
)

// TrainingService reads the seeded curriculum. The content is immutable at
// runtime, so every method is a plain query with no write path.
type TrainingService struct {
	db *gorm.DB
}

func NewTrainingService(db *gorm.DB) *TrainingService {
	return &TrainingService{db: db}
}

func (s *TrainingService) ListDays() ([]models.TrainingDay, error) {
	var days []models.TrainingDay
	if err := s.db.Order("order_num").Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	return days, nil
}

func (s *TrainingService) GetDay(dayID uint) (*models.TrainingDay, []models.TrainingStep, error) {
	var day models.TrainingDay
	if err := s.db.First(&day, "id = ?", dayID).Error; err != nil {
		return nil, nil, ErrDayNotFound
	}

	var steps []models.TrainingStep
	if err := s.db.Where("day_id = ?", dayID).Order("step_number").Find(&steps).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list steps: %w", err)
	}
	return &day, steps, nil
}

func (s *TrainingService) GetStep(stepID uint) (*models.TrainingStep, error) {
	var step models.TrainingStep
	if err := s.db.First(&step, "id = ?", stepID).Error; err != nil {
		return nil, ErrStepNotFound
	}
	return &step, nil
}

func (s *TrainingService) ListTools() ([]models.Tool, error) {
	var tools []models.Tool
	if err := s.db.Order("name").Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}

func (s *TrainingService) GetTool(name string) (*models.Tool, error) {
	var tool models.Tool
	if err := s.db.Where("name = ?", name).First(&tool).Error; err != nil {
		return nil, ErrToolNotFound
	}
	return &tool, nil
}

// LoadIndex builds the position index from the seeded curriculum. It is
// called once at startup, after seeding, and the result is shared read-only.
func (s *TrainingService) LoadIndex() (*resolve.Index, error) {
	type row struct {
		DayID      uint
		OrderNum   int
		StepID     uint
		StepNumber int
	}
	var rows []row
	err := s.db.Model(&models.TrainingStep{}).
		Select("training_steps.day_id, training_days.order_num, training_steps.id AS step_id, training_steps.step_number").
		Joins("JOIN training_days ON training_days.id = training_steps.day_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load step index: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("curriculum is empty, seed did not run")
	}

	steps := make([]resolve.IndexedStep, 0, len(rows))
	for _, r := range rows {
		steps = append(steps, resolve.IndexedStep{
			DayNumber:  r.OrderNum,
			DayID:      r.DayID,
			StepNumber: r.StepNumber,
			StepID:     r.StepID,
		})
	}
	return resolve.NewIndex(steps), nil
}
