package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/catalystlab/catalyst-backend/internal/catalog"
	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
)

var (
	ErrProcessNotFound = errors.New("process not found")
	ErrInvalidProcess  = errors.New("title is required")
)

// ProcessService manages curriculum re-runs. Ownership is enforced on every
// read and write; a process belonging to another user is indistinguishable
// from a missing one.
type ProcessService struct {
	db *gorm.DB
}

func NewProcessService(db *gorm.DB) *ProcessService {
	return &ProcessService{db: db}
}

// Create inserts the process and eagerly materializes one step record per
// curriculum position, all in one transaction. A process therefore always
// has its full set of step rows and progress is a single count.
func (s *ProcessService) Create(userID uuid.UUID, req *dto.CreateProcessRequest) (*models.Process, error) {
	if req.Title == "" {
		return nil, ErrInvalidProcess
	}

	var steps []models.TrainingStep
	if err := s.db.Order("day_id, step_number").Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("failed to load curriculum: %w", err)
	}
	if len(steps) != catalog.TotalSteps {
		return nil, fmt.Errorf("curriculum has %d steps, expected %d", len(steps), catalog.TotalSteps)
	}

	process := models.Process{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.ProcessActive,
		CurrentDay:  1,
		CurrentStep: 1,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&process).Error; err != nil {
			return err
		}
		records := make([]models.ProcessStep, 0, len(steps))
		for _, step := range steps {
			records = append(records, models.ProcessStep{
				ID:        uuid.New(),
				ProcessID: process.ID,
				DayID:     step.DayID,
				StepID:    step.ID,
			})
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}
	return &process, nil
}

func (s *ProcessService) List(userID uuid.UUID) ([]dto.ProcessSummary, error) {
	var processes []models.Process
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&processes).Error; err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	summaries := make([]dto.ProcessSummary, 0, len(processes))
	for i := range processes {
		summary, err := s.summarize(&processes[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *ProcessService) Get(userID, processID uuid.UUID) (*dto.ProcessSummary, []dto.ProcessStepStatus, error) {
	process, err := s.owned(userID, processID)
	if err != nil {
		return nil, nil, err
	}

	summary, err := s.summarize(process)
	if err != nil {
		return nil, nil, err
	}

	var steps []dto.ProcessStepStatus
	err = s.db.Model(&models.ProcessStep{}).
		Select(`process_steps.day_id, process_steps.step_id, process_steps.completed, process_steps.completed_at,
			training_days.order_num AS day_number, training_days.title AS day_title,
			training_steps.step_number, training_steps.title AS step_title`).
		Joins("JOIN training_steps ON training_steps.id = process_steps.step_id").
		Joins("JOIN training_days ON training_days.id = process_steps.day_id").
		Where("process_steps.process_id = ?", processID).
		Order("training_days.order_num, training_steps.step_number").
		Scan(&steps).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list process steps: %w", err)
	}
	return summary, steps, nil
}

// Update applies a partial update. Moving status to completed stamps
// CompletedAt; moving it away clears the stamp.
func (s *ProcessService) Update(userID, processID uuid.UUID, req *dto.UpdateProcessRequest) (*models.Process, error) {
	process, err := s.owned(userID, processID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrInvalidProcess
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		if !models.ValidProcessStatus(*req.Status) {
			return nil, errors.New("invalid process status")
		}
		updates["status"] = *req.Status
		if *req.Status == models.ProcessCompleted {
			updates["completed_at"] = time.Now()
		} else {
			updates["completed_at"] = nil
		}
	}
	if req.CurrentDay != nil {
		if *req.CurrentDay < 1 || *req.CurrentDay > catalog.NumDays {
			return nil, fmt.Errorf("current_day must be between 1 and %d", catalog.NumDays)
		}
		updates["current_day"] = *req.CurrentDay
	}
	if req.CurrentStep != nil {
		if *req.CurrentStep < 1 || *req.CurrentStep > catalog.StepsPerDay {
			return nil, fmt.Errorf("current_step must be between 1 and %d", catalog.StepsPerDay)
		}
		updates["current_step"] = *req.CurrentStep
	}

	if len(updates) > 0 {
		if err := s.db.Model(process).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update process: %w", err)
		}
	}

	var updated models.Process
	if err := s.db.First(&updated, "id = ?", processID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload process: %w", err)
	}
	return &updated, nil
}

// Delete removes the process together with its step records and responses.
func (s *ProcessService) Delete(userID, processID uuid.UUID) error {
	process, err := s.owned(userID, processID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("process_id = ?", processID).Delete(&models.ProcessResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("process_id = ?", processID).Delete(&models.ProcessStep{}).Error; err != nil {
			return err
		}
		return tx.Delete(process).Error
	})
}

// CompleteStep marks one materialized step record done. Completing an
// already-completed step refreshes its timestamp.
func (s *ProcessService) CompleteStep(userID, processID uuid.UUID, stepID uint) (*models.ProcessStep, error) {
	if _, err := s.owned(userID, processID); err != nil {
		return nil, err
	}

	var record models.ProcessStep
	err := s.db.Where("process_id = ? AND step_id = ?", processID, stepID).First(&record).Error
	if err != nil {
		return nil, ErrStepNotFound
	}

	now := time.Now()
	err = s.db.Model(&record).Updates(map[string]interface{}{
		"completed":    true,
		"completed_at": now,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to complete step: %w", err)
	}
	record.Completed = true
	record.CompletedAt = &now
	return &record, nil
}

// Authorize verifies the process exists and belongs to the user.
func (s *ProcessService) Authorize(userID, processID uuid.UUID) error {
	_, err := s.owned(userID, processID)
	return err
}

func (s *ProcessService) owned(userID, processID uuid.UUID) (*models.Process, error) {
	var process models.Process
	err := s.db.Where("id = ? AND user_id = ?", processID, userID).First(&process).Error
	if err != nil {
		return nil, ErrProcessNotFound
	}
	return &process, nil
}

func (s *ProcessService) summarize(process *models.Process) (*dto.ProcessSummary, error) {
	var total, completed int64
	if err := s.db.Model(&models.ProcessStep{}).Where("process_id = ?", process.ID).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count steps: %w", err)
	}
	if err := s.db.Model(&models.ProcessStep{}).
		Where("process_id = ? AND completed = ?", process.ID, true).Count(&completed).Error; err != nil {
		return nil, fmt.Errorf("failed to count completed steps: %w", err)
	}

	summary := dto.ProcessSummary{
		Process:        *process,
		TotalSteps:     int(total),
		CompletedSteps: int(completed),
	}
	if total > 0 {
		summary.Progress = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return &summary, nil
}
