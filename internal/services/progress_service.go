package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
)

var ErrInvalidStatus = errors.New("invalid progress status")

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// UpdateStep upserts the progress record for (user, step). StartedAt is
// written once, on the first move into in_progress or completed, and kept on
// later updates; CompletedAt is refreshed every time the step completes, so
// re-completing a revisited step bumps the timestamp.
func (s *ProgressService) UpdateStep(userID uuid.UUID, stepID uint, req *dto.ProgressUpdateRequest) (*models.UserProgress, error) {
	if !models.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now()

	var record models.UserProgress
	err := s.db.Where("user_id = ? AND step_id = ?", userID, stepID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.UserProgress{
			ID:     uuid.New(),
			UserID: userID,
			DayID:  req.DayID,
			StepID: stepID,
			Status: req.Status,
		}
		if req.Status != models.StatusNotStarted {
			record.StartedAt = &now
		}
		if req.Status == models.StatusCompleted {
			record.CompletedAt = &now
		}
		if err := s.db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("failed to create progress: %w", err)
		}
		return &record, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up progress: %w", err)
	}

	updates := map[string]interface{}{"status": req.Status}
	if record.StartedAt == nil && req.Status != models.StatusNotStarted {
		updates["started_at"] = now
		record.StartedAt = &now
	}
	if req.Status == models.StatusCompleted {
		updates["completed_at"] = now
		record.CompletedAt = &now
	}
	if err := s.db.Model(&record).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	record.Status = req.Status
	return &record, nil
}

func (s *ProgressService) List(userID uuid.UUID) ([]dto.ProgressRecord, error) {
	return s.list(userID, 0)
}

func (s *ProgressService) ListByDay(userID uuid.UUID, dayID uint) ([]dto.ProgressRecord, error) {
	return s.list(userID, dayID)
}

func (s *ProgressService) list(userID uuid.UUID, dayID uint) ([]dto.ProgressRecord, error) {
	q := s.db.Model(&models.UserProgress{}).
		Select("user_progress.*, training_steps.title AS step_title, training_days.title AS day_title").
		Joins("JOIN training_steps ON training_steps.id = user_progress.step_id").
		Joins("JOIN training_days ON training_days.id = user_progress.day_id").
		Where("user_progress.user_id = ?", userID).
		Order("user_progress.day_id, training_steps.step_number")
	if dayID != 0 {
		q = q.Where("user_progress.day_id = ?", dayID)
	}

	var records []dto.ProgressRecord
	if err := q.Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return records, nil
}
