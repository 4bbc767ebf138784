package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
)

// ExportService produces the denormalized payload clients turn into a
// document: the whole curriculum with the process's responses inlined per
// step.
type ExportService struct {
	db        *gorm.DB
	processes *ProcessService
}

func NewExportService(db *gorm.DB, processes *ProcessService) *ExportService {
	return &ExportService{db: db, processes: processes}
}

func (s *ExportService) Export(userID, processID uuid.UUID) (*dto.ProcessExport, error) {
	process, err := s.processes.owned(userID, processID)
	if err != nil {
		return nil, err
	}

	var days []models.TrainingDay
	if err := s.db.Order("order_num").Find(&days).Error; err != nil {
		return nil, fmt.Errorf("failed to load days: %w", err)
	}
	var steps []models.TrainingStep
	if err := s.db.Order("day_id, step_number").Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("failed to load steps: %w", err)
	}
	var responses []models.ProcessResponse
	if err := s.db.Where("process_id = ?", processID).Find(&responses).Error; err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}

	byStep := make(map[uint]map[string]string)
	for _, r := range responses {
		if byStep[r.StepID] == nil {
			byStep[r.StepID] = make(map[string]string)
		}
		byStep[r.StepID][r.FieldName] = r.FieldValue
	}

	export := &dto.ProcessExport{Process: *process}
	for _, day := range days {
		ed := dto.ExportDay{TrainingDay: day}
		for _, step := range steps {
			if step.DayID != day.ID {
				continue
			}
			resp := byStep[step.ID]
			if resp == nil {
				resp = map[string]string{}
			}
			ed.Steps = append(ed.Steps, dto.ExportStep{TrainingStep: step, Responses: resp})
		}
		export.Days = append(export.Days, ed)
	}
	return export, nil
}
