package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
)

var (
	ErrInvalidResponse = errors.New("day_id, step_id and field_name are required")
	ErrUnknownStep     = errors.New("day_id and step_id do not name a curriculum step")
)

// ResponseService is the scope-routed response store. User and process
// responses live in separate tables; the scope on every call picks the table,
// so a resolution chain can never read across namespaces.
type ResponseService struct {
	db *gorm.DB
}

func NewResponseService(db *gorm.DB) *ResponseService {
	return &ResponseService{db: db}
}

// Upsert writes one response. A blank value is skipped rather than stored:
// autosave fires on every field blur, and overwriting a saved answer with an
// empty string would silently destroy it.
func (s *ResponseService) Upsert(sc resolve.Scope, req *dto.ResponseUpsertRequest) (saved bool, err error) {
	if req.DayID == 0 || req.StepID == 0 || req.FieldName == "" {
		return false, ErrInvalidResponse
	}
	known, err := s.stepExists(req.DayID, req.StepID)
	if err != nil {
		return false, err
	}
	if !known {
		return false, ErrUnknownStep
	}
	if strings.TrimSpace(req.FieldValue) == "" {
		return false, nil
	}

	if sc.IsProcess() {
		return true, s.upsertProcess(sc, req)
	}
	return true, s.upsertUser(sc, req)
}

// UpsertMany applies a batch entry by entry. The batch is not atomic; each
// entry's outcome is reported individually and earlier writes stand even when
// a later entry fails.
func (s *ResponseService) UpsertMany(sc resolve.Scope, reqs []dto.ResponseUpsertRequest) []dto.BatchResult {
	results := make([]dto.BatchResult, 0, len(reqs))
	for i := range reqs {
		req := &reqs[i]
		res := dto.BatchResult{DayID: req.DayID, StepID: req.StepID, FieldName: req.FieldName}

		saved, err := s.Upsert(sc, req)
		switch {
		case err != nil:
			res.Reason = err.Error()
		case !saved:
			res.Reason = "blank value skipped"
		default:
			res.Saved = true
		}
		results = append(results, res)
	}
	return results
}

// UpsertComposite applies a map keyed by the wire form "dayID-stepID-field".
// Field names may themselves contain digits and underscores, so the key is
// split on the first two hyphens only.
func (s *ResponseService) UpsertComposite(sc resolve.Scope, responses map[string]string) []dto.BatchResult {
	reqs := make([]dto.ResponseUpsertRequest, 0, len(responses))
	var malformed []dto.BatchResult
	for key, value := range responses {
		req, err := parseCompositeKey(key)
		if err != nil {
			malformed = append(malformed, dto.BatchResult{FieldName: key, Reason: err.Error()})
			continue
		}
		req.FieldValue = value
		reqs = append(reqs, req)
	}
	return append(s.UpsertMany(sc, reqs), malformed...)
}

func parseCompositeKey(key string) (dto.ResponseUpsertRequest, error) {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 || parts[2] == "" {
		return dto.ResponseUpsertRequest{}, fmt.Errorf("malformed response key %q", key)
	}
	dayID, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return dto.ResponseUpsertRequest{}, fmt.Errorf("malformed response key %q", key)
	}
	stepID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return dto.ResponseUpsertRequest{}, fmt.Errorf("malformed response key %q", key)
	}
	return dto.ResponseUpsertRequest{
		DayID:     uint(dayID),
		StepID:    uint(stepID),
		FieldName: parts[2],
	}, nil
}

func (s *ResponseService) GetAll(sc resolve.Scope) ([]dto.ResponseRecord, error) {
	return s.query(sc, s.scoped(sc))
}

func (s *ResponseService) GetByDay(sc resolve.Scope, dayID uint) ([]dto.ResponseRecord, error) {
	return s.query(sc, s.scoped(sc).Where("day_id = ?", dayID))
}

func (s *ResponseService) GetByStep(sc resolve.Scope, stepID uint) ([]dto.ResponseRecord, error) {
	return s.query(sc, s.scoped(sc).Where("step_id = ?", stepID))
}

// Value implements resolve.ValueReader. A missing row is "" with no error.
func (s *ResponseService) Value(sc resolve.Scope, dayID, stepID uint, fieldName string) (string, error) {
	var value string
	err := s.scoped(sc).
		Select("field_value").
		Where("day_id = ? AND step_id = ? AND field_name = ?", dayID, stepID, fieldName).
		Limit(1).
		Scan(&value).Error
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return value, nil
}

// stepExists guards the response tables against orphan rows: every stored
// (day_id, step_id) pair must name a real curriculum step in that day.
func (s *ResponseService) stepExists(dayID, stepID uint) (bool, error) {
	var n int64
	err := s.db.Model(&models.TrainingStep{}).
		Where("id = ? AND day_id = ?", stepID, dayID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to check curriculum step: %w", err)
	}
	return n > 0, nil
}

func (s *ResponseService) upsertUser(sc resolve.Scope, req *dto.ResponseUpsertRequest) error {
	var existing models.UserResponse
	err := s.db.Where("user_id = ? AND day_id = ? AND step_id = ? AND field_name = ?",
		sc.ID(), req.DayID, req.StepID, req.FieldName).First(&existing).Error
	if err == nil {
		return s.db.Model(&existing).Update("field_value", req.FieldValue).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up response: %w", err)
	}

	return s.db.Create(&models.UserResponse{
		ID:         uuid.New(),
		UserID:     sc.ID(),
		DayID:      req.DayID,
		StepID:     req.StepID,
		FieldName:  req.FieldName,
		FieldValue: req.FieldValue,
	}).Error
}

func (s *ResponseService) upsertProcess(sc resolve.Scope, req *dto.ResponseUpsertRequest) error {
	var existing models.ProcessResponse
	err := s.db.Where("process_id = ? AND day_id = ? AND step_id = ? AND field_name = ?",
		sc.ID(), req.DayID, req.StepID, req.FieldName).First(&existing).Error
	if err == nil {
		return s.db.Model(&existing).Update("field_value", req.FieldValue).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up response: %w", err)
	}

	return s.db.Create(&models.ProcessResponse{
		ID:         uuid.New(),
		ProcessID:  sc.ID(),
		DayID:      req.DayID,
		StepID:     req.StepID,
		FieldName:  req.FieldName,
		FieldValue: req.FieldValue,
	}).Error
}

func (s *ResponseService) scoped(sc resolve.Scope) *gorm.DB {
	if sc.IsProcess() {
		return s.db.Model(&models.ProcessResponse{}).Where("process_id = ?", sc.ID())
	}
	return s.db.Model(&models.UserResponse{}).Where("user_id = ?", sc.ID())
}

func (s *ResponseService) query(sc resolve.Scope, q *gorm.DB) ([]dto.ResponseRecord, error) {
	var records []dto.ResponseRecord
	err := q.Select("day_id, step_id, field_name, field_value, created_at, updated_at").
		Order("day_id, step_id, field_name").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return records, nil
}
