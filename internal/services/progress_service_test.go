package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
)

func TestProgressLifecycle(t *testing.T) {
	db := newSeededDB(t)
	svc := NewProgressService(db)
	userID := uuid.New()

	record, err := svc.UpdateStep(userID, 1, &dto.ProgressUpdateRequest{
		Status: models.StatusInProgress, DayID: 1,
	})
	if err != nil {
		t.Fatalf("UpdateStep: %v", err)
	}
	if record.Status != models.StatusInProgress {
		t.Fatalf("Status = %q", record.Status)
	}
	if record.StartedAt == nil {
		t.Fatal("StartedAt not set on first in_progress")
	}
	if record.CompletedAt != nil {
		t.Fatal("CompletedAt set before completion")
	}
	firstStart := *record.StartedAt

	record, err = svc.UpdateStep(userID, 1, &dto.ProgressUpdateRequest{
		Status: models.StatusCompleted, DayID: 1,
	})
	if err != nil {
		t.Fatalf("UpdateStep complete: %v", err)
	}
	if record.CompletedAt == nil {
		t.Fatal("CompletedAt not set on completion")
	}
	if !record.StartedAt.Equal(firstStart) {
		t.Fatal("StartedAt overwritten on completion")
	}

	// Only one row per (user, step).
	var count int64
	db.Model(&models.UserProgress{}).Where("user_id = ?", userID).Count(&count)
	if count != 1 {
		t.Fatalf("progress rows = %d, want 1", count)
	}
}

func TestProgressDirectCompletion(t *testing.T) {
	svc := NewProgressService(newSeededDB(t))
	userID := uuid.New()

	// Jumping straight to completed still records a start time.
	record, err := svc.UpdateStep(userID, 2, &dto.ProgressUpdateRequest{
		Status: models.StatusCompleted, DayID: 1,
	})
	if err != nil {
		t.Fatalf("UpdateStep: %v", err)
	}
	if record.StartedAt == nil || record.CompletedAt == nil {
		t.Fatalf("timestamps = %v / %v, both should be set", record.StartedAt, record.CompletedAt)
	}
}

func TestProgressRejectsUnknownStatus(t *testing.T) {
	svc := NewProgressService(newSeededDB(t))

	_, err := svc.UpdateStep(uuid.New(), 1, &dto.ProgressUpdateRequest{Status: "done", DayID: 1})
	if err != ErrInvalidStatus {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestProgressListJoinsTitles(t *testing.T) {
	svc := NewProgressService(newSeededDB(t))
	userID := uuid.New()

	if _, err := svc.UpdateStep(userID, 1, &dto.ProgressUpdateRequest{
		Status: models.StatusInProgress, DayID: 1,
	}); err != nil {
		t.Fatalf("UpdateStep: %v", err)
	}

	records, err := svc.List(userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("List len = %d, want 1", len(records))
	}
	if records[0].StepTitle == "" || records[0].DayTitle == "" {
		t.Fatalf("titles not joined: %+v", records[0])
	}

	byDay, err := svc.ListByDay(userID, 1)
	if err != nil {
		t.Fatalf("ListByDay: %v", err)
	}
	if len(byDay) != 1 {
		t.Fatalf("ListByDay len = %d, want 1", len(byDay))
	}
	if other, _ := svc.ListByDay(userID, 2); len(other) != 0 {
		t.Fatalf("ListByDay(2) len = %d, want 0", len(other))
	}
}
