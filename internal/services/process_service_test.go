package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/catalystlab/catalyst-backend/internal/catalog"
	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/models"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
)

func TestCreateProcessMaterializesAllSteps(t *testing.T) {
	db := newSeededDB(t)
	svc := NewProcessService(db)
	userID := uuid.New()

	process, err := svc.Create(userID, &dto.CreateProcessRequest{Title: "Reduce delivery delays"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if process.Status != models.ProcessActive {
		t.Fatalf("Status = %q", process.Status)
	}
	if process.CurrentDay != 1 || process.CurrentStep != 1 {
		t.Fatalf("position = %d/%d, want 1/1", process.CurrentDay, process.CurrentStep)
	}

	var count int64
	db.Model(&models.ProcessStep{}).Where("process_id = ?", process.ID).Count(&count)
	if count != int64(catalog.TotalSteps) {
		t.Fatalf("materialized steps = %d, want %d", count, catalog.TotalSteps)
	}
}

func TestCreateProcessRequiresTitle(t *testing.T) {
	svc := NewProcessService(newSeededDB(t))

	if _, err := svc.Create(uuid.New(), &dto.CreateProcessRequest{}); err != ErrInvalidProcess {
		t.Fatalf("err = %v, want ErrInvalidProcess", err)
	}
}

func TestProcessProgressPercentage(t *testing.T) {
	db := newSeededDB(t)
	svc := NewProcessService(db)
	userID := uuid.New()

	process, err := svc.Create(userID, &dto.CreateProcessRequest{Title: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Complete the whole first day: 8 of 48 steps.
	for stepID := uint(1); stepID <= 8; stepID++ {
		if _, err := svc.CompleteStep(userID, process.ID, stepID); err != nil {
			t.Fatalf("CompleteStep %d: %v", stepID, err)
		}
	}

	summaries, err := svc.List(userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("List len = %d, want 1", len(summaries))
	}
	s := summaries[0]
	if s.TotalSteps != catalog.TotalSteps || s.CompletedSteps != 8 {
		t.Fatalf("counts = %d/%d, want 8/%d", s.CompletedSteps, s.TotalSteps, catalog.TotalSteps)
	}
	// 8/48 is 16.67 percent; the percentage rounds to nearest, not down.
	if s.Progress != 17 {
		t.Fatalf("Progress = %d, want 17 (rounded)", s.Progress)
	}

	// One completed step of 48 is about 2 percent.
	one, err := svc.Create(userID, &dto.CreateProcessRequest{Title: "q"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.CompleteStep(userID, one.ID, 1); err != nil {
		t.Fatalf("CompleteStep: %v", err)
	}
	summary, _, err := svc.Get(userID, one.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if summary.Progress != 2 {
		t.Fatalf("Progress = %d, want 2", summary.Progress)
	}
}

func TestProcessOwnership(t *testing.T) {
	svc := NewProcessService(newSeededDB(t))
	owner := uuid.New()
	stranger := uuid.New()

	process, err := svc.Create(owner, &dto.CreateProcessRequest{Title: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Another user's process must look like a missing one.
	if _, _, err := svc.Get(stranger, process.ID); err != ErrProcessNotFound {
		t.Fatalf("Get as stranger: err = %v, want ErrProcessNotFound", err)
	}
	if err := svc.Delete(stranger, process.ID); err != ErrProcessNotFound {
		t.Fatalf("Delete as stranger: err = %v, want ErrProcessNotFound", err)
	}
	if _, err := svc.CompleteStep(stranger, process.ID, 1); err != ErrProcessNotFound {
		t.Fatalf("CompleteStep as stranger: err = %v, want ErrProcessNotFound", err)
	}
}

func TestProcessUpdateStatusStampsCompletion(t *testing.T) {
	svc := NewProcessService(newSeededDB(t))
	userID := uuid.New()

	process, err := svc.Create(userID, &dto.CreateProcessRequest{Title: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	completed := models.ProcessCompleted
	updated, err := svc.Update(userID, process.ID, &dto.UpdateProcessRequest{Status: &completed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Fatal("CompletedAt not set when status moved to completed")
	}

	active := models.ProcessActive
	updated, err = svc.Update(userID, process.ID, &dto.UpdateProcessRequest{Status: &active})
	if err != nil {
		t.Fatalf("Update back: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatal("CompletedAt not cleared when status left completed")
	}

	bad := "paused"
	if _, err := svc.Update(userID, process.ID, &dto.UpdateProcessRequest{Status: &bad}); err == nil {
		t.Fatal("expected error for unknown status")
	}

	day := 9
	if _, err := svc.Update(userID, process.ID, &dto.UpdateProcessRequest{CurrentDay: &day}); err == nil {
		t.Fatal("expected error for out-of-range day")
	}
}

func TestProcessDeleteCascades(t *testing.T) {
	db := newSeededDB(t)
	svc := NewProcessService(db)
	responses := NewResponseService(db)
	userID := uuid.New()

	process, err := svc.Create(userID, &dto.CreateProcessRequest{Title: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sc := resolve.ProcessScope(process.ID)
	if _, err := responses.Upsert(sc, &dto.ResponseUpsertRequest{
		DayID: 1, StepID: 1, FieldName: "problem_1", FieldValue: "x",
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := svc.Delete(userID, process.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var steps, resps int64
	db.Model(&models.ProcessStep{}).Where("process_id = ?", process.ID).Count(&steps)
	db.Model(&models.ProcessResponse{}).Where("process_id = ?", process.ID).Count(&resps)
	if steps != 0 || resps != 0 {
		t.Fatalf("leftovers after delete: %d steps, %d responses", steps, resps)
	}
}

func TestProcessGetJoinsCurriculum(t *testing.T) {
	svc := NewProcessService(newSeededDB(t))
	userID := uuid.New()

	process, err := svc.Create(userID, &dto.CreateProcessRequest{Title: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary, steps, err := svc.Get(userID, process.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if summary.TotalSteps != catalog.TotalSteps {
		t.Fatalf("TotalSteps = %d", summary.TotalSteps)
	}
	if len(steps) != catalog.TotalSteps {
		t.Fatalf("steps len = %d, want %d", len(steps), catalog.TotalSteps)
	}
	first := steps[0]
	if first.DayNumber != 1 || first.StepNumber != 1 || first.StepTitle == "" {
		t.Fatalf("first step = %+v", first)
	}
	last := steps[len(steps)-1]
	if last.DayNumber != catalog.NumDays || last.StepNumber != catalog.StepsPerDay {
		t.Fatalf("last step = %+v", last)
	}
}
