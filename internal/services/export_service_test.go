package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/catalystlab/catalyst-backend/internal/catalog"
	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
)

func TestExportProcess(t *testing.T) {
	db := newSeededDB(t)
	processes := NewProcessService(db)
	responses := NewResponseService(db)
	svc := NewExportService(db, processes)
	userID := uuid.New()

	process, err := processes.Create(userID, &dto.CreateProcessRequest{Title: "Reduce delays"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sc := resolve.ProcessScope(process.ID)
	put(t, responses, sc, 1, 1, "problem_1", "late deliveries")
	put(t, responses, sc, 1, 5, "what", "deliveries are late")

	export, err := svc.Export(userID, process.ID)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if export.Process.Title != "Reduce delays" {
		t.Fatalf("process = %+v", export.Process)
	}
	if len(export.Days) != catalog.NumDays {
		t.Fatalf("days = %d, want %d", len(export.Days), catalog.NumDays)
	}

	day1 := export.Days[0]
	if len(day1.Steps) != catalog.StepsPerDay {
		t.Fatalf("day 1 steps = %d, want %d", len(day1.Steps), catalog.StepsPerDay)
	}
	if got := day1.Steps[0].Responses["problem_1"]; got != "late deliveries" {
		t.Fatalf("step 1 responses = %v", day1.Steps[0].Responses)
	}
	if got := day1.Steps[4].Responses["what"]; got != "deliveries are late" {
		t.Fatalf("step 5 responses = %v", day1.Steps[4].Responses)
	}
	// Unanswered steps export an empty map, not null.
	if day1.Steps[1].Responses == nil {
		t.Fatal("unanswered step exported nil responses")
	}
}

func TestExportOwnership(t *testing.T) {
	db := newSeededDB(t)
	processes := NewProcessService(db)
	svc := NewExportService(db, processes)

	process, err := processes.Create(uuid.New(), &dto.CreateProcessRequest{Title: "p"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Export(uuid.New(), process.ID); err != ErrProcessNotFound {
		t.Fatalf("err = %v, want ErrProcessNotFound", err)
	}
}
