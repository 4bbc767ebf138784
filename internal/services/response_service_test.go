package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
)

func TestUpsertRoundTrip(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	saved, err := svc.Upsert(sc, &dto.ResponseUpsertRequest{
		DayID: 1, StepID: 1, FieldName: "problem_1", FieldValue: "late deliveries",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !saved {
		t.Fatal("Upsert reported not saved")
	}

	got, err := svc.Value(sc, 1, 1, "problem_1")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if got != "late deliveries" {
		t.Fatalf("Value = %q, want %q", got, "late deliveries")
	}
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	req := dto.ResponseUpsertRequest{DayID: 1, StepID: 1, FieldName: "what", FieldValue: "v1"}
	if _, err := svc.Upsert(sc, &req); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	req.FieldValue = "v2"
	if _, err := svc.Upsert(sc, &req); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	records, err := svc.GetAll(sc)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("GetAll len = %d, want 1 (update must not insert)", len(records))
	}
	if records[0].FieldValue != "v2" {
		t.Fatalf("FieldValue = %q, want v2", records[0].FieldValue)
	}
}

func TestUpsertSkipsBlank(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	if _, err := svc.Upsert(sc, &dto.ResponseUpsertRequest{
		DayID: 1, StepID: 1, FieldName: "what", FieldValue: "kept",
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// A blank autosave must not clobber the stored answer.
	saved, err := svc.Upsert(sc, &dto.ResponseUpsertRequest{
		DayID: 1, StepID: 1, FieldName: "what", FieldValue: "   ",
	})
	if err != nil {
		t.Fatalf("blank Upsert: %v", err)
	}
	if saved {
		t.Fatal("blank value reported as saved")
	}

	got, _ := svc.Value(sc, 1, 1, "what")
	if got != "kept" {
		t.Fatalf("Value = %q, want kept", got)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	if _, err := svc.Upsert(sc, &dto.ResponseUpsertRequest{FieldName: "x", FieldValue: "y"}); err != ErrInvalidResponse {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestUpsertRejectsUnknownStep(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	// Step 42 exists but belongs to day 6; the pair must be rejected, not
	// stored as an orphan row.
	saved, err := svc.Upsert(sc, &dto.ResponseUpsertRequest{
		DayID: 1, StepID: 42, FieldName: "what", FieldValue: "orphan",
	})
	if err != ErrUnknownStep {
		t.Fatalf("err = %v, want ErrUnknownStep", err)
	}
	if saved {
		t.Fatal("unknown step reported as saved")
	}

	if _, err := svc.Upsert(sc, &dto.ResponseUpsertRequest{
		DayID: 9, StepID: 99, FieldName: "what", FieldValue: "orphan",
	}); err != ErrUnknownStep {
		t.Fatalf("err = %v, want ErrUnknownStep", err)
	}

	records, err := svc.GetAll(sc)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("GetAll len = %d, want 0", len(records))
	}
}

func TestUpsertManyReportsPerEntry(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	results := svc.UpsertMany(sc, []dto.ResponseUpsertRequest{
		{DayID: 1, StepID: 1, FieldName: "a", FieldValue: "ok"},
		{DayID: 1, StepID: 1, FieldName: "b", FieldValue: ""},
		{DayID: 0, StepID: 1, FieldName: "c", FieldValue: "bad key"},
	})
	if len(results) != 3 {
		t.Fatalf("results len = %d, want 3", len(results))
	}
	if !results[0].Saved || results[0].Reason != "" {
		t.Fatalf("entry 0 = %+v, want saved", results[0])
	}
	if results[1].Saved || results[1].Reason == "" {
		t.Fatalf("entry 1 = %+v, want blank skip with reason", results[1])
	}
	if results[2].Saved || results[2].Reason == "" {
		t.Fatalf("entry 2 = %+v, want validation failure", results[2])
	}

	// The failing entries must not block the good one.
	if got, _ := svc.Value(sc, 1, 1, "a"); got != "ok" {
		t.Fatalf("Value a = %q, want ok", got)
	}
}

func TestUpsertComposite(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.ProcessScope(uuid.New())

	results := svc.UpsertComposite(sc, map[string]string{
		"1-3-selected_problem_1": "2",
		"garbage":                "x",
	})
	if len(results) != 2 {
		t.Fatalf("results len = %d, want 2", len(results))
	}

	got, err := svc.Value(sc, 1, 3, "selected_problem_1")
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if got != "2" {
		t.Fatalf("Value = %q, want 2", got)
	}

	var malformed bool
	for _, r := range results {
		if !r.Saved && r.FieldName == "garbage" {
			malformed = true
		}
	}
	if !malformed {
		t.Fatal("malformed key not reported")
	}
}

func TestScopesAreDisjoint(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	userID := uuid.New()
	user := resolve.UserScope(userID)
	// Same UUID as process id on purpose: the namespaces must still be
	// disjoint because they live in different tables.
	process := resolve.ProcessScope(userID)

	if _, err := svc.Upsert(user, &dto.ResponseUpsertRequest{
		DayID: 1, StepID: 1, FieldName: "what", FieldValue: "user answer",
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if got, _ := svc.Value(process, 1, 1, "what"); got != "" {
		t.Fatalf("process scope read user value %q", got)
	}

	records, err := svc.GetAll(process)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("process GetAll len = %d, want 0", len(records))
	}
}

func TestGetByDayAndStep(t *testing.T) {
	svc := NewResponseService(newSeededDB(t))
	sc := resolve.UserScope(uuid.New())

	for _, r := range []dto.ResponseUpsertRequest{
		{DayID: 1, StepID: 1, FieldName: "a", FieldValue: "1"},
		{DayID: 1, StepID: 2, FieldName: "b", FieldValue: "2"},
		{DayID: 2, StepID: 9, FieldName: "c", FieldValue: "3"},
	} {
		if _, err := svc.Upsert(sc, &r); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	byDay, err := svc.GetByDay(sc, 1)
	if err != nil {
		t.Fatalf("GetByDay: %v", err)
	}
	if len(byDay) != 2 {
		t.Fatalf("GetByDay len = %d, want 2", len(byDay))
	}

	byStep, err := svc.GetByStep(sc, 9)
	if err != nil {
		t.Fatalf("GetByStep: %v", err)
	}
	if len(byStep) != 1 || byStep[0].FieldName != "c" {
		t.Fatalf("GetByStep = %+v", byStep)
	}
}
