package resolve

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

// mapReader is an in-memory ValueReader keyed the same way the store is.
type mapReader map[string]string

func (m mapReader) Value(sc Scope, dayID, stepID uint, fieldName string) (string, error) {
	return m[key(sc, dayID, stepID, fieldName)], nil
}

func key(sc Scope, dayID, stepID uint, fieldName string) string {
	return fmt.Sprintf("%s|%d|%d|%s", sc, dayID, stepID, fieldName)
}

func testIndex() *Index {
	// Two days, two steps each; row ids deliberately offset from the
	// curriculum numbers.
	return NewIndex([]IndexedStep{
		{DayNumber: 1, DayID: 10, StepNumber: 1, StepID: 1},
		{DayNumber: 1, DayID: 10, StepNumber: 2, StepID: 2},
		{DayNumber: 2, DayID: 20, StepNumber: 1, StepID: 3},
		{DayNumber: 2, DayID: 20, StepNumber: 2, StepID: 4},
	})
}

func TestResolveOwnValue(t *testing.T) {
	sc := UserScope(uuid.New())
	values := mapReader{key(sc, 10, 1, "what"): "late deliveries"}
	e := NewEngine(values, testIndex())

	if got := e.Resolve(sc, 10, 1, "what", nil); got != "late deliveries" {
		t.Fatalf("Resolve = %q, want %q", got, "late deliveries")
	}
	if got := e.Resolve(sc, 10, 1, "missing", nil); got != "" {
		t.Fatalf("Resolve missing = %q, want empty", got)
	}
}

func TestResolveSameDayRef(t *testing.T) {
	sc := UserScope(uuid.New())
	values := mapReader{key(sc, 10, 1, "problem_2"): "slow builds"}
	e := NewEngine(values, testIndex())

	// Day 0 in the ref means the day the requesting step belongs to.
	ref := &Ref{StepNumber: 1, Field: "problem_2"}
	if got := e.Resolve(sc, 10, 2, "ignored", ref); got != "slow builds" {
		t.Fatalf("Resolve = %q, want %q", got, "slow builds")
	}
}

func TestResolveCrossDayRef(t *testing.T) {
	sc := UserScope(uuid.New())
	values := mapReader{key(sc, 10, 2, "root_cause"): "no maintenance schedule"}
	e := NewEngine(values, testIndex())

	ref := &Ref{DayNumber: 1, StepNumber: 2, Field: "root_cause"}
	if got := e.Resolve(sc, 20, 3, "x", ref); got != "no maintenance schedule" {
		t.Fatalf("Resolve = %q, want %q", got, "no maintenance schedule")
	}
}

func TestResolveSameFieldName(t *testing.T) {
	sc := UserScope(uuid.New())
	values := mapReader{key(sc, 10, 1, "summary"): "v1"}
	e := NewEngine(values, testIndex())

	// An empty ref field inherits the requested field name.
	ref := &Ref{DayNumber: 1, StepNumber: 1}
	if got := e.Resolve(sc, 20, 4, "summary", ref); got != "v1" {
		t.Fatalf("Resolve = %q, want %q", got, "v1")
	}
}

func TestResolveUnknownPosition(t *testing.T) {
	sc := UserScope(uuid.New())
	e := NewEngine(mapReader{}, testIndex())

	if got := e.Resolve(sc, 10, 1, "x", &Ref{DayNumber: 9, StepNumber: 1, Field: "x"}); got != "" {
		t.Fatalf("Resolve unknown day = %q, want empty", got)
	}
	if got := e.Resolve(sc, 99, 1, "x", &Ref{StepNumber: 1, Field: "x"}); got != "" {
		t.Fatalf("Resolve unknown requesting day = %q, want empty", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	sc := UserScope(uuid.New())
	values := mapReader{key(sc, 10, 1, "selected_2"): "2"}
	e := NewEngine(values, testIndex())

	ref := Ref{DayNumber: 1, StepNumber: 1}
	got := e.FirstNonEmpty(sc, 10, 2, ref, "selected_1", "selected_2", "selected_3")
	if got != "2" {
		t.Fatalf("FirstNonEmpty = %q, want %q", got, "2")
	}

	if got := e.FirstNonEmpty(sc, 10, 2, ref, "nope_1", "nope_2"); got != "" {
		t.Fatalf("FirstNonEmpty all missing = %q, want empty", got)
	}
}

func TestSlotsSkipEmpty(t *testing.T) {
	sc := UserScope(uuid.New())
	values := mapReader{
		key(sc, 10, 1, "problem_1"): "a",
		key(sc, 10, 1, "problem_3"): "c",
	}
	e := NewEngine(values, testIndex())

	slots := e.Slots(sc, 10, 2, Ref{StepNumber: 1, Field: "problem_"}, 1, 5)
	if len(slots) != 2 {
		t.Fatalf("Slots len = %d, want 2", len(slots))
	}
	if slots[0].Index != 1 || slots[0].Value != "a" {
		t.Fatalf("slot 0 = %+v", slots[0])
	}
	if slots[1].Index != 3 || slots[1].Value != "c" {
		t.Fatalf("slot 1 = %+v", slots[1])
	}
}

func TestScopeIsolation(t *testing.T) {
	user := UserScope(uuid.New())
	process := ProcessScope(uuid.New())
	values := mapReader{key(user, 10, 1, "what"): "user answer"}
	e := NewEngine(values, testIndex())

	if got := e.Resolve(process, 10, 1, "what", nil); got != "" {
		t.Fatalf("process scope read user value %q", got)
	}
}
