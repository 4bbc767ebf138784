// Package catalog is the static field schema of the curriculum: for every
// (day number, step number) it declares the ordered fields the exercise form
// renders, including where each field pulls prefilled values from. The
// catalog is pure data; it never touches storage.
package catalog

import "fmt"

// Fixed curriculum dimensions.
const (
	NumDays     = 6
	StepsPerDay = 8
	TotalSteps  = NumDays * StepsPerDay
)

type FieldType string

const (
	Text     FieldType = "text"
	TextArea FieldType = "textarea"
	Number   FieldType = "number"
	Select   FieldType = "select"
	Group    FieldType = "group"
)

// SourceRef points at a field (or field family, when Field is a prefix
// ending in "_") written by an earlier step. Day 0 means the same day as the
// referencing step.
type SourceRef struct {
	Day   int
	Step  int
	Field string
}

type Option struct {
	Value string
	Label string
}

// Field is one declared form field. Families (Count > 0) expand to
// Name+Start .. Name+Start+Count-1. Group fields repeat their subfields
// either a fixed Count of times or once per non-empty slot of Slots.
type Field struct {
	Name        string
	Type        FieldType
	Label       string
	Placeholder string
	Required    bool
	Rows        int
	Min         int
	Max         int
	Options     []Option
	Count       int
	Start       int
	SlotLabels  []string
	Slots       *SourceRef
	Fields      []Field
	Source      *SourceRef
	OptionsFrom *SourceRef
}

// Context is the prerequisite banner a step shows above its form. Selectors
// are resolved in order until one is non-empty; when Indexed is set the
// winning selector's value is appended to the Indexed family prefix and that
// field is fetched (the double-hop). Direct fetches a single field with no
// selector. An unresolvable context is a soft state, surfaced as WarnMissing.
type Context struct {
	Label       string
	Selectors   []SourceRef
	Indexed     *SourceRef
	Direct      *SourceRef
	WarnMissing string
}

// StepSchema is everything the catalog knows about one step's form.
type StepSchema struct {
	Intro   string
	Context *Context
	Fields  []Field
}

type position struct{ day, step int }

var schemas = map[position]StepSchema{}

func register(day, step int, s StepSchema) {
	key := position{day, step}
	if _, dup := schemas[key]; dup {
		panic(fmt.Sprintf("catalog: duplicate schema for day %d step %d", day, step))
	}
	schemas[key] = s
}

// Step returns the schema for (day number, step number).
func Step(day, step int) (StepSchema, bool) {
	s, ok := schemas[position{day, step}]
	return s, ok
}

// FamilyCount returns the slot range of the field family with the given
// prefix declared on (day, step), or ok=false when no such family exists.
func FamilyCount(day, step int, prefix string) (start, count int, ok bool) {
	s, found := Step(day, step)
	if !found {
		return 0, 0, false
	}
	for _, f := range s.Fields {
		if f.Name == prefix && f.Count > 0 && f.Type != Group {
			return f.Start, f.Count, true
		}
		if f.Type == Group {
			for _, sub := range f.Fields {
				if sub.Name == prefix {
					if f.Slots != nil {
						// Slot-driven groups inherit the source family range.
						return FamilyCount(resolveDay(day, *f.Slots), f.Slots.Step, f.Slots.Field)
					}
					return f.Start, f.Count, true
				}
			}
		}
	}
	return 0, 0, false
}

func resolveDay(current int, ref SourceRef) int {
	if ref.Day == 0 {
		return current
	}
	return ref.Day
}
