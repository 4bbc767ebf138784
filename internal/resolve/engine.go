package resolve

import "strconv"

// ValueReader is the read side of a response store. Value returns the stored
// value for the composite key, or "" with a nil error when no row exists.
type ValueReader interface {
	Value(sc Scope, dayID, stepID uint, fieldName string) (string, error)
}

// Ref declares where a field pulls its value from: a (day number, step
// number, field name) triple. A zero DayNumber means the same day as the
// step being resolved. An empty Field means the same field name.
type Ref struct {
	DayNumber  int
	StepNumber int
	Field      string
}

// Slot is one non-empty entry of an indexed field family.
type Slot struct {
	Index int
	Value string
}

// Engine performs single-hop resolution of field values. It never mutates
// the store and never fails on missing data; absent values come back as "".
// Multi-hop chains (selector then indexed target, or fallback candidates)
// are composed by the caller from repeated single resolves.
type Engine struct {
	values ValueReader
	index  *Index
}

func NewEngine(values ValueReader, index *Index) *Engine {
	return &Engine{values: values, index: index}
}

// Resolve returns the current value of fieldName on the step identified by
// (dayID, stepID) in the given scope. When ref is non-nil the value is read
// from the referenced step instead; the concrete source step id is looked up
// through the index (ids are not assumed to equal numbers).
func (e *Engine) Resolve(sc Scope, dayID, stepID uint, fieldName string, ref *Ref) string {
	if ref == nil {
		return e.lookup(sc, dayID, stepID, fieldName)
	}

	srcDay := ref.DayNumber
	if srcDay == 0 {
		n, ok := e.index.DayNumber(dayID)
		if !ok {
			return ""
		}
		srcDay = n
	}

	srcDayID, ok := e.index.DayID(srcDay)
	if !ok {
		return ""
	}
	srcStepID, ok := e.index.StepID(srcDay, ref.StepNumber)
	if !ok {
		return ""
	}

	name := ref.Field
	if name == "" {
		name = fieldName
	}
	return e.lookup(sc, srcDayID, srcStepID, name)
}

// FirstNonEmpty resolves each candidate field through the same ref and
// returns the first non-empty result, short-circuiting on a hit.
func (e *Engine) FirstNonEmpty(sc Scope, dayID, stepID uint, ref Ref, candidates ...string) string {
	for _, name := range candidates {
		r := ref
		r.Field = name
		if v := e.Resolve(sc, dayID, stepID, name, &r); v != "" {
			return v
		}
	}
	return ""
}

// Slots resolves the indexed family ref.Field+i for i in [start, start+count)
// and returns the non-empty entries in index order.
func (e *Engine) Slots(sc Scope, dayID, stepID uint, ref Ref, start, count int) []Slot {
	var slots []Slot
	for i := start; i < start+count; i++ {
		r := ref
		r.Field = ref.Field + strconv.Itoa(i)
		if v := e.Resolve(sc, dayID, stepID, r.Field, &r); v != "" {
			slots = append(slots, Slot{Index: i, Value: v})
		}
	}
	return slots
}

func (e *Engine) lookup(sc Scope, dayID, stepID uint, fieldName string) string {
	v, err := e.values.Value(sc, dayID, stepID, fieldName)
	if err != nil {
		return ""
	}
	return v
}
