package services

import (
	"fmt"
	"strconv"

	"github.com/catalystlab/catalyst-backend/internal/catalog"
	"github.com/catalystlab/catalyst-backend/internal/dto"
	"github.com/catalystlab/catalyst-backend/internal/resolve"
)

// FormService assembles one step's exercise form: the catalog schema with
// every field's current value, prefill and option list resolved in the
// requested scope. Missing prerequisites never fail a form; they come back as
// warnings with the dependent inputs disabled.
type FormService struct {
	engine *resolve.Engine
	index  *resolve.Index
}

func NewFormService(engine *resolve.Engine, index *resolve.Index) *FormService {
	return &FormService{engine: engine, index: index}
}

// FormByDayID resolves the day's curriculum number and builds its form.
func (s *FormService) FormByDayID(sc resolve.Scope, dayID uint, stepNumber int) (*dto.StepForm, error) {
	dayNumber, ok := s.index.DayNumber(dayID)
	if !ok {
		return nil, ErrDayNotFound
	}
	return s.Form(sc, dayNumber, stepNumber)
}

// Form builds the form for (day number, step number) in the given scope.
func (s *FormService) Form(sc resolve.Scope, dayNumber, stepNumber int) (*dto.StepForm, error) {
	schema, ok := catalog.Step(dayNumber, stepNumber)
	if !ok {
		return nil, ErrStepNotFound
	}
	dayID, ok := s.index.DayID(dayNumber)
	if !ok {
		return nil, ErrDayNotFound
	}
	stepID, ok := s.index.StepID(dayNumber, stepNumber)
	if !ok {
		return nil, ErrStepNotFound
	}

	form := &dto.StepForm{
		DayID:      dayID,
		StepID:     stepID,
		DayNumber:  dayNumber,
		StepNumber: stepNumber,
	}

	b := &formBuilder{
		svc:    s,
		sc:     sc,
		day:    dayNumber,
		dayID:  dayID,
		stepID: stepID,
		form:   form,
	}
	if schema.Context != nil {
		b.context(schema.Context)
	}
	for _, f := range schema.Fields {
		b.field(f)
	}
	return form, nil
}

// formBuilder threads the fixed coordinates of one form assembly so the
// per-field helpers stay short.
type formBuilder struct {
	svc    *FormService
	sc     resolve.Scope
	day    int
	dayID  uint
	stepID uint
	form   *dto.StepForm
}

func (b *formBuilder) ref(src catalog.SourceRef) resolve.Ref {
	return resolve.Ref{DayNumber: src.Day, StepNumber: src.Step, Field: src.Field}
}

func (b *formBuilder) resolveRef(src catalog.SourceRef) string {
	r := b.ref(src)
	return b.svc.engine.Resolve(b.sc, b.dayID, b.stepID, src.Field, &r)
}

// slots lists the non-empty entries of the field family src points at.
func (b *formBuilder) slots(src catalog.SourceRef) []resolve.Slot {
	srcDay := src.Day
	if srcDay == 0 {
		srcDay = b.day
	}
	start, count, ok := catalog.FamilyCount(srcDay, src.Step, src.Field)
	if !ok {
		return nil
	}
	return b.svc.engine.Slots(b.sc, b.dayID, b.stepID, b.ref(src), start, count)
}

// context resolves the prerequisite banner. With selectors the first
// non-empty one wins; when an indexed target is declared the winning value is
// treated as a slot index and the second hop fetches the actual text. A
// selector chain that resolves nothing is a warning, not an error.
func (b *formBuilder) context(c *catalog.Context) {
	var value string
	switch {
	case c.Direct != nil:
		value = b.resolveRef(*c.Direct)
	default:
		var selected string
		for _, sel := range c.Selectors {
			if selected = b.resolveRef(sel); selected != "" {
				break
			}
		}
		if selected != "" && c.Indexed != nil {
			hop := *c.Indexed
			hop.Field = c.Indexed.Field + selected
			value = b.resolveRef(hop)
			if value == "" {
				// The stored index no longer matches a slot; show it raw
				// rather than nothing.
				value = selected
			}
		} else {
			value = selected
		}
	}

	if value == "" {
		if c.WarnMissing != "" {
			b.warn(c.WarnMissing)
		}
		return
	}
	b.form.Context = &dto.FormContext{Label: c.Label, Value: value}
}

func (b *formBuilder) field(f catalog.Field) {
	switch {
	case f.Type == catalog.Group:
		b.group(f)
	case f.Count > 0:
		for i := f.Start; i < f.Start+f.Count; i++ {
			b.emit(f, f.Name+strconv.Itoa(i), fmt.Sprintf("%s %d", f.Label, i), nil)
		}
	default:
		b.emit(f, f.Name, f.Label, nil)
	}
}

func (b *formBuilder) group(g catalog.Field) {
	if g.Slots != nil {
		slots := b.slots(*g.Slots)
		if len(slots) == 0 {
			b.warn(fmt.Sprintf("%s: nothing to rate yet, fill in the source step first", g.Label))
			return
		}
		for _, slot := range slots {
			// A read-only row header carrying the source slot's text.
			b.form.Fields = append(b.form.Fields, dto.FormField{
				Name:     g.Name + strconv.Itoa(slot.Index),
				Type:     string(catalog.Text),
				Label:    g.Label,
				Value:    slot.Value,
				Disabled: true,
			})
			for _, sub := range g.Fields {
				b.emit(sub, sub.Name+strconv.Itoa(slot.Index), sub.Label, b.options(sub))
			}
		}
		return
	}

	for i := g.Start; i < g.Start+g.Count; i++ {
		rowLabel := fmt.Sprintf("%s %d", g.Label, i)
		if n := i - g.Start; n < len(g.SlotLabels) {
			rowLabel = g.SlotLabels[n]
		}
		for _, sub := range g.Fields {
			b.emit(sub, sub.Name+strconv.Itoa(i), fmt.Sprintf("%s: %s", rowLabel, sub.Label), b.options(sub))
		}
	}
}

// options builds the option list for a select. Static options pass through;
// an OptionsFrom select gets one option per non-empty source slot, the slot
// index as the stored value and the slot text as the label.
func (b *formBuilder) options(f catalog.Field) []dto.FormOption {
	if f.Type != catalog.Select {
		return nil
	}
	if f.OptionsFrom == nil {
		opts := make([]dto.FormOption, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, dto.FormOption{Value: o.Value, Label: o.Label})
		}
		return opts
	}

	slots := b.slots(*f.OptionsFrom)
	opts := make([]dto.FormOption, 0, len(slots))
	for _, slot := range slots {
		opts = append(opts, dto.FormOption{Value: strconv.Itoa(slot.Index), Label: slot.Value})
	}
	return opts
}

func (b *formBuilder) emit(f catalog.Field, name, label string, opts []dto.FormOption) {
	if opts == nil {
		opts = b.options(f)
	}

	field := dto.FormField{
		Name:        name,
		Type:        string(f.Type),
		Label:       label,
		Required:    f.Required,
		Min:         f.Min,
		Max:         f.Max,
		Rows:        f.Rows,
		Placeholder: f.Placeholder,
		Options:     opts,
	}

	field.Value = b.svc.engine.Resolve(b.sc, b.dayID, b.stepID, name, nil)
	if field.Value == "" && f.Source != nil {
		field.Value = b.resolveRef(*f.Source)
	}

	if f.OptionsFrom != nil && len(opts) == 0 {
		field.Disabled = true
		b.warn(fmt.Sprintf("%s: no options available yet, fill in the source step first", label))
	}

	b.form.Fields = append(b.form.Fields, field)
}

func (b *formBuilder) warn(msg string) {
	b.form.Warnings = append(b.form.Warnings, msg)
}
