package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// declarations is the set of field names one step writes: plain names plus
// indexed families (prefix with a slot range).
type declarations struct {
	plain    map[string]bool
	families map[string][2]int // prefix -> [start, start+count)
}

func declared(day, step int) (declarations, error) {
	s, ok := Step(day, step)
	if !ok {
		return declarations{}, fmt.Errorf("no schema for day %d step %d", day, step)
	}

	d := declarations{plain: map[string]bool{}, families: map[string][2]int{}}
	for _, f := range s.Fields {
		switch {
		case f.Type == Group:
			start, count := f.Start, f.Count
			if f.Slots != nil {
				var ok bool
				start, count, ok = FamilyCount(resolveDay(day, *f.Slots), f.Slots.Step, f.Slots.Field)
				if !ok {
					return d, fmt.Errorf("day %d step %d: group %q repeats over unknown family %q (day %d step %d)",
						day, step, f.Name, f.Slots.Field, resolveDay(day, *f.Slots), f.Slots.Step)
				}
			}
			for _, sub := range f.Fields {
				d.families[sub.Name] = [2]int{start, start + count}
			}
		case f.Count > 0:
			d.families[f.Name] = [2]int{f.Start, f.Start + f.Count}
		default:
			d.plain[f.Name] = true
		}
	}
	return d, nil
}

func (d declarations) hasName(name string) bool {
	if d.plain[name] {
		return true
	}
	for prefix, r := range d.families {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		idx, err := strconv.Atoi(name[len(prefix):])
		if err != nil {
			continue
		}
		if idx >= r[0] && idx < r[1] {
			return true
		}
	}
	return false
}

func (d declarations) hasFamily(prefix string) bool {
	_, ok := d.families[prefix]
	return ok
}

// Validate checks the whole catalog: every (day, step) position has a
// schema, and every declared source reference points at a field or family a
// real step actually writes. It runs once at startup; a failure means the
// catalog data itself is broken.
func Validate() error {
	for day := 1; day <= NumDays; day++ {
		for step := 1; step <= StepsPerDay; step++ {
			if err := validateStep(day, step); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateStep(day, step int) error {
	s, ok := Step(day, step)
	if !ok {
		return fmt.Errorf("catalog: missing schema for day %d step %d", day, step)
	}

	checkName := func(ref SourceRef, what string) error {
		d, err := declared(resolveDay(day, ref), ref.Step)
		if err != nil {
			return fmt.Errorf("catalog: day %d step %d: %s: %w", day, step, what, err)
		}
		if !d.hasName(ref.Field) {
			return fmt.Errorf("catalog: day %d step %d: %s references undeclared field %q on day %d step %d",
				day, step, what, ref.Field, resolveDay(day, ref), ref.Step)
		}
		return nil
	}
	checkFamily := func(ref SourceRef, what string) error {
		d, err := declared(resolveDay(day, ref), ref.Step)
		if err != nil {
			return fmt.Errorf("catalog: day %d step %d: %s: %w", day, step, what, err)
		}
		if !d.hasFamily(ref.Field) {
			return fmt.Errorf("catalog: day %d step %d: %s references undeclared family %q on day %d step %d",
				day, step, what, ref.Field, resolveDay(day, ref), ref.Step)
		}
		return nil
	}

	if c := s.Context; c != nil {
		for _, sel := range c.Selectors {
			if err := checkName(sel, "context selector"); err != nil {
				return err
			}
		}
		if c.Indexed != nil {
			if err := checkFamily(*c.Indexed, "context indexed target"); err != nil {
				return err
			}
		}
		if c.Direct != nil {
			if err := checkName(*c.Direct, "context direct source"); err != nil {
				return err
			}
		}
		if c.Indexed != nil && len(c.Selectors) == 0 {
			return fmt.Errorf("catalog: day %d step %d: indexed context without selectors", day, step)
		}
	}

	var walk func(fields []Field) error
	walk = func(fields []Field) error {
		for _, f := range fields {
			if f.Type == Number && f.Min > f.Max {
				return fmt.Errorf("catalog: day %d step %d: field %q has min > max", day, step, f.Name)
			}
			if f.Type == Select && len(f.Options) == 0 && f.OptionsFrom == nil {
				return fmt.Errorf("catalog: day %d step %d: select %q has no options", day, step, f.Name)
			}
			if f.Source != nil {
				if err := checkName(*f.Source, "field "+f.Name+" source"); err != nil {
					return err
				}
			}
			if f.OptionsFrom != nil {
				if err := checkFamily(*f.OptionsFrom, "field "+f.Name+" options"); err != nil {
					return err
				}
			}
			if f.Type == Group {
				if f.Slots != nil {
					if err := checkFamily(*f.Slots, "group "+f.Name+" slots"); err != nil {
						return err
					}
				} else if f.Count <= 0 {
					return fmt.Errorf("catalog: day %d step %d: group %q has neither slots nor a fixed count", day, step, f.Name)
				}
				if err := walk(f.Fields); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(s.Fields)
}
