package dto

// StepForm is a fully assembled exercise form: the catalog schema for one
// step with every field's current value resolved in the requested scope.
type StepForm struct {
	DayID      uint         `json:"day_id"`
	StepID     uint         `json:"step_id"`
	DayNumber  int          `json:"day_number"`
	StepNumber int          `json:"step_number"`
	Context    *FormContext `json:"context,omitempty"`
	Fields     []FormField  `json:"fields"`
	Warnings   []string     `json:"warnings,omitempty"`
}

// FormContext is the prerequisite banner rendered above a form, carrying a
// value pulled from an earlier step.
type FormContext struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type FormField struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Label       string       `json:"label"`
	Required    bool         `json:"required"`
	Min         int          `json:"min,omitempty"`
	Max         int          `json:"max,omitempty"`
	Rows        int          `json:"rows,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Options     []FormOption `json:"options,omitempty"`
	Value       string       `json:"value"`
	Disabled    bool         `json:"disabled,omitempty"`
}

type FormOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
