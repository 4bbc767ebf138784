package catalog

// Day 4: implementation journal.
func init() {
	register(4, 1, StepSchema{
		Context: &Context{
			Label:       "Plan being executed",
			Direct:      &SourceRef{Day: 3, Step: 8, Field: "plan_summary"},
			WarnMissing: "Write the plan summary on day 3 step 8 first.",
		},
		Intro: "Log what actually happened, one entry per work session.",
		Fields: []Field{
			{Name: "log_", Type: TextArea, Label: "Log entry", Rows: 3, Count: 5, Start: 1,
				Placeholder: "What was done, what was observed..."},
		},
	})

	register(4, 2, StepSchema{
		Fields: []Field{
			{Name: "blockers", Type: TextArea, Label: "Blockers", Required: true, Rows: 4},
			{Name: "support_needed", Type: TextArea, Label: "Support needed", Rows: 3},
		},
	})

	register(4, 3, StepSchema{
		Fields: []Field{
			{Name: "adjustments", Type: TextArea, Label: "Adjustments to the plan", Required: true, Rows: 5,
				Placeholder: "What changed compared to the original plan, and why?"},
		},
	})

	register(4, 4, StepSchema{
		Fields: []Field{
			{Name: "quick_wins", Type: TextArea, Label: "Quick wins", Required: true, Rows: 4},
		},
	})

	register(4, 5, StepSchema{
		Fields: []Field{
			{Name: "standup_notes", Type: TextArea, Label: "Standup notes", Rows: 5},
		},
	})

	register(4, 6, StepSchema{
		Fields: []Field{
			{Name: "experiment_result", Type: TextArea, Label: "Pilot / experiment result", Required: true, Rows: 5},
			{Name: "surprise", Type: TextArea, Label: "Biggest surprise", Rows: 3},
		},
	})

	register(4, 7, StepSchema{
		Fields: []Field{
			{Name: "lessons", Type: TextArea, Label: "Lessons learned so far", Required: true, Rows: 5},
		},
	})

	register(4, 8, StepSchema{
		Fields: []Field{
			{Name: "status_summary", Type: TextArea, Label: "Implementation status summary", Required: true, Rows: 8},
		},
	})
}
