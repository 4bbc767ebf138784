package catalog

// Day 2: solution space. Builds on day 1's root cause and selected problem.
func init() {
	register(2, 1, StepSchema{
		Context: &Context{
			Label:       "Root cause carried over from day 1",
			Direct:      &SourceRef{Day: 1, Step: 8, Field: "root_cause"},
			WarnMissing: "Complete day 1 step 8 (root cause analysis) first.",
		},
		Intro: "Generate five solution ideas addressing the root cause.",
		Fields: []Field{
			{Name: "idea_", Type: TextArea, Label: "Idea", Required: true, Rows: 2, Count: 5, Start: 1,
				Placeholder: "One concrete idea per slot..."},
		},
	})

	register(2, 2, StepSchema{
		Intro: "Choose the most promising idea and justify the choice.",
		Fields: []Field{
			{Name: "chosen_idea", Type: Select, Label: "Chosen idea", Required: true,
				OptionsFrom: &SourceRef{Step: 1, Field: "idea_"}},
			{Name: "rationale", Type: TextArea, Label: "Why this one?", Required: true, Rows: 4},
		},
	})

	register(2, 3, StepSchema{
		Context: &Context{
			Label:       "Chosen idea (from step 2)",
			Selectors:   []SourceRef{{Step: 2, Field: "chosen_idea"}},
			Indexed:     &SourceRef{Step: 1, Field: "idea_"},
			WarnMissing: "Choose an idea in step 2 first.",
		},
		Fields: []Field{
			{Name: "benefits", Type: TextArea, Label: "Expected benefits", Required: true, Rows: 4},
			{Name: "risks", Type: TextArea, Label: "Risks and downsides", Required: true, Rows: 4},
		},
	})

	register(2, 4, StepSchema{
		Intro: "What does the solution need?",
		Fields: []Field{
			{Name: "resources_people", Type: TextArea, Label: "People and skills", Required: true, Rows: 3},
			{Name: "resources_budget", Type: Text, Label: "Budget estimate", Required: true},
			{Name: "resources_time", Type: Text, Label: "Time estimate", Required: true},
		},
	})

	register(2, 5, StepSchema{
		Fields: []Field{
			{Name: "constraints", Type: TextArea, Label: "Constraints", Required: true, Rows: 4,
				Placeholder: "What limits the solution space?"},
			{Name: "assumptions", Type: TextArea, Label: "Assumptions", Required: true, Rows: 4,
				Placeholder: "What are you taking for granted?"},
		},
	})

	register(2, 6, StepSchema{
		Context: &Context{
			Label:  "Stakeholders identified on day 1",
			Direct: &SourceRef{Day: 1, Step: 6, Field: "stakeholders"},
		},
		Fields: []Field{
			{Name: "supporters", Type: TextArea, Label: "Likely supporters", Required: true, Rows: 3},
			{Name: "skeptics", Type: TextArea, Label: "Likely skeptics", Required: true, Rows: 3},
			{Name: "buyin_plan", Type: TextArea, Label: "How will you win them over?", Required: true, Rows: 4},
		},
	})

	register(2, 7, StepSchema{
		Fields: []Field{
			{Name: "hypothesis", Type: TextArea, Label: "Solution hypothesis", Required: true, Rows: 4,
				Placeholder: "If we do X, then Y improves because..."},
			{Name: "success_signal", Type: TextArea, Label: "Earliest signal of success", Required: true, Rows: 3},
		},
	})

	register(2, 8, StepSchema{
		Context: &Context{
			Label:       "Chosen idea",
			Selectors:   []SourceRef{{Step: 2, Field: "chosen_idea"}},
			Indexed:     &SourceRef{Step: 1, Field: "idea_"},
			WarnMissing: "Choose an idea in step 2 first.",
		},
		Fields: []Field{
			{Name: "solution_summary", Type: TextArea, Label: "Solution summary", Required: true, Rows: 8,
				Placeholder: "One page: the problem, the chosen solution and why it will work."},
		},
	})
}
