package catalog

// Day 6: standardization and reflection. The review step pulls its
// prefilled values from every earlier day.
func init() {
	register(6, 1, StepSchema{
		Context: &Context{
			Label:  "Measurement verdict",
			Direct: &SourceRef{Day: 5, Step: 6, Field: "verdict"},
		},
		Fields: []Field{
			{Name: "standardization_plan", Type: TextArea, Label: "Standardization plan", Required: true, Rows: 6,
				Placeholder: "How does the solution become the new normal?"},
		},
	})

	register(6, 2, StepSchema{
		Fields: []Field{
			{Name: "documentation", Type: TextArea, Label: "Documentation", Required: true, Rows: 5,
				Placeholder: "Process descriptions, checklists, templates to write..."},
		},
	})

	register(6, 3, StepSchema{
		Fields: []Field{
			{Name: "rollout_plan", Type: TextArea, Label: "Rollout plan", Required: true, Rows: 5},
			{Name: "training_needs", Type: TextArea, Label: "Training needs", Rows: 4},
		},
	})

	register(6, 4, StepSchema{
		Fields: []Field{
			{Name: "monitoring_plan", Type: TextArea, Label: "Monitoring plan", Required: true, Rows: 5,
				Source:      &SourceRef{Day: 3, Step: 6, Field: "success_criteria"},
				Placeholder: "Start from the success criteria and describe ongoing checks."},
		},
	})

	register(6, 5, StepSchema{
		Intro: "Review the whole journey; the fields below start prefilled from earlier days.",
		Fields: []Field{
			{Name: "review_problem", Type: TextArea, Label: "The problem", Required: true, Rows: 3,
				Source: &SourceRef{Day: 1, Step: 5, Field: "what"}},
			{Name: "review_root_cause", Type: TextArea, Label: "The root cause", Required: true, Rows: 3,
				Source: &SourceRef{Day: 1, Step: 8, Field: "root_cause"}},
			{Name: "review_solution", Type: TextArea, Label: "The solution", Required: true, Rows: 3,
				Source: &SourceRef{Day: 2, Step: 8, Field: "solution_summary"}},
			{Name: "review_plan", Type: TextArea, Label: "The plan", Required: true, Rows: 3,
				Source: &SourceRef{Day: 3, Step: 8, Field: "plan_summary"}},
			{Name: "review_execution", Type: TextArea, Label: "The execution", Required: true, Rows: 3,
				Source: &SourceRef{Day: 4, Step: 8, Field: "status_summary"}},
			{Name: "review_result", Type: TextArea, Label: "The result", Required: true, Rows: 3,
				Source: &SourceRef{Day: 5, Step: 8, Field: "measurement_summary"}},
		},
	})

	register(6, 6, StepSchema{
		Fields: []Field{
			{Name: "reflection_learned", Type: TextArea, Label: "What did you learn?", Required: true, Rows: 4},
			{Name: "reflection_do_differently", Type: TextArea, Label: "What would you do differently?", Required: true, Rows: 4},
		},
	})

	register(6, 7, StepSchema{
		Fields: []Field{
			{Name: "celebrate", Type: TextArea, Label: "How will you celebrate?", Rows: 3},
			{Name: "thanks", Type: TextArea, Label: "Who deserves thanks?", Rows: 3},
		},
	})

	register(6, 8, StepSchema{
		Fields: []Field{
			{Name: "final_summary", Type: TextArea, Label: "Final summary", Required: true, Rows: 10},
		},
	})
}
