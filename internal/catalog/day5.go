package catalog

// Day 5: measurement against the day 1 baseline.
func init() {
	register(5, 1, StepSchema{
		Context: &Context{
			Label:       "Baseline KPI from day 1",
			Direct:      &SourceRef{Day: 1, Step: 7, Field: "data_value_0"},
			WarnMissing: "Collect baseline data on day 1 step 7 first.",
		},
		Intro: "Re-measure the same data points collected on day 1.",
		Fields: []Field{
			{Name: "result_", Type: Group, Label: "Results", Count: 4, Start: 0,
				SlotLabels: []string{"KPI / metric", "Feedback", "Financial impact", "Other"},
				Fields: []Field{
					{Name: "result_value_", Type: Text, Label: "Current number / fact", Required: true},
					{Name: "result_source_", Type: Text, Label: "Source", Required: true},
				}},
		},
	})

	register(5, 2, StepSchema{
		Context: &Context{
			Label:  "Success criteria from day 3",
			Direct: &SourceRef{Day: 3, Step: 6, Field: "success_criteria"},
		},
		Fields: []Field{
			{Name: "delta_analysis", Type: TextArea, Label: "Before / after analysis", Required: true, Rows: 6,
				Placeholder: "Compare results against the baseline and the success criteria."},
		},
	})

	register(5, 3, StepSchema{
		Fields: []Field{
			{Name: "roi_estimate", Type: Text, Label: "ROI estimate", Required: true},
			{Name: "roi_notes", Type: TextArea, Label: "How was it computed?", Rows: 4},
		},
	})

	register(5, 4, StepSchema{
		Fields: []Field{
			{Name: "feedback_summary", Type: TextArea, Label: "Stakeholder feedback", Required: true, Rows: 5},
		},
	})

	register(5, 5, StepSchema{
		Fields: []Field{
			{Name: "chart_notes", Type: TextArea, Label: "Trends and charts", Rows: 5,
				Placeholder: "Describe the trend lines worth presenting..."},
		},
	})

	register(5, 6, StepSchema{
		Fields: []Field{
			{Name: "verdict", Type: Select, Label: "Verdict", Required: true,
				Options: []Option{
					{Value: "improved", Label: "Clearly improved"},
					{Value: "mixed", Label: "Mixed results"},
					{Value: "no_change", Label: "No measurable change"},
					{Value: "worse", Label: "Got worse"},
				}},
			{Name: "verdict_notes", Type: TextArea, Label: "Reasoning", Required: true, Rows: 4},
		},
	})

	register(5, 7, StepSchema{
		Fields: []Field{
			{Name: "next_steps", Type: TextArea, Label: "Next steps", Required: true, Rows: 5},
		},
	})

	register(5, 8, StepSchema{
		Fields: []Field{
			{Name: "measurement_summary", Type: TextArea, Label: "Measurement summary", Required: true, Rows: 8},
		},
	})
}
