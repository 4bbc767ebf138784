package catalog

// Day 1: problem identification. Each step builds on the answers of the
// previous ones: step 1 collects five problem slots, later steps select,
// analyze and define one of them.
func init() {
	register(1, 1, StepSchema{
		Intro: "Write down the five most pressing organizational or business problems.",
		Fields: []Field{
			{Name: "problem_", Type: TextArea, Label: "Problem", Required: true, Rows: 2,
				Count: 5, Start: 1,
				Placeholder: "Describe a concrete, measurable problem..."},
		},
	})

	register(1, 2, StepSchema{
		Intro: "Pick the three most important problems and analyze their impact.",
		Fields: []Field{
			{Name: "row_", Type: Group, Label: "Impact analysis", Count: 3, Start: 1,
				Fields: []Field{
					{Name: "selected_problem_", Type: Select, Label: "Problem", Required: true,
						OptionsFrom: &SourceRef{Step: 1, Field: "problem_"}},
					{Name: "impact_", Type: Number, Label: "Impact (1-5)", Required: true, Min: 1, Max: 5},
					{Name: "frequency_", Type: Number, Label: "Frequency (1-5)", Required: true, Min: 1, Max: 5},
					{Name: "tool_", Type: Select, Label: "Tool", Required: true,
						Options: []Option{
							{Value: "CBA", Label: "Cost-Benefit Analysis"},
							{Value: "FMEA", Label: "FMEA"},
							{Value: "Force Field", Label: "Force field analysis"},
							{Value: "ROI", Label: "ROI"},
						}},
					{Name: "consequence_", Type: TextArea, Label: "Consequence", Required: true, Rows: 2,
						Placeholder: "What is the impact?"},
				}},
		},
	})

	register(1, 3, StepSchema{
		Context: &Context{
			Label: "Problem to analyze (from step 2)",
			Selectors: []SourceRef{
				{Step: 2, Field: "selected_problem_1"},
				{Step: 2, Field: "selected_problem_2"},
				{Step: 2, Field: "selected_problem_3"},
			},
			Indexed:     &SourceRef{Step: 1, Field: "problem_"},
			WarnMissing: "Complete step 2 (impact analysis) first.",
		},
		Fields: []Field{
			{Name: "analysis_tool", Type: Select, Label: "Choose an analysis tool", Required: true,
				Options: []Option{
					{Value: "Pareto", Label: "Pareto analysis"},
					{Value: "Affinity", Label: "Affinity diagram"},
					{Value: "Flowchart", Label: "Flowchart"},
					{Value: "DILO", Label: "DILO/WILO"},
				}},
			{Name: "analysis_result", Type: TextArea, Label: "Analysis result", Required: true, Rows: 8,
				Placeholder: "Summarize the main findings of the analysis..."},
		},
	})

	register(1, 4, StepSchema{
		Intro: "Rate every problem by impact and effort.",
		Fields: []Field{
			{Name: "priority_", Type: Group, Label: "Prioritization",
				Slots: &SourceRef{Step: 1, Field: "problem_"},
				Fields: []Field{
					{Name: "priority_impact_", Type: Number, Label: "Impact (1-5)", Required: true, Min: 1, Max: 5},
					{Name: "priority_effort_", Type: Number, Label: "Effort (1-5)", Required: true, Min: 1, Max: 5},
				}},
			{Name: "selected_priority_problem", Type: Select, Required: true,
				Label:       "Which problem will you focus on?",
				OptionsFrom: &SourceRef{Step: 1, Field: "problem_"}},
		},
	})

	register(1, 5, StepSchema{
		Context: &Context{
			Label:       "Selected problem (from step 4)",
			Selectors:   []SourceRef{{Step: 4, Field: "selected_priority_problem"}},
			Indexed:     &SourceRef{Step: 1, Field: "problem_"},
			WarnMissing: "Complete step 4 (prioritization) first.",
		},
		Intro: "Define the problem with the 5W1H framework.",
		Fields: []Field{
			{Name: "what", Type: TextArea, Label: "What? (What is the problem?)", Required: true, Rows: 3},
			{Name: "why", Type: TextArea, Label: "Why? (Why does it matter?)", Required: true, Rows: 3},
			{Name: "who", Type: TextArea, Label: "Who? (Who is affected?)", Required: true, Rows: 2},
			{Name: "when", Type: TextArea, Label: "When? (When does it happen?)", Required: true, Rows: 2},
			{Name: "where", Type: TextArea, Label: "Where?", Required: true, Rows: 2},
			{Name: "how", Type: TextArea, Label: "How? (How does it manifest?)", Required: true, Rows: 3},
		},
	})

	register(1, 6, StepSchema{
		Context: &Context{
			Label:  "Defined problem (from step 5)",
			Direct: &SourceRef{Step: 5, Field: "what"},
		},
		Intro: "SWOT analysis of the problem's context.",
		Fields: []Field{
			{Name: "swot_strengths", Type: TextArea, Label: "Strengths", Required: true, Rows: 4,
				Placeholder: "Internal strengths..."},
			{Name: "swot_weaknesses", Type: TextArea, Label: "Weaknesses", Required: true, Rows: 4,
				Placeholder: "Internal weaknesses..."},
			{Name: "swot_opportunities", Type: TextArea, Label: "Opportunities", Required: true, Rows: 4,
				Placeholder: "External opportunities..."},
			{Name: "swot_threats", Type: TextArea, Label: "Threats", Required: true, Rows: 4,
				Placeholder: "External threats..."},
			{Name: "stakeholders", Type: TextArea, Label: "Stakeholder analysis", Required: true, Rows: 4,
				Placeholder: "Who is affected? What is their interest?"},
		},
	})

	register(1, 7, StepSchema{
		Intro: "Collect the data and facts describing the current state.",
		Fields: []Field{
			{Name: "data_", Type: Group, Label: "Data collection", Count: 4, Start: 0,
				SlotLabels: []string{"KPI / metric", "Feedback", "Financial impact", "Other"},
				Fields: []Field{
					{Name: "data_value_", Type: Text, Label: "Concrete number / fact", Required: true,
						Placeholder: "e.g. 40% of deadlines slip"},
					{Name: "data_source_", Type: Text, Label: "Source", Required: true,
						Placeholder: "e.g. PM report"},
					{Name: "data_reliability_", Type: Number, Label: "Reliability (1-5)", Required: true, Min: 1, Max: 5},
				}},
		},
	})

	register(1, 8, StepSchema{
		Context: &Context{
			Label:  "Problem to analyze",
			Direct: &SourceRef{Step: 5, Field: "what"},
		},
		Intro: "Five whys root cause analysis.",
		Fields: []Field{
			{Name: "why_", Type: TextArea, Label: "Why", Required: true, Rows: 2, Count: 5, Start: 1,
				Placeholder: "Why does the previous cause happen?"},
			{Name: "root_cause", Type: TextArea, Label: "Root cause (based on the last why)", Required: true, Rows: 3,
				Placeholder: "What is the real root cause?"},
			{Name: "root_cause_solution", Type: TextArea, Label: "Proposal for addressing the root cause", Required: true, Rows: 4,
				Placeholder: "How will you address the root cause?"},
		},
	})
}
