package catalog

// Day 3: action planning for the solution chosen on day 2.
func init() {
	register(3, 1, StepSchema{
		Context: &Context{
			Label:       "Solution being planned",
			Direct:      &SourceRef{Day: 2, Step: 8, Field: "solution_summary"},
			WarnMissing: "Write the solution summary on day 2 step 8 first.",
		},
		Intro: "Break the solution into concrete actions.",
		Fields: []Field{
			{Name: "action_row_", Type: Group, Label: "Action plan", Count: 5, Start: 1,
				Fields: []Field{
					{Name: "action_", Type: Text, Label: "Action", Required: true},
					{Name: "owner_", Type: Text, Label: "Owner", Required: true},
					{Name: "deadline_", Type: Text, Label: "Deadline", Required: true},
				}},
		},
	})

	register(3, 2, StepSchema{
		Fields: []Field{
			{Name: "milestones", Type: TextArea, Label: "Milestones", Required: true, Rows: 5,
				Placeholder: "Checkpoints where progress becomes visible..."},
		},
	})

	register(3, 3, StepSchema{
		Intro: "What could go wrong? Plan mitigations FMEA-style.",
		Fields: []Field{
			{Name: "risk_row_", Type: Group, Label: "Risk register", Count: 3, Start: 1,
				Fields: []Field{
					{Name: "risk_", Type: Text, Label: "Risk", Required: true},
					{Name: "severity_", Type: Number, Label: "Severity (1-5)", Required: true, Min: 1, Max: 5},
					{Name: "likelihood_", Type: Number, Label: "Likelihood (1-5)", Required: true, Min: 1, Max: 5},
					{Name: "mitigation_", Type: Text, Label: "Mitigation", Required: true},
				}},
		},
	})

	register(3, 4, StepSchema{
		Fields: []Field{
			{Name: "communication_plan", Type: TextArea, Label: "Communication plan", Required: true, Rows: 4},
			{Name: "audiences", Type: Text, Label: "Audiences", Required: true,
				Placeholder: "Who needs to hear what, and when?"},
		},
	})

	register(3, 5, StepSchema{
		Fields: []Field{
			{Name: "pilot_scope", Type: TextArea, Label: "Pilot scope", Required: true, Rows: 4,
				Placeholder: "The smallest slice where the solution can be tried..."},
			{Name: "pilot_participants", Type: Text, Label: "Pilot participants", Required: true},
		},
	})

	register(3, 6, StepSchema{
		Context: &Context{
			Label:  "Baseline KPI collected on day 1",
			Direct: &SourceRef{Day: 1, Step: 7, Field: "data_value_0"},
		},
		Fields: []Field{
			{Name: "success_criteria", Type: TextArea, Label: "Success criteria", Required: true, Rows: 4,
				Placeholder: "Measured how, against which baseline?"},
			{Name: "target_value", Type: Text, Label: "Target value", Required: true},
		},
	})

	register(3, 7, StepSchema{
		Fields: []Field{
			{Name: "kickoff_date", Type: Text, Label: "Kickoff date", Required: true},
			{Name: "kickoff_notes", Type: TextArea, Label: "Kickoff notes", Rows: 4},
		},
	})

	register(3, 8, StepSchema{
		Fields: []Field{
			{Name: "plan_summary", Type: TextArea, Label: "Plan summary", Required: true, Rows: 8},
		},
	})
}
