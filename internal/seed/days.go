package seed

type stepData struct {
	title        string
	description  string
	importance   string
	limitations  string
	instructions string
	tools        []string
}

type dayData struct {
	number      int
	title       string
	subtitle    string
	description string
	steps       []stepData
}

var days = []dayData{
	{
		number:      1,
		title:       "Problem Identification",
		subtitle:    "Find the problem worth solving",
		description: "Collect, analyze and prioritize the problems around you, then define the one you will work on and dig down to its root cause.",
		steps: []stepData{
			{
				title:        "Problem inventory",
				description:  "List the five most pressing organizational or business problems you see.",
				importance:   "Everything later builds on these five slots; vague problems here mean vague analysis everywhere else.",
				instructions: "Write each problem as a concrete, observable situation, not as a missing solution.",
				tools:        []string{"Brainstorming"},
			},
			{
				title:       "Impact analysis",
				description: "Pick the three most important problems and rate their impact and frequency.",
				tools:       []string{"Cost-Benefit Analysis", "FMEA", "Force Field Analysis", "ROI"},
			},
			{
				title:       "Deep analysis",
				description: "Analyze the selected problem with a structured tool.",
				tools:       []string{"Pareto Analysis", "Affinity Diagram", "Flowchart", "DILO"},
			},
			{
				title:       "Prioritization",
				description: "Rate every problem by impact and effort, then commit to one.",
				limitations: "An impact/effort grid compares problems, it does not validate them.",
			},
			{
				title:       "Problem definition",
				description: "Define the chosen problem precisely with the 5W1H framework.",
				tools:       []string{"5W1H"},
			},
			{
				title:       "Context and stakeholders",
				description: "Map the problem's context with a SWOT and identify who is affected.",
				tools:       []string{"SWOT Analysis", "Stakeholder Analysis"},
			},
			{
				title:        "Data collection",
				description:  "Collect numbers and facts that describe the current state.",
				importance:   "The baseline recorded here is what day 5 measures against.",
				instructions: "Prefer measured values over impressions and note the source of each.",
			},
			{
				title:       "Root cause analysis",
				description: "Ask why five times until the real root cause surfaces.",
				tools:       []string{"5 Whys", "Ishikawa Diagram"},
			},
		},
	},
	{
		number:      2,
		title:       "Solution Development",
		subtitle:    "From root cause to chosen solution",
		description: "Generate ideas against the root cause, choose the most promising one and shape it into a solution you can commit to.",
		steps: []stepData{
			{
				title:       "Idea generation",
				description: "Generate five ideas that address the root cause, without judging them.",
				tools:       []string{"Brainstorming"},
			},
			{title: "Idea selection", description: "Choose the most promising idea and write down why."},
			{title: "Benefits and risks", description: "Weigh what the chosen idea wins and what it could break."},
			{title: "Resource needs", description: "Estimate the people, budget and time the solution needs."},
			{title: "Constraints and assumptions", description: "Make the limits of the solution space explicit."},
			{
				title:       "Stakeholder buy-in",
				description: "Sort the stakeholders into supporters and skeptics and plan how to win them over.",
				tools:       []string{"Stakeholder Analysis"},
			},
			{title: "Solution hypothesis", description: "State the solution as a testable if-then hypothesis."},
			{title: "Solution summary", description: "Write the one-page summary of the problem and the chosen solution."},
		},
	},
	{
		number:      3,
		title:       "Action Planning",
		subtitle:    "Make the solution executable",
		description: "Turn the chosen solution into actions with owners and deadlines, plan for risk and define what success will look like.",
		steps: []stepData{
			{title: "Action plan", description: "Break the solution into concrete actions with owners and deadlines."},
			{title: "Milestones", description: "Mark the checkpoints where progress becomes visible."},
			{
				title:       "Risk register",
				description: "List what could go wrong and how you will mitigate it.",
				tools:       []string{"FMEA"},
			},
			{title: "Communication plan", description: "Decide who needs to hear what, and when."},
			{title: "Pilot design", description: "Scope the smallest slice where the solution can be tried."},
			{
				title:       "Success criteria",
				description: "Define measurable success against the day 1 baseline.",
				tools:       []string{"SMART Goals"},
				importance:  "Without a target value the day 5 verdict is opinion, not measurement.",
			},
			{title: "Kickoff", description: "Set the kickoff date and capture the opening notes."},
			{title: "Plan summary", description: "Summarize the plan on one page."},
		},
	},
	{
		number:      4,
		title:       "Implementation",
		subtitle:    "Execute and adapt",
		description: "Work the plan, log what actually happens, surface blockers early and adjust without losing the thread.",
		steps: []stepData{
			{title: "Implementation journal", description: "Log what actually happened, one entry per work session."},
			{title: "Blockers and support", description: "Name what is blocking you and the support you need."},
			{title: "Plan adjustments", description: "Record where reality forced the plan to change."},
			{title: "Quick wins", description: "Capture the early results worth sharing."},
			{title: "Standup notes", description: "Keep the running notes from your check-ins."},
			{title: "Pilot results", description: "Record what the pilot or experiment showed."},
			{title: "Lessons learned", description: "Write down what you have learned so far."},
			{title: "Status summary", description: "Summarize the implementation status on one page."},
		},
	},
	{
		number:      5,
		title:       "Measurement and Evaluation",
		subtitle:    "Did it work?",
		description: "Re-measure the baseline, compare against the success criteria and reach an honest verdict.",
		steps: []stepData{
			{title: "Re-measurement", description: "Re-measure the same data points collected on day 1."},
			{title: "Before and after", description: "Compare the new numbers against the baseline and the target."},
			{
				title:       "Return on investment",
				description: "Estimate what the change cost and what it returned.",
				tools:       []string{"ROI", "Cost-Benefit Analysis"},
			},
			{title: "Stakeholder feedback", description: "Collect how the affected people experienced the change."},
			{title: "Trends", description: "Note the trends the numbers show over time.", tools: []string{"Pareto Analysis"}},
			{title: "Verdict", description: "State plainly whether the situation improved, and why you think so."},
			{title: "Next steps", description: "Decide what follows from the verdict."},
			{title: "Measurement summary", description: "Summarize the measurement on one page."},
		},
	},
	{
		number:      6,
		title:       "Standardization and Review",
		subtitle:    "Lock in the gains",
		description: "Standardize what worked, plan the rollout and monitoring, then review the whole journey.",
		steps: []stepData{
			{title: "Standardization plan", description: "Decide which parts of the solution become the new standard."},
			{title: "Documentation", description: "Write down the new process so someone else could run it."},
			{title: "Rollout and training", description: "Plan how the standard spreads beyond the pilot."},
			{title: "Monitoring plan", description: "Decide how you will notice if the gains erode."},
			{
				title:       "Journey review",
				description: "Review the whole journey; the fields start prefilled from earlier days.",
				importance:  "Seeing the chain from problem to result in one place is the point of the whole workbook.",
			},
			{title: "Reflection", description: "What did you learn, and what would you do differently?"},
			{title: "Celebration", description: "Plan how the result and the people behind it get recognized."},
			{title: "Final summary", description: "Close the workbook with the final summary."},
		},
	},
}
