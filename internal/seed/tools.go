package seed

type toolData struct {
	name        string
	icon        string
	description string
	whenToUse   string
	howTo       []string
	tips        string
}

var tools = []toolData{
	{
		name:        "Brainstorming",
		icon:        "fa-lightbulb",
		description: "Fast, unstructured idea generation.",
		whenToUse:   "When you need many varied ideas quickly.",
		howTo: []string{
			"Define the topic or problem",
			"Set a time box (5-15 minutes)",
			"Write down every idea without judging",
			"Do not edit or criticize while collecting",
			"Quantity beats quality in this phase",
			"Group and evaluate afterwards",
		},
		tips: "Use sticky notes or a shared board. The wilder the idea, the better.",
	},
	{
		name:        "5 Whys",
		icon:        "fa-question-circle",
		description: "Surface the root cause by asking why repeatedly.",
		whenToUse:   "When you are looking for the real cause behind a problem.",
		howTo: []string{
			"State the problem clearly",
			"Ask: why does this happen?",
			"Answer with facts, not blame",
			"Ask why again about the previous answer",
			"Repeat at least five times",
			"The last why is usually the root cause",
		},
		tips: "Do not stop at three. The breakthrough often comes at the fifth or sixth why.",
	},
	{
		name:        "Ishikawa Diagram",
		icon:        "fa-project-diagram",
		description: "Visual cause-and-effect analysis sorted into categories.",
		whenToUse:   "For structured analysis of complex problems.",
		howTo: []string{
			"Draw the fish: the head is the problem",
			"Add main bones: People, Method, Machine, Material, Environment, Measurement",
			"Collect causes on every main bone",
			"Ask what causes this on each branch",
			"Go deeper along the densest branches",
		},
		tips: "Works best as a team exercise; every person adds a different perspective.",
	},
	{
		name:        "SWOT Analysis",
		icon:        "fa-th-large",
		description: "Strategic situation analysis from four viewpoints.",
		whenToUse:   "For strategic planning and position assessment.",
		howTo: []string{
			"Draw a 2x2 grid",
			"Strengths: what are you good at (internal, positive)",
			"Weaknesses: what would you improve (internal, negative)",
			"Opportunities: which outside trends help (external, positive)",
			"Threats: what stands in the way (external, negative)",
			"Analyze the cross-links (S+O, W+T)",
		},
		tips: "Be honest. The value of a SWOT is its objectivity.",
	},
	{
		name:        "Pareto Analysis",
		icon:        "fa-chart-bar",
		description: "Find the few critical factors that cause most of the effect.",
		whenToUse:   "When you have to prioritize among many problems.",
		howTo: []string{
			"List the causes or problems",
			"Quantify each (frequency, cost, time)",
			"Sort in descending order",
			"Compute the cumulative percentage",
			"Focus on the top 20 percent that drives 80 percent of the effect",
		},
		tips: "The first two or three causes often explain most of the pain.",
	},
	{
		name:        "Cost-Benefit Analysis",
		icon:        "fa-balance-scale",
		description: "Financial comparison of costs and benefits.",
		whenToUse:   "For investment decisions and larger changes.",
		howTo: []string{
			"List every cost, direct and indirect",
			"List every benefit, financial and not",
			"Put a monetary value on each",
			"Net benefit = benefits minus costs",
			"Benefit/cost ratio above 1 means it pays off",
		},
		tips: "Do not forget the hidden costs: time, training, resistance to change.",
	},
	{
		name:        "FMEA",
		icon:        "fa-exclamation-triangle",
		description: "Failure mode and effects analysis for anticipating risk.",
		whenToUse:   "When designing a new process or managing risk.",
		howTo: []string{
			"List the possible failure modes",
			"Rate severity 1-10",
			"Rate occurrence 1-10",
			"Rate detectability 1-10",
			"RPN = severity x occurrence x detection",
			"Act on the highest RPN values first",
		},
		tips: "An RPN above 100 is a serious risk and needs immediate action.",
	},
	{
		name:        "Force Field Analysis",
		icon:        "fa-arrows-alt-h",
		description: "Weigh the forces driving a change against the forces resisting it.",
		whenToUse:   "Before committing to a change that people must carry.",
		howTo: []string{
			"State the planned change in the middle",
			"List driving forces on one side",
			"List restraining forces on the other",
			"Score each force 1-5",
			"Strengthen the drivers or weaken the restraints",
		},
		tips: "Weakening a restraining force usually moves more than pushing harder.",
	},
	{
		name:        "ROI",
		icon:        "fa-percentage",
		description: "Return on investment: what a change gives back relative to its cost.",
		whenToUse:   "When a decision needs a single financial figure.",
		howTo: []string{
			"Sum the full cost of the change",
			"Sum the measurable returns over a fixed period",
			"ROI = (returns minus cost) / cost",
			"State the period the figure covers",
		},
		tips: "An ROI without a time window is meaningless; always name the period.",
	},
	{
		name:        "Affinity Diagram",
		icon:        "fa-object-group",
		description: "Group a large pile of observations into natural themes.",
		whenToUse:   "After collecting many unstructured inputs or ideas.",
		howTo: []string{
			"Write each observation on its own note",
			"Spread everything out where all of it is visible",
			"Move related notes next to each other silently",
			"Name each cluster after it forms",
			"Treat the cluster names as the real findings",
		},
		tips: "Let the groups emerge; naming them too early bends the data.",
	},
	{
		name:        "Flowchart",
		icon:        "fa-sitemap",
		description: "Map a process step by step to see where it breaks.",
		whenToUse:   "When the problem hides somewhere inside a process.",
		howTo: []string{
			"Define the start and end of the process",
			"Walk the actual steps, not the official ones",
			"Mark decision points as branches",
			"Mark waits, loops and handoffs",
			"Look for the steps where time or quality is lost",
		},
		tips: "Map the process as it really runs, not as the manual says it runs.",
	},
	{
		name:        "DILO",
		icon:        "fa-clock",
		description: "Day in the life of: observe how a role actually spends its time.",
		whenToUse:   "When you suspect the real workload differs from the assumed one.",
		howTo: []string{
			"Pick the role and a typical day",
			"Log activities in 15-30 minute blocks",
			"Classify each block: value, support, waste",
			"Sum the categories at the end of the day",
			"Discuss the result with the person observed",
		},
		tips: "Observe without judging; the goal is the system, not the person.",
	},
	{
		name:        "5W1H",
		icon:        "fa-list-ol",
		description: "Define a problem completely: what, why, who, when, where, how.",
		whenToUse:   "When a problem statement is still fuzzy.",
		howTo: []string{
			"What is the problem?",
			"Why does it matter?",
			"Who is affected?",
			"When does it happen?",
			"Where does it happen?",
			"How does it manifest?",
		},
		tips: "If any of the six answers is missing, the problem is not yet defined.",
	},
	{
		name:        "SMART Goals",
		icon:        "fa-bullseye",
		description: "Goals that are specific, measurable, achievable, relevant and time-bound.",
		whenToUse:   "When turning intent into a commitment you can check later.",
		howTo: []string{
			"Specific: name exactly what changes",
			"Measurable: attach a number",
			"Achievable: sanity-check against capacity",
			"Relevant: tie it to the problem being solved",
			"Time-bound: set the deadline",
		},
		tips: "The measurable part is what day 5 will hold you to.",
	},
	{
		name:        "Stakeholder Analysis",
		icon:        "fa-users",
		description: "Map who is affected, their interest and their influence.",
		whenToUse:   "Before a change that depends on other people's cooperation.",
		howTo: []string{
			"List everyone touched by the change",
			"Rate each person's interest and influence",
			"Place them on an interest/influence grid",
			"Plan engagement per quadrant",
			"Revisit the map as the change progresses",
		},
		tips: "High influence, low interest is the quadrant that sinks projects.",
	},
	{
		name:        "Eisenhower Matrix",
		icon:        "fa-border-all",
		description: "Sort work by urgency and importance.",
		whenToUse:   "When everything feels urgent and nothing gets finished.",
		howTo: []string{
			"Draw a 2x2: urgent/not urgent against important/not important",
			"Urgent and important: do now",
			"Important, not urgent: schedule",
			"Urgent, not important: delegate",
			"Neither: drop",
		},
		tips: "The schedule quadrant is where root-cause work lives; protect it.",
	},
}
