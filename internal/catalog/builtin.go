package catalog

// Curated, evidence-aligned exercises (kept short and actionable).
var builtinExercises = []Exercise{
	{
		ID:          "emo-reg-breath-5",
		Skill:       SkillEmotionalRegulation,
		Title:       "5-minute paced breathing",
		DurationMin: 5,
		Summary:     "Slow, paced breathing to downshift arousal.",
		ScienceNote: "Slow breathing (e.g., 4-6 breaths/min) can reduce sympathetic activity and perceived stress in minutes.",
		Steps: []string{
			"Sit upright, relax shoulders.",
			"Inhale through nose 4s, hold 2s.",
			"Exhale through mouth 6s (soft lips).",
			"Repeat 10 rounds at a comfortable pace.",
			"Notice one thing that feels 1% calmer.",
		},
		GoalTitle: "5-minute breathing",
		Tags:      []string{"solo", "no-phone"},
		Featured:  true,
	},
	{
		ID:          "emo-reg-ground-3",
		Skill:       SkillEmotionalRegulation,
		Title:       "3-minute 5-4-3-2-1 grounding",
		DurationMin: 3,
		Summary:     "Orient attention to the present with senses.",
		ScienceNote: "Brief grounding interrupts spirals by anchoring attention to sensory input.",
		Steps: []string{
			"Name 5 things you see.",
			"Name 4 things you feel (touch).",
			"Name 3 things you hear.",
			"Name 2 things you smell.",
			"Name 1 thing you taste or appreciate.",
		},
		GoalTitle: "3-minute grounding",
		Tags:      []string{"solo"},
		Featured:  true,
	},
	{
		ID:          "coping-walk-10",
		Skill:       SkillCopingSkills,
		Title:       "10-minute mindful walk",
		DurationMin: 10,
		Summary:     "Gentle movement to discharge stress.",
		ScienceNote: "Light physical activity improves affect and executive control; brief bouts help immediately.",
		Steps: []string{
			"Walk at a comfortable pace.",
			"Match steps to your breath naturally.",
			"Notice 3 colors and 3 sounds.",
			"At the end, rate stress 0-10 before/after.",
		},
		GoalTitle: "10-minute walk",
		Tags:      []string{"solo", "outdoors"},
		Featured:  true,
	},
	{
		ID:          "goal-smart-7",
		Skill:       SkillGoalSetting,
		Title:       "SMART micro-goal setup",
		DurationMin: 7,
		Summary:     "Turn a vague wish into a tiny, trackable step.",
		ScienceNote: "Specific, proximal goals with clear criteria increase follow-through and self-efficacy.",
		Steps: []string{
			"Write 1 thing you want this week.",
			"Make it Specific and small (<=15 min).",
			"Define Measurable success (e.g., done/not).",
			"Check Achievable with today's energy.",
			"Confirm Relevant to values now.",
			"Set Time-bound: when exactly today?",
		},
		GoalTitle: "Define 1 SMART micro-goal",
		Tags:      []string{"solo", "paper"},
	},
	{
		ID:          "strengths-savor-5",
		Skill:       SkillStrengths,
		Title:       "Strengths in action (savoring)",
		DurationMin: 5,
		Summary:     "Spot and use one strength today.",
		ScienceNote: "Using character strengths deliberately correlates with engagement and well-being.",
		Steps: []string{
			"Pick 1 strength you've used before (e.g., kindness, curiosity).",
			"Name 1 situation today to use it.",
			"Do a tiny action (<=5 min) using that strength.",
			"Note how it felt afterward.",
		},
		GoalTitle: "Use 1 strength today",
		Tags:      []string{"solo", "social"},
	},
	{
		ID:          "flexible-reframe-5",
		Skill:       SkillFlexibleThinking,
		Title:       "Reframe with \"What else is true?\"",
		DurationMin: 5,
		Summary:     "Broaden perspective to loosen all-or-nothing thoughts.",
		ScienceNote: "Cognitive reappraisal reduces negative affect and improves problem orientation.",
		Steps: []string{
			"Write the sticky thought verbatim.",
			"Ask: \"What else is true right now?\" List 3 items.",
			"Pick a balanced alternative thought.",
			"Choose 1 small action consistent with it.",
		},
		GoalTitle: "Reframe 1 thought",
		Tags:      []string{"solo", "paper"},
	},
	{
		ID:          "problem-solve-7",
		Skill:       SkillProblemSolving,
		Title:       "Stepwise problem solve",
		DurationMin: 7,
		Summary:     "Define, list options, pick, next step.",
		ScienceNote: "Structured problem solving reduces avoidance and increases perceived control.",
		Steps: []string{
			"Define the problem in one sentence.",
			"List 3 options (even imperfect).",
			"Pick the \"good enough\" one.",
			"Break into the next 10-minute step.",
			"Schedule it today.",
		},
		GoalTitle: "Do 1 ten-minute step",
		Tags:      []string{"solo"},
	},
	{
		ID:          "self-accept-noting-4",
		Skill:       SkillSelfAcceptance,
		Title:       "Noting + kind phrase",
		DurationMin: 4,
		Summary:     "Notice, name, and respond kindly.",
		ScienceNote: "Mindful acceptance reduces struggle; self-compassion improves persistence under stress.",
		Steps: []string{
			"Notice a difficult feeling; label it (\"anxiety here\").",
			"Place a hand on chest or cheek.",
			"Say: \"This is hard. May I be kind to myself.\"",
			"Breathe out slowly once.",
		},
		GoalTitle: "2-minute self-kindness",
		Tags:      []string{"solo"},
	},
	{
		ID:          "optimistic-grat-3",
		Skill:       SkillOptimisticThinking,
		Title:       "3 good things (today)",
		DurationMin: 3,
		Summary:     "Shift attention to small positives.",
		ScienceNote: "Brief gratitude practices can increase positive affect and buffer stress.",
		Steps: []string{
			"List 3 things that went okay or better.",
			"Write 1 reason each happened.",
			"Savor one breath for each item.",
		},
		GoalTitle: "List 3 gratitudes",
		Tags:      []string{"solo", "paper"},
	},
	{
		ID:          "sfbp-scaling-4",
		Skill:       SkillGoalSetting,
		Title:       "SFBT scaling step",
		DurationMin: 4,
		Summary:     "Rate 0-10 and move up by 1 point.",
		ScienceNote: "Solution-focused scaling clarifies progress and elicits next actions.",
		Steps: []string{
			"Pick an area (e.g., motivation).",
			"Rate now 0-10 (10 = preferred future).",
			"Ask: \"What makes it as high as it is?\"",
			"Ask: \"What's 1 tiny sign of +1 point?\"",
			"Do that tiny sign today.",
		},
		GoalTitle: "Do a +1 sign",
		Tags:      []string{"solo"},
	},
	{
		ID:          "socratic-ans-5",
		Skill:       SkillFlexibleThinking,
		Title:       "Socratic loop for anxiety",
		DurationMin: 5,
		Summary:     "Question assumptions; test a kinder view.",
		ScienceNote: "Guided questioning reduces cognitive distortions and avoidance.",
		Steps: []string{
			"Write the worry in one sentence.",
			"Clarify: \"What do I mean by...?\"",
			"Probe: \"What if I didn't avoid it?\"",
			"Perspective: \"What would I tell a friend?\"",
			"Plan 1 small test I can run today.",
		},
		GoalTitle: "Run 1 small test",
		Tags:      []string{"solo", "paper"},
	},
	{
		ID:          "coping-inventory-8",
		Skill:       SkillCopingSkills,
		Title:       "Coping strategy inventory",
		DurationMin: 8,
		Summary:     "List stressors, current coping, and 1 upgrade.",
		ScienceNote: "Coping audits help replace avoidance with approach strategies.",
		Steps: []string{
			"List 2 current stressors.",
			"Write your go-to responses for each.",
			"Mark one unhelpful pattern.",
			"Pick 1 alternative strategy to try next time.",
		},
		GoalTitle: "Choose 1 coping upgrade",
		Tags:      []string{"solo", "paper"},
	},
}
