package rubric

// StoryGoldilocks is the story slug for "Goldilocks and the Three Bears".
const StoryGoldilocks = "goldilocks"

// GoldilocksRubrics returns the grading rubrics for the Goldilocks story.
// The first eight mirror the reading-comprehension worksheet; the story
// problem and story lesson questions come from the voice tutor's script.
func GoldilocksRubrics() []*QuestionRubric {
	return []*QuestionRubric{
		{
			ID:              "goldilocks-title",
			Story:           StoryGoldilocks,
			Prompt:          "What is the title of this story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Goldilocks and the Three Bears",
			ExpectedConcepts: []string{
				"goldilocks", "three-bears",
			},
			ConceptKeywords: map[string][]string{
				"goldilocks":  {"goldilocks"},
				"three-bears": {"three bears", "3 bears"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength:        2,
			RequiresCapitalization: true,
		},
		{
			ID:              "goldilocks-author",
			Story:           StoryGoldilocks,
			Prompt:          "Who is the author of this story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Traditional folk tale (no single author)",
			ExpectedConcepts: []string{
				"traditional-origin", "historical-attribution",
			},
			ConceptKeywords: map[string][]string{
				"traditional-origin": {
					"traditional", "folk", "unknown", "anonymous",
					"fairy tale", "oral tradition", "no author",
				},
				"historical-attribution": {"southey", "robert"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength:        2,
			RequiresCapitalization: true,
			GradingNotes: "This is a traditional folk tale with no single author. " +
				"Accept answers like traditional story, unknown, anonymous, folk tale, or oral tradition. " +
				"Robert Southey published an early version, so his name also counts as correct. " +
				"A specific modern author (like Dr. Seuss) is incorrect.",
		},
		{
			ID:              "goldilocks-genre",
			Story:           StoryGoldilocks,
			Prompt:          "What genre is this story - Fiction or Non-Fiction?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Fiction",
			ExpectedConcepts: []string{
				"fiction",
			},
			ConceptKeywords: map[string][]string{
				"fiction": {"fiction", "made up", "imaginary", "pretend"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 1, Tier: TierExcellent},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength: 2,
			GradingNotes: "Goldilocks is fiction: imaginary characters, talking animals, " +
				"events that did not really happen. An answer of Non-Fiction is incorrect.",
		},
		{
			ID:              "goldilocks-characters",
			Story:           StoryGoldilocks,
			Prompt:          "Who are the main characters in this story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Goldilocks, Papa Bear, Mama Bear, and Baby Bear",
			ExpectedConcepts: []string{
				"goldilocks", "papa-bear", "mama-bear", "baby-bear",
			},
			ConceptKeywords: map[string][]string{
				"goldilocks": {"goldilocks"},
				"papa-bear":  {"papa", "father", "dad", "big bear", "great"},
				"mama-bear":  {"mama", "mother", "mom", "medium", "middle"},
				"baby-bear":  {"baby", "little", "small", "wee", "tiny"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 4, Tier: TierExcellent},
				{MinMatches: 3, Tier: TierGood},
				{MinMatches: 2, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
			GradingNotes: "Accept name variations: Papa/Father/Big/Great Big Bear, " +
				"Mama/Mother/Medium/Middle Bear, Baby/Little/Small/Wee Bear.",
		},
		{
			ID:              "goldilocks-setting",
			Story:           StoryGoldilocks,
			Prompt:          "Where does the story take place?",
			Category:        CategoryObjective,
			CanonicalAnswer: "In the woods and at the bears' house",
			ExpectedConcepts: []string{
				"woods", "bears-house",
			},
			ConceptKeywords: map[string][]string{
				"woods":       {"wood", "forest", "tree", "woodland"},
				"bears-house": {"house", "home", "cottage", "cabin"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
		},
		{
			ID:              "goldilocks-events",
			Story:           StoryGoldilocks,
			Prompt:          "What are three important events that happen in the story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "1. Goldilocks enters the bears' house\n2. She tries their porridge, chairs, and beds\n3. The bears find her and she runs away",
			ExpectedConcepts: []string{
				"goldilocks", "entering-house", "porridge", "chairs", "beds", "bears", "running-away",
			},
			ConceptKeywords: map[string][]string{
				"goldilocks":     {"goldilocks"},
				"entering-house": {"house", "home", "enter"},
				"porridge":       {"porridge", "food"},
				"chairs":         {"chair", "sit"},
				"beds":           {"bed", "sleep"},
				"bears":          {"bear"},
				"running-away":   {"run", "escape", "away", "left"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 5, Tier: TierExcellent},
				{MinMatches: 3, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
			GradingNotes: "The child lists three events in separate fields. Accept any " +
				"phrasing of the major events: bears make porridge and walk, Goldilocks " +
				"enters, tries porridge/chairs/beds, bears come home, she runs away.",
		},
		{
			ID:       "goldilocks-favourite-character",
			Story:    StoryGoldilocks,
			Prompt:   "Write about your favourite character from the story.",
			Category: CategorySubjective,
			ExpectedConcepts: []string{
				"story-character", "reasoning",
			},
			ConceptKeywords: map[string][]string{
				"story-character": {
					"goldilocks", "goldi", "girl",
					"papa", "father", "mama", "mother", "baby", "little", "bear",
				},
				"reasoning": {
					"because", "since", "like", "love", "favourite", "favorite",
					"nice", "kind", "funny", "cute", "brave", "curious", "sweet", "smart",
				},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength: 10,
			GradingNotes: "Every story character is a valid favourite. Grade on whether " +
				"a character is named and WHY the child likes them is explained.",
		},
		{
			ID:       "goldilocks-character-opinion",
			Story:    StoryGoldilocks,
			Prompt:   "Who is your favourite character, and what makes them special to you?",
			Category: CategoryCreative,
			ExpectedConcepts: []string{
				"story-character", "reasoning",
			},
			ConceptKeywords: map[string][]string{
				"story-character": {"goldilocks", "papa", "mama", "baby", "bear"},
				"reasoning": {
					"because", "like", "love", "favorite", "favourite", "think", "feel",
				},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierPartial},
			},
			MinAnswerLength: 10,
			GradingNotes: "This is an opinion question with no wrong answers. Celebrate " +
				"the child's choice and ask a follow-up that encourages deeper thinking.",
		},
		{
			ID:              "goldilocks-problem",
			Story:           StoryGoldilocks,
			Prompt:          "What is the problem or conflict in the story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Goldilocks goes into the bears' house and uses their things without asking",
			ExpectedConcepts: []string{
				"entering-uninvited", "using-belongings", "bears-return",
			},
			ConceptKeywords: map[string][]string{
				"entering-uninvited": {"went in", "goes in", "enter", "sneak", "without permission", "house"},
				"using-belongings":   {"porridge", "chair", "bed", "ate", "broke", "slept"},
				"bears-return":       {"come home", "came home", "found", "discover"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 3, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
		},
		{
			ID:              "goldilocks-lesson",
			Story:           StoryGoldilocks,
			Prompt:          "What lesson or moral does this story teach us?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Always ask permission before using other people's things, and respect their homes",
			ExpectedConcepts: []string{
				"permission", "respect", "consequences", "property",
			},
			ConceptKeywords: map[string][]string{
				"permission":   {"permission", "ask", "asking", "invited"},
				"respect":      {"respect", "polite", "careful"},
				"consequences": {"trouble", "scared", "ran away", "consequence"},
				"property":     {"other people", "someone else", "not yours", "belong"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 3, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
		},
	}
}
