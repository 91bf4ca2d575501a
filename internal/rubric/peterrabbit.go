package rubric

// StoryPeterRabbit is the story slug for "The Tale of Peter Rabbit".
const StoryPeterRabbit = "peter-rabbit"

// PeterRabbitRubrics returns the grading rubrics for the Peter Rabbit story.
func PeterRabbitRubrics() []*QuestionRubric {
	return []*QuestionRubric{
		{
			ID:              "peter-title",
			Story:           StoryPeterRabbit,
			Prompt:          "What is the title of this story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "The Tale of Peter Rabbit",
			ExpectedConcepts: []string{
				"peter", "rabbit", "tale",
			},
			ConceptKeywords: map[string][]string{
				"peter":  {"peter"},
				"rabbit": {"rabbit", "bunny"},
				"tale":   {"tale", "story"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 3, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength:        2,
			RequiresCapitalization: true,
		},
		{
			ID:              "peter-author",
			Story:           StoryPeterRabbit,
			Prompt:          "Who is the author of this story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Beatrix Potter",
			ExpectedConcepts: []string{
				"beatrix", "potter",
			},
			ConceptKeywords: map[string][]string{
				"beatrix": {"beatrix", "beatrice"},
				"potter":  {"potter", "pottor"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength:        2,
			RequiresCapitalization: true,
			GradingNotes: "The author is Beatrix Potter, a British writer famous for " +
				"illustrated animal stories. Either name part alone is close enough to " +
				"count as good. Other authors, 'unknown', or 'anonymous' are incorrect.",
		},
		{
			ID:              "peter-genre",
			Story:           StoryPeterRabbit,
			Prompt:          "What genre is this story - Fiction or Non-Fiction?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Fiction",
			ExpectedConcepts: []string{
				"fiction",
			},
			ConceptKeywords: map[string][]string{
				"fiction": {"fiction", "made up", "imaginary", "pretend", "fantasy"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 1, Tier: TierExcellent},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength: 2,
			GradingNotes: "Peter Rabbit is fiction: talking animals wearing jackets. " +
				"An answer of Non-Fiction is incorrect.",
		},
		{
			ID:              "peter-main-animal",
			Story:           StoryPeterRabbit,
			Prompt:          "What type of animal is the main character?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Rabbit",
			ExpectedConcepts: []string{
				"rabbit", "peter",
			},
			ConceptKeywords: map[string][]string{
				"rabbit": {"rabbit", "bunny"},
				"peter":  {"peter"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength:        2,
			RequiresCapitalization: true,
			GradingNotes: "Rabbit (or bunny) is the right animal. Naming Peter without " +
				"the animal type is good but incomplete. Cats, birds, sparrows and mice " +
				"appear in the story but are not the main character.",
		},
		{
			ID:       "peter-personality",
			Story:    StoryPeterRabbit,
			Prompt:   "How would you describe Peter's personality?",
			Category: CategorySubjective,
			ExpectedConcepts: []string{
				"curious", "adventurous", "mischievous", "disobedient", "playful", "young",
			},
			ConceptKeywords: map[string][]string{
				"curious":     {"curious", "inquisitive", "interested", "wondering"},
				"adventurous": {"adventurous", "explorer", "brave", "bold"},
				"mischievous": {"mischievous", "naughty", "troublesome", "cheeky"},
				"disobedient": {"disobedient", "doesn't listen", "breaks rules", "rebels"},
				"playful":     {"playful", "fun", "energetic", "active"},
				"young":       {"young", "little", "small", "child"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 3, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength: 3,
			GradingNotes: "Peter is curious, mischievous and adventurous; he disobeys " +
				"his mother and sneaks into the garden. Traits like mean, cruel or lazy " +
				"do not fit him.",
		},
		{
			ID:              "peter-second-animal",
			Story:           StoryPeterRabbit,
			Prompt:          "What other animal appears in the story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "A cat or the birds",
			ExpectedConcepts: []string{
				"cat", "birds",
			},
			ConceptKeywords: map[string][]string{
				"cat":   {"cat", "kitten"},
				"birds": {"bird", "sparrow", "robin"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 1, Tier: TierExcellent},
				{MinMatches: 0, Tier: TierIncorrect},
			},
			MinAnswerLength:        2,
			RequiresCapitalization: true,
			GradingNotes: "Either the white cat or the birds/sparrows count. Naming " +
				"Peter again misses the point of the question.",
		},
		{
			ID:       "peter-second-animal-personality",
			Story:    StoryPeterRabbit,
			Prompt:   "How would you describe that animal's personality?",
			Category: CategorySubjective,
			ExpectedConcepts: []string{
				"watchful", "predatory", "cautious", "clever", "helpful", "friendly", "warning", "small",
			},
			ConceptKeywords: map[string][]string{
				"watchful":  {"watchful", "watching", "alert", "observant"},
				"predatory": {"hunting", "predatory", "stalking", "dangerous"},
				"cautious":  {"cautious", "careful", "sneaky", "quiet"},
				"clever":    {"smart", "clever", "intelligent"},
				"helpful":   {"helpful", "helping", "kind", "nice"},
				"friendly":  {"friendly", "friend", "caring", "good"},
				"warning":   {"warning", "protective", "looking out"},
				"small":     {"small", "little", "tiny", "quick"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength: 3,
			GradingNotes: "Cats in the story are watchful and quietly dangerous; the " +
				"birds are small, friendly and warn Peter. Accept traits fitting either.",
		},
		{
			ID:              "peter-setting",
			Story:           StoryPeterRabbit,
			Prompt:          "Where does the story take place?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Mr. McGregor's garden and the countryside",
			ExpectedConcepts: []string{
				"garden", "countryside", "burrow",
			},
			ConceptKeywords: map[string][]string{
				"garden":      {"garden", "mcgregor", "vegetable"},
				"countryside": {"woods", "forest", "countryside", "country"},
				"burrow":      {"burrow", "hole", "fir tree", "under"},
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
			ID:              "peter-problem",
			Story:           StoryPeterRabbit,
			Prompt:          "What is the main problem in the story?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Peter disobeys his mother and gets into trouble in Mr. McGregor's garden",
			ExpectedConcepts: []string{
				"disobedience", "garden", "trouble", "eating", "mother",
			},
			ConceptKeywords: map[string][]string{
				"disobedience": {"disobey", "doesn't listen", "broke rule", "ignored"},
				"garden":       {"garden", "mcgregor", "forbidden", "shouldn't go"},
				"trouble":      {"trouble", "problem", "stuck", "trapped", "chased"},
				"eating":       {"ate", "eating", "vegetables", "food", "stealing"},
				"mother":       {"mother", "mom", "warned", "told not to"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 4, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
		},
		{
			ID:              "peter-solution",
			Story:           StoryPeterRabbit,
			Prompt:          "How is the problem solved at the end?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Peter escapes from the garden and returns home safely to his mother",
			ExpectedConcepts: []string{
				"escape", "home", "mother", "hiding", "help", "safety", "lesson",
			},
			ConceptKeywords: map[string][]string{
				"escape": {"escape", "runs away", "gets away", "flees"},
				"home":   {"home", "returns", "goes back", "gets back"},
				"mother": {"mother", "mom", "mama"},
				"hiding": {"hide", "hides", "hiding", "hidden"},
				"help":   {"help", "sparrow", "bird", "warn"},
				"safety": {"safe", "safely", "okay", "alright"},
				"lesson": {"learn", "lesson", "realizes", "understands"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 4, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
		},
		{
			ID:              "peter-lesson",
			Story:           StoryPeterRabbit,
			Prompt:          "What lesson does this story teach us?",
			Category:        CategoryObjective,
			CanonicalAnswer: "Listen to your parents and obey rules, because disobedience has consequences",
			ExpectedConcepts: []string{
				"obedience", "parents", "rules", "consequences", "disobedience", "safety", "mistakes",
			},
			ConceptKeywords: map[string][]string{
				"obedience":    {"obey", "listen", "follow", "told"},
				"parents":      {"parent", "mother", "mom", "mama"},
				"rules":        {"rule", "instruction", "warning", "command"},
				"consequences": {"consequence", "trouble", "danger", "punishment", "problem"},
				"disobedience": {"disobey", "ignore", "break rule"},
				"safety":       {"safe", "protect", "careful", "harm"},
				"mistakes":     {"wrong", "mistake", "shouldn't", "bad choice"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 4, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength:        3,
			RequiresCapitalization: true,
		},
		{
			ID:       "peter-favourite-character",
			Story:    StoryPeterRabbit,
			Prompt:   "Who is your favourite character from the story, and why?",
			Category: CategorySubjective,
			ExpectedConcepts: []string{
				"story-character", "reasoning",
			},
			ConceptKeywords: map[string][]string{
				"story-character": {
					"peter", "mother", "mom", "mama", "mcgregor", "farmer", "gardener",
					"flopsy", "mopsy", "cotton", "sister", "cat", "bird", "sparrow",
				},
				"reasoning": {
					"because", "brave", "curious", "adventurous", "kind", "caring",
					"funny", "clever", "smart", "helps", "saves", "protects", "learns",
					"tries", "escapes", "like me", "reminds me", "relate",
				},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength: 10,
			GradingNotes: "Every story character is a valid favourite. Grade on whether " +
				"one is named and the reason for liking them is explained.",
		},
		{
			ID:       "peter-reading-feelings",
			Story:    StoryPeterRabbit,
			Prompt:   "How did you feel while reading this story?",
			Category: CategorySubjective,
			ExpectedConcepts: []string{
				"positive-emotion", "concerned-emotion", "mixed-emotion", "explanation",
			},
			ConceptKeywords: map[string][]string{
				"positive-emotion": {
					"happy", "joyful", "cheerful", "glad", "delighted",
					"excited", "thrilled", "amazed", "entertained", "amused",
					"fun", "funny", "enjoyed",
				},
				"concerned-emotion": {
					"worried", "concerned", "anxious", "nervous",
					"scared", "frightened", "afraid", "fearful", "tense", "suspense",
				},
				"mixed-emotion": {"both", "mixed", "relieved"},
				"explanation":   {"because", "when", "during", "while", "garden", "chase", "escape", "danger"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 2, Tier: TierExcellent},
				{MinMatches: 1, Tier: TierGood},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength: 10,
			GradingNotes: "A personal reflection question: all emotions are valid. Grade " +
				"on whether genuine feelings are expressed and tied to the story.",
		},
		{
			ID:       "peter-story-part",
			Story:    StoryPeterRabbit,
			Prompt:   "Which part of the story made you feel that way?",
			Category: CategorySubjective,
			ExpectedConcepts: []string{
				"story-event", "character-reference", "emotional-connection",
			},
			ConceptKeywords: map[string][]string{
				"story-event": {
					"garden", "chase", "chased", "stuck", "trapped", "caught", "net",
					"gooseberry", "eating", "ate", "vegetables", "hiding", "hid", "shed",
					"watering can", "escape", "escaped", "medicine", "bed",
				},
				"character-reference":  {"peter", "mcgregor", "farmer", "sparrow", "bird", "mother"},
				"emotional-connection": {"felt", "feel", "made me", "scared", "excited", "worried", "happy", "part", "scene", "moment"},
			},
			Thresholds: []TierThreshold{
				{MinMatches: 3, Tier: TierExcellent},
				{MinMatches: 2, Tier: TierGood},
				{MinMatches: 1, Tier: TierPartial},
				{MinMatches: 0, Tier: TierNeedsImprovement},
			},
			MinAnswerLength: 10,
			GradingNotes: "Personal connections vary; grade on whether a specific scene " +
				"is named and linked to the feeling, not on which scene was chosen.",
		},
	}
}
