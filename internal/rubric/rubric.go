package rubric

// Category describes how a question is graded.
type Category string

const (
	// CategoryObjective questions have one correct answer (title, author).
	CategoryObjective Category = "objective"
	// CategorySubjective questions are graded but flexible (personality traits).
	CategorySubjective Category = "subjective"
	// CategoryCreative questions have no wrong answer (favourite character).
	CategoryCreative Category = "creative"
)

// Tier is a grading bucket. Classifier tiers are ordered
// excellent > good > partial > needs_improvement > incorrect;
// guidance, correction and error are produced outside classification.
type Tier string

const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierPartial          Tier = "partial"
	TierNeedsImprovement Tier = "needs_improvement"
	TierIncorrect        Tier = "incorrect"

	// TierGuidance flags an answer rejected before classification (too short).
	TierGuidance Tier = "guidance"
	// TierCorrection flags a mechanical writing issue (missing capital letter).
	TierCorrection Tier = "correction"
	// TierError is reserved for terminal grading failures. The engine never
	// emits it; it stays in the vocabulary for response-contract compatibility.
	TierError Tier = "error"
)

// Rank orders classifier tiers for comparison. Higher is better.
// Non-classifier tiers rank below every classifier tier.
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 5
	case TierGood:
		return 4
	case TierPartial:
		return 3
	case TierNeedsImprovement:
		return 2
	case TierIncorrect:
		return 1
	default:
		return 0
	}
}

// TierThreshold maps a matched-concept count to a tier. Thresholds are
// evaluated from highest MinMatches down; the first threshold whose
// MinMatches is <= the matched count wins.
type TierThreshold struct {
	MinMatches int
	Tier       Tier
}

// QuestionRubric is the static grading specification for one question.
// Rubrics are built once at startup and never mutated, so concurrent
// reads need no locking.
type QuestionRubric struct {
	// ID is the question slug, e.g. "goldilocks-title".
	ID string

	// Story is the story slug the question belongs to.
	Story string

	// Prompt is the question as shown to the child. Embedded in the
	// primary classifier's grading instruction.
	Prompt string

	Category Category

	// CanonicalAnswer is the reference answer revealed when the visibility
	// policy allows it. Empty for questions with no reference answer.
	CanonicalAnswer string

	// ExpectedConcepts lists the concept labels a complete answer covers,
	// in display order.
	ExpectedConcepts []string

	// ConceptKeywords maps each expected concept to the surface forms that
	// count as a mention. Matching is lowercase substring.
	ConceptKeywords map[string][]string

	// Thresholds map matched-concept counts to tiers, ordered by
	// MinMatches descending. The last entry must have MinMatches 0.
	Thresholds []TierThreshold

	// MinAnswerLength is the minimum trimmed answer length; shorter
	// answers short-circuit to a guidance verdict.
	MinAnswerLength int

	// RequiresCapitalization enables the leading-capital check. Only
	// honoured for objective questions.
	RequiresCapitalization bool

	// GradingNotes is extra instruction text for the primary classifier,
	// e.g. accepted historical attributions for the author question.
	GradingNotes string
}

// TierFor resolves the fallback tier for a matched-concept count.
func (q *QuestionRubric) TierFor(matches int) Tier {
	for _, th := range q.Thresholds {
		if th.MinMatches <= matches {
			return th.Tier
		}
	}
	// Validation guarantees a zero-floor threshold; this is a safety net.
	if q.Category == CategoryCreative {
		return TierPartial
	}
	return TierNeedsImprovement
}
