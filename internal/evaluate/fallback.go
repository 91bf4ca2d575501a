package evaluate

import (
	"strings"

	"storytutor/internal/rubric"
)

// Fallback grades an answer with deterministic keyword matching. It is
// the availability backstop for the LLM grader: pure, network-free, and
// total over all valid inputs.
//
// Matching is substring-based, so "papa" inside "papaya" counts. That is
// a known limitation of the heuristic, kept because keyword lists are
// short story-specific words where collisions are rare in practice.
func Fallback(sub AnswerSubmission, r *rubric.QuestionRubric) ClassificationResult {
	answer := strings.ToLower(sub.RawText)

	var matched []string
	for _, concept := range r.ExpectedConcepts {
		for _, kw := range r.ConceptKeywords[concept] {
			if strings.Contains(answer, strings.ToLower(kw)) {
				matched = append(matched, concept)
				break
			}
		}
	}

	tier := fallbackTier(r, len(matched))

	return ClassificationResult{
		Tier:            tier,
		Rationale:       encouragementFor(tier, r, sub.RawText),
		MatchedConcepts: matched,
		MisspelledWords: []string{},
	}
}

func fallbackTier(r *rubric.QuestionRubric, matches int) rubric.Tier {
	if len(r.ExpectedConcepts) == 0 {
		// Pure free-response prompt. Opinions cannot be wrong.
		if r.Category == rubric.CategoryCreative {
			return rubric.TierPartial
		}
		return rubric.TierNeedsImprovement
	}

	tier := r.TierFor(matches)

	// Creative answers never grade below partial.
	if r.Category == rubric.CategoryCreative && tier.Rank() < rubric.TierPartial.Rank() {
		return rubric.TierPartial
	}
	return tier
}
