package evaluate

import "storytutor/internal/rubric"

// Normalize turns a classifier result into the canonical Verdict. Both
// the LLM grader and the keyword fallback converge here, so the caller
// sees one response contract regardless of which classifier ran.
func Normalize(result ClassificationResult, r *rubric.QuestionRubric) Verdict {
	tier := result.Tier

	// Creative answers are never wrong and never trigger a reveal,
	// whatever either classifier produced.
	if r.Category == rubric.CategoryCreative && tier.Rank() < rubric.TierPartial.Rank() {
		tier = rubric.TierPartial
	}

	isCorrect := tierIsCorrect(tier, r.Category)

	showAnswer := false
	if r.Category != rubric.CategoryCreative && !isCorrect {
		showAnswer = true
	}

	v := Verdict{
		IsCorrect:       isCorrect,
		Message:         result.Rationale,
		Tier:            tier,
		ShowAnswer:      showAnswer,
		MisspelledWords: result.MisspelledWords,
	}
	if v.MisspelledWords == nil {
		v.MisspelledWords = []string{}
	}

	if showAnswer && r.CanonicalAnswer != "" {
		v.CorrectAnswer = r.CanonicalAnswer
	}

	return v
}

// tierIsCorrect applies the category-specific correctness rule.
// Objective questions demand excellent or good; subjective and creative
// questions accept partial as well, and creative tiers never fall below
// partial, so creative answers are always correct.
func tierIsCorrect(tier rubric.Tier, cat rubric.Category) bool {
	switch cat {
	case rubric.CategoryObjective:
		return tier == rubric.TierExcellent || tier == rubric.TierGood
	default:
		return tier == rubric.TierExcellent || tier == rubric.TierGood || tier == rubric.TierPartial
	}
}
