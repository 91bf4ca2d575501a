package evaluate

import (
	"testing"

	"storytutor/internal/rubric"
)

func TestNormalize_ObjectiveCorrect(t *testing.T) {
	q := titleRubric(t)
	v := Normalize(ClassificationResult{Tier: rubric.TierExcellent, Rationale: "Great!"}, q)

	if !v.IsCorrect {
		t.Error("excellent must be correct")
	}
	if v.ShowAnswer {
		t.Error("correct answers must not trigger a reveal")
	}
	if v.CorrectAnswer != "" {
		t.Errorf("correct_answer = %q, want absent", v.CorrectAnswer)
	}
}

func TestNormalize_ObjectivePartialIsIncorrect(t *testing.T) {
	q := titleRubric(t)
	v := Normalize(ClassificationResult{Tier: rubric.TierPartial, Rationale: "Almost"}, q)

	if v.IsCorrect {
		t.Error("partial is not correct for objective questions")
	}
	if !v.ShowAnswer {
		t.Error("incorrect objective answers reveal the correct answer")
	}
	if v.CorrectAnswer != q.CanonicalAnswer {
		t.Errorf("correct_answer = %q, want %q", v.CorrectAnswer, q.CanonicalAnswer)
	}
}

// For objective questions show_answer is always the negation of is_correct.
func TestNormalize_ObjectiveVisibilityInvariant(t *testing.T) {
	q := titleRubric(t)
	tiers := []rubric.Tier{
		rubric.TierExcellent, rubric.TierGood, rubric.TierPartial,
		rubric.TierNeedsImprovement, rubric.TierIncorrect,
	}
	for _, tier := range tiers {
		v := Normalize(ClassificationResult{Tier: tier}, q)
		if v.ShowAnswer == v.IsCorrect {
			t.Errorf("tier %q: show_answer %t with is_correct %t", tier, v.ShowAnswer, v.IsCorrect)
		}
	}
}

func TestNormalize_SubjectivePartialIsCorrect(t *testing.T) {
	reg, _ := rubric.Default()
	q, err := reg.Lookup("peter-personality")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	v := Normalize(ClassificationResult{Tier: rubric.TierPartial}, q)
	if !v.IsCorrect {
		t.Error("partial is correct for subjective questions")
	}
	if v.ShowAnswer {
		t.Error("correct subjective answers must not reveal")
	}
}

// Creative verdicts are always correct and never reveal, whatever tier
// either classifier produced.
func TestNormalize_CreativeInvariant(t *testing.T) {
	q := creativeRubric(t)
	tiers := []rubric.Tier{
		rubric.TierExcellent, rubric.TierGood, rubric.TierPartial,
		rubric.TierNeedsImprovement, rubric.TierIncorrect,
	}
	for _, tier := range tiers {
		v := Normalize(ClassificationResult{Tier: tier}, q)
		if !v.IsCorrect {
			t.Errorf("tier %q: creative verdict must be correct", tier)
		}
		if v.ShowAnswer {
			t.Errorf("tier %q: creative verdict must not reveal", tier)
		}
		if v.CorrectAnswer != "" {
			t.Errorf("tier %q: creative verdict carries correct_answer %q", tier, v.CorrectAnswer)
		}
		if v.Tier.Rank() < rubric.TierPartial.Rank() {
			t.Errorf("tier %q normalized to %q, below the creative floor", tier, v.Tier)
		}
	}
}

func TestNormalize_NoCanonicalAnswerOmitsField(t *testing.T) {
	q := &rubric.QuestionRubric{
		ID:       "no-canon",
		Story:    "test",
		Prompt:   "A question without a reference answer.",
		Category: rubric.CategoryObjective,
	}
	v := Normalize(ClassificationResult{Tier: rubric.TierIncorrect}, q)
	if !v.ShowAnswer {
		t.Error("incorrect objective verdict should reveal")
	}
	if v.CorrectAnswer != "" {
		t.Errorf("correct_answer = %q, want empty when rubric has none", v.CorrectAnswer)
	}
}

func TestNormalize_MisspelledWordsNeverNil(t *testing.T) {
	q := titleRubric(t)
	v := Normalize(ClassificationResult{Tier: rubric.TierGood}, q)
	if v.MisspelledWords == nil {
		t.Error("misspelled words must serialize as an empty list, not null")
	}
}
