package evaluate

import (
	"errors"
	"testing"

	"storytutor/internal/rubric"
)

func TestValidate_ProceedsOnGoodInput(t *testing.T) {
	q := titleRubric(t)
	v, err := Validate(textSubmission(q.ID, "Goldilocks and the Three Bears"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatalf("expected nil verdict, got: %+v", v)
	}
}

func TestValidate_TooShort(t *testing.T) {
	q := titleRubric(t)
	v, err := Validate(textSubmission(q.ID, "H"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil {
		t.Fatal("expected early verdict")
	}
	if v.Tier != rubric.TierGuidance {
		t.Errorf("tier = %q, want guidance", v.Tier)
	}
	if v.IsCorrect {
		t.Error("guidance verdict must not be correct")
	}
	if v.ShowAnswer {
		t.Error("guidance verdict must not reveal the answer")
	}
}

func TestValidate_CapitalizationObjective(t *testing.T) {
	q := titleRubric(t)
	v, err := Validate(textSubmission(q.ID, "goldilocks and the three bears"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil {
		t.Fatal("expected early verdict")
	}
	if v.Tier != rubric.TierCorrection {
		t.Errorf("tier = %q, want correction", v.Tier)
	}
}

func TestValidate_CapitalizationDigitLeading(t *testing.T) {
	q := titleRubric(t)
	v, err := Validate(textSubmission(q.ID, "3 bears and Goldilocks"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil {
		t.Fatal("expected early verdict for a digit-leading answer")
	}
	if v.Tier != rubric.TierCorrection {
		t.Errorf("tier = %q, want correction", v.Tier)
	}
}

func TestValidate_MinLengthCountsRunes(t *testing.T) {
	q := titleRubric(t) // MinAnswerLength 2

	// Two runes but three bytes; the length check must count runes.
	v, err := Validate(textSubmission(q.ID, "Éh"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil && v.Tier == rubric.TierGuidance {
		t.Fatalf("two-rune answer flagged as too short: %+v", v)
	}

	// One multi-byte rune stays below the minimum.
	v, err = Validate(textSubmission(q.ID, "É"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil || v.Tier != rubric.TierGuidance {
		t.Fatalf("single-rune answer should be too short, got: %+v", v)
	}
}

func TestValidate_CreativeExemptFromCapitalization(t *testing.T) {
	q := creativeRubric(t)
	v, err := Validate(textSubmission(q.ID, "i love baby bear because he is small"), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != nil {
		t.Fatalf("creative answers are exempt, got: %+v", v)
	}
}

func TestValidate_MalformedRequest(t *testing.T) {
	q := titleRubric(t)

	_, err := Validate(AnswerSubmission{RawText: "Goldilocks", Modality: ModalityText}, q)
	if !errors.Is(err, ErrMalformedRequest) {
		t.Fatalf("missing question id: expected ErrMalformedRequest, got: %v", err)
	}

	_, err = Validate(AnswerSubmission{QuestionID: q.ID, RawText: "Goldilocks", Modality: "telepathy"}, q)
	if !errors.Is(err, ErrMalformedRequest) {
		t.Fatalf("bad modality: expected ErrMalformedRequest, got: %v", err)
	}
}

func TestNewSubmission_JoinsParts(t *testing.T) {
	sub := NewSubmission("q", []string{"Papa Bear", "", "  Mama Bear  "}, ModalityText)
	if sub.RawText != "Papa Bear. Mama Bear" {
		t.Errorf("raw text = %q", sub.RawText)
	}
}

func TestNewSubmission_SingleVoiceString(t *testing.T) {
	sub := NewSubmission("q", []string{"the three bears went for a walk"}, ModalityVoice)
	if sub.RawText != "the three bears went for a walk" {
		t.Errorf("raw text = %q", sub.RawText)
	}
	if sub.Modality != ModalityVoice {
		t.Errorf("modality = %q", sub.Modality)
	}
}
