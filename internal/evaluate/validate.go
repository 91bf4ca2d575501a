package evaluate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"storytutor/internal/rubric"
)

// checkWellFormed rejects submissions missing required fields. The
// engine runs it before the rubric lookup, so a blank question id
// surfaces as a client error rather than a registry mismatch.
func checkWellFormed(sub AnswerSubmission) error {
	if sub.QuestionID == "" {
		return fmt.Errorf("%w: missing question id", ErrMalformedRequest)
	}
	switch sub.Modality {
	case ModalityText, ModalityVoice:
		return nil
	default:
		return fmt.Errorf("%w: unknown modality %q", ErrMalformedRequest, sub.Modality)
	}
}

// Validate runs the cheap synchronous pre-checks on a submission.
// It returns (nil, nil) when the answer should proceed to
// classification, an early Verdict when a pre-check fails, or
// ErrMalformedRequest when required fields are missing.
func Validate(sub AnswerSubmission, r *rubric.QuestionRubric) (*Verdict, error) {
	if err := checkWellFormed(sub); err != nil {
		return nil, err
	}

	answer := strings.TrimSpace(sub.RawText)

	if utf8.RuneCountInString(answer) < r.MinAnswerLength {
		return &Verdict{
			IsCorrect:       false,
			Message:         "That answer looks a little short. Try writing a bit more about what you remember from the story!",
			Tier:            rubric.TierGuidance,
			ShowAnswer:      false,
			MisspelledWords: []string{},
		}, nil
	}

	// Capitalization applies to objective questions only, so children
	// writing opinions freely are not penalized. Any answer that does
	// not open with an uppercase letter gets the correction, digits and
	// punctuation included.
	if r.RequiresCapitalization && r.Category == rubric.CategoryObjective {
		first, _ := utf8.DecodeRuneInString(answer)
		if !unicode.IsUpper(first) {
			return &Verdict{
				IsCorrect:       false,
				Message:         "Good try! Remember to start your answer with a capital letter.",
				Tier:            rubric.TierCorrection,
				ShowAnswer:      false,
				MisspelledWords: []string{},
			}, nil
		}
	}

	return nil, nil
}
