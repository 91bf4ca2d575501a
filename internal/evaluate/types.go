package evaluate

import (
	"strings"

	"storytutor/internal/rubric"
)

// Modality records how an answer arrived.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityVoice Modality = "voice"
)

// AnswerSubmission is one grading request. It lives for the duration of
// a single evaluation and is never persisted.
type AnswerSubmission struct {
	QuestionID string
	RawText    string
	Modality   Modality
}

// NewSubmission builds an AnswerSubmission from the inbound answer,
// which may be a single string (voice transcript) or several discrete
// form fields. Multi-part answers are joined so the rest of the engine
// sees one shape.
func NewSubmission(questionID string, parts []string, modality Modality) AnswerSubmission {
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	return AnswerSubmission{
		QuestionID: questionID,
		RawText:    strings.Join(trimmed, ". "),
		Modality:   modality,
	}
}

// ClassificationResult is the uninterpreted output of either classifier.
type ClassificationResult struct {
	Tier            rubric.Tier
	Rationale       string
	MatchedConcepts []string
	MisspelledWords []string
}

// Verdict is the canonical grading result returned to the caller. The
// wire names follow the established client contract, so is_correct and
// tier travel as isCorrect and feedback_type.
type Verdict struct {
	IsCorrect       bool        `json:"isCorrect"`
	Message         string      `json:"message"`
	Tier            rubric.Tier `json:"feedback_type"`
	ShowAnswer      bool        `json:"show_answer"`
	CorrectAnswer   string      `json:"correct_answer,omitempty"`
	MisspelledWords []string    `json:"misspelled_words"`
}
