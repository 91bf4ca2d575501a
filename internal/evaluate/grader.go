package evaluate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"
	"time"

	"storytutor/internal/llm"
	"storytutor/internal/rubric"
)

// GraderConfig holds configuration for the LLM grader.
type GraderConfig struct {
	MaxTokens           int
	Temperature         float64
	CreativeTemperature float64
	Timeout             time.Duration
}

// DefaultGraderConfig returns sensible defaults. The timeout bounds the
// interactive wait; past it the caller falls back to keyword grading.
func DefaultGraderConfig() GraderConfig {
	return GraderConfig{
		MaxTokens:           384,
		Temperature:         0.3,
		CreativeTemperature: 0.7,
		Timeout:             15 * time.Second,
	}
}

// Grader asks the LLM to grade an answer against a question rubric.
type Grader struct {
	provider llm.Provider
	cfg      GraderConfig
}

// NewGrader creates an LLM-backed grader.
func NewGrader(provider llm.Provider, cfg GraderConfig) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

// Classify grades one submission. It makes at most one attempt and
// never blocks past the configured timeout. Failures come back as
// ErrClassifierUnavailable or ErrClassifierMalformed so the caller can
// fall back.
func (g *Grader) Classify(ctx context.Context, sub AnswerSubmission, r *rubric.QuestionRubric) (ClassificationResult, error) {
	purpose := llm.PurposeGrading
	temp := g.cfg.Temperature
	if r.Category == rubric.CategoryCreative {
		purpose = llm.PurposeGradingCreative
		temp = g.cfg.CreativeTemperature
	}
	ctx = llm.WithPurpose(ctx, purpose)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	userMsg, err := buildGradingMessage(sub, r)
	if err != nil {
		return ClassificationResult{}, fmt.Errorf("build grading prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      VerdictSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: temp,
	})
	if err != nil {
		return ClassificationResult{}, mapClassifierError(err)
	}

	return parseVerdictReply(resp.Content, r)
}

// parseVerdictReply decodes the model's JSON into a ClassificationResult.
// Historical clients of this grading contract drifted on field names, so
// known aliases are accepted: "tier" for "feedback_type", and "result"
// or "explanation" for "message". The model's own correctness flags are
// discarded; the normalizer re-derives them from tier and category.
func parseVerdictReply(raw json.RawMessage, r *rubric.QuestionRubric) (ClassificationResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ClassificationResult{}, fmt.Errorf("%w: %v", ErrClassifierMalformed, err)
	}

	tierStr, ok := stringField(fields, "feedback_type", "tier")
	if !ok {
		return ClassificationResult{}, fmt.Errorf("%w: missing feedback_type", ErrClassifierMalformed)
	}

	tier := rubric.Tier(tierStr)
	if tier.Rank() == 0 {
		return ClassificationResult{}, fmt.Errorf("%w: unknown tier %q", ErrClassifierMalformed, tierStr)
	}

	message, ok := stringField(fields, "message", "result", "explanation")
	if !ok || message == "" {
		message = encouragementFor(tier, r, "")
	}

	result := ClassificationResult{
		Tier:            tier,
		Rationale:       message,
		MatchedConcepts: stringListField(fields, "matched_concepts"),
		MisspelledWords: stringListField(fields, "misspelled_words"),
	}

	// The prompt forbids grading creative answers below partial, but the
	// floor is enforced here too.
	if r.Category == rubric.CategoryCreative && result.Tier.Rank() < rubric.TierPartial.Rank() {
		result.Tier = rubric.TierPartial
	}

	return result, nil
}

func stringField(fields map[string]json.RawMessage, names ...string) (string, bool) {
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
	}
	return "", false
}

func stringListField(fields map[string]json.RawMessage, name string) []string {
	out := []string{}
	raw, ok := fields[name]
	if !ok {
		return out
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return out
	}
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func mapClassifierError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	var invResp *llm.ErrInvalidResponse
	if errors.As(err, &invResp) {
		return fmt.Errorf("%w: %v", ErrClassifierMalformed, err)
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return fmt.Errorf("%w: %v", ErrClassifierMalformed, err)
	}

	// Rate limits, transport failures, and anything else mean the
	// classifier is effectively unreachable right now.
	return fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
}

const gradingSystemPrompt = `You are a kind, patient reading tutor for children aged 5 to 8. You grade short answers to comprehension questions about a story the child has just read.

Instructions:
- Grade generously. Spelling and grammar mistakes do not lower the tier unless the question asks about writing mechanics.
- feedback_type must be one of: excellent, good, partial, needs_improvement, incorrect.
- The message must be 1-2 short sentences, warm and encouraging, written directly to the child.
- List any clearly misspelled words from the answer in misspelled_words. Return an empty list if there are none.
- List the expected concepts the answer actually covered in matched_concepts, using the concept labels given.`

var gradingUserTemplate = template.Must(template.New("grading").Parse(`Question: {{.Prompt}}
Category: {{.Category}}
{{- if .CanonicalAnswer}}
Reference answer: {{.CanonicalAnswer}}
{{- end}}
{{- if .ExpectedConcepts}}
Expected concepts: {{range $i, $c := .ExpectedConcepts}}{{if $i}}, {{end}}{{$c}}{{end}}
{{- end}}
{{- if .GradingNotes}}
Grading notes: {{.GradingNotes}}
{{- end}}
{{- if .Creative}}
This is a personal-opinion question. There is no wrong answer: feedback_type must never be below partial, and the message must celebrate the child's idea.
{{- end}}

Child's answer: {{.Answer}}`))

type gradingPromptData struct {
	Prompt           string
	Category         rubric.Category
	CanonicalAnswer  string
	ExpectedConcepts []string
	GradingNotes     string
	Creative         bool
	Answer           string
}

func buildGradingMessage(sub AnswerSubmission, r *rubric.QuestionRubric) (string, error) {
	var buf bytes.Buffer
	err := gradingUserTemplate.Execute(&buf, gradingPromptData{
		Prompt:           r.Prompt,
		Category:         r.Category,
		CanonicalAnswer:  r.CanonicalAnswer,
		ExpectedConcepts: r.ExpectedConcepts,
		GradingNotes:     r.GradingNotes,
		Creative:         r.Category == rubric.CategoryCreative,
		Answer:           sub.RawText,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
