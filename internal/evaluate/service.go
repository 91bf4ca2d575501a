package evaluate

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"storytutor/internal/rubric"
	"storytutor/internal/store"
)

// Engine is the per-submission entry point. It runs the validator, the
// LLM grader with fallback on failure, and the normalizer, and always
// produces exactly one Verdict for a well-formed submission.
type Engine struct {
	registry *rubric.Registry
	grader   *Grader
	events   store.EventRepo
	log      *slog.Logger
}

// NewEngine creates an evaluation engine. grader may be nil, in which
// case every submission grades through the keyword fallback. events may
// be nil to disable event recording.
func NewEngine(registry *rubric.Registry, grader *Grader, events store.EventRepo, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		registry: registry,
		grader:   grader,
		events:   events,
		log:      log,
	}
}

// Evaluate grades one submission. Errors are limited to
// ErrMalformedRequest and rubric.ErrUnknownQuestion; classifier
// failures are absorbed by the fallback and never surface.
func (e *Engine) Evaluate(ctx context.Context, sub AnswerSubmission) (*Verdict, error) {
	start := time.Now()

	// Field checks come before the registry lookup so a blank question
	// id reads as a malformed request, not an unknown question.
	if err := checkWellFormed(sub); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	log := e.log.With("request_id", requestID, "question_id", sub.QuestionID)

	r, err := e.registry.Lookup(sub.QuestionID)
	if err != nil {
		return nil, err
	}

	if early, err := Validate(sub, r); err != nil {
		return nil, err
	} else if early != nil {
		log.Debug("validator short-circuit", "tier", early.Tier)
		e.record(ctx, requestID, sub, r, early, "validator", start)
		return early, nil
	}

	result, source := e.classify(ctx, log, sub, r)
	verdict := Normalize(result, r)

	log.Info("answer graded",
		"tier", verdict.Tier,
		"is_correct", verdict.IsCorrect,
		"source", source,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	e.record(ctx, requestID, sub, r, &verdict, source, start)

	return &verdict, nil
}

// classify runs the primary grader and falls back to keyword matching
// on any failure. The fallback is total, so this always returns a result.
func (e *Engine) classify(ctx context.Context, log *slog.Logger, sub AnswerSubmission, r *rubric.QuestionRubric) (ClassificationResult, string) {
	if e.grader == nil {
		return Fallback(sub, r), "fallback"
	}

	result, err := e.grader.Classify(ctx, sub, r)
	if err != nil {
		log.Warn("primary classifier failed, grading with keyword fallback", "error", err)
		return Fallback(sub, r), "fallback"
	}
	return result, "llm"
}

func (e *Engine) record(ctx context.Context, requestID string, sub AnswerSubmission, r *rubric.QuestionRubric, v *Verdict, source string, start time.Time) {
	if e.events == nil {
		return
	}
	err := e.events.AppendEvaluation(ctx, store.EvaluationEventData{
		RequestID:  requestID,
		QuestionID: r.ID,
		Story:      r.Story,
		Category:   string(r.Category),
		Modality:   string(sub.Modality),
		AnswerText: sub.RawText,
		Tier:       string(v.Tier),
		IsCorrect:  v.IsCorrect,
		Source:     source,
		LatencyMs:  time.Since(start).Milliseconds(),
	})
	if err != nil {
		e.log.Warn("failed to record evaluation event", "error", err)
	}
}
