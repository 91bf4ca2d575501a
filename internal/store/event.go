package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestEventData records one call to the language model.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EvaluationEventData records one graded answer.
type EvaluationEventData struct {
	RequestID  string
	QuestionID string
	Story      string
	Category   string
	Modality   string
	AnswerText string
	Tier       string
	IsCorrect  bool
	Source     string // "llm" or "fallback"
	LatencyMs  int64
}

// EvaluationStats aggregates grading outcomes for reporting.
type EvaluationStats struct {
	QuestionID    string
	Total         int
	Correct       int
	FallbackCount int
}

// EventRepo appends and queries grading events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendEvaluation(ctx context.Context, data EvaluationEventData) error

	// RecentEvaluations returns the latest evaluation events, newest
	// first, up to limit.
	RecentEvaluations(ctx context.Context, limit int) ([]EvaluationEventData, error)

	// StatsByQuestion aggregates evaluation outcomes per question.
	StatsByQuestion(ctx context.Context) ([]EvaluationStats, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events (
			created_at, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		data.Success,
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendEvaluation(ctx context.Context, data EvaluationEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO evaluation_events (
			created_at, request_id, question_id, story, category,
			modality, answer_text, tier, is_correct, source, latency_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.RequestID,
		data.QuestionID,
		data.Story,
		data.Category,
		data.Modality,
		data.AnswerText,
		data.Tier,
		data.IsCorrect,
		data.Source,
		data.LatencyMs,
	)
	if err != nil {
		return fmt.Errorf("insert evaluation event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentEvaluations(ctx context.Context, limit int) ([]EvaluationEventData, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT request_id, question_id, story, category, modality,
			answer_text, tier, is_correct, source, latency_ms
		FROM evaluation_events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var out []EvaluationEventData
	for rows.Next() {
		var e EvaluationEventData
		if err := rows.Scan(
			&e.RequestID, &e.QuestionID, &e.Story, &e.Category, &e.Modality,
			&e.AnswerText, &e.Tier, &e.IsCorrect, &e.Source, &e.LatencyMs,
		); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) StatsByQuestion(ctx context.Context) ([]EvaluationStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id,
			COUNT(*),
			SUM(CASE WHEN is_correct THEN 1 ELSE 0 END),
			SUM(CASE WHEN source = 'fallback' THEN 1 ELSE 0 END)
		FROM evaluation_events
		GROUP BY question_id
		ORDER BY question_id`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []EvaluationStats
	for rows.Next() {
		var s EvaluationStats
		if err := rows.Scan(&s.QuestionID, &s.Total, &s.Correct, &s.FallbackCount); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
