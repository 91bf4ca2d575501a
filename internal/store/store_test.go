package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepo_AppendAndQueryEvaluations(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []EvaluationEventData{
		{RequestID: "r1", QuestionID: "goldilocks-title", Story: "goldilocks", Category: "objective",
			Modality: "text", AnswerText: "Goldilocks and the Three Bears", Tier: "excellent",
			IsCorrect: true, Source: "llm", LatencyMs: 120},
		{RequestID: "r2", QuestionID: "goldilocks-title", Story: "goldilocks", Category: "objective",
			Modality: "text", AnswerText: "a dragon", Tier: "incorrect",
			IsCorrect: false, Source: "fallback", LatencyMs: 2},
		{RequestID: "r3", QuestionID: "peter-author", Story: "peter-rabbit", Category: "objective",
			Modality: "voice", AnswerText: "Beatrix Potter", Tier: "excellent",
			IsCorrect: true, Source: "llm", LatencyMs: 340},
	}
	for _, e := range events {
		if err := repo.AppendEvaluation(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.RecentEvaluations(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d events, want 2", len(recent))
	}
	if recent[0].RequestID != "r3" {
		t.Errorf("newest first: got %q", recent[0].RequestID)
	}

	stats, err := repo.StatsByQuestion(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stat rows, want 2", len(stats))
	}
	for _, st := range stats {
		if st.QuestionID == "goldilocks-title" {
			if st.Total != 2 || st.Correct != 1 || st.FallbackCount != 1 {
				t.Errorf("goldilocks-title stats = %+v", st)
			}
		}
	}
}

func TestEventRepo_AppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Model:        "openai/gpt-4o-mini",
		Purpose:      "grading",
		InputTokens:  210,
		OutputTokens: 48,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[system]\ngrade this",
		ResponseBody: `{"feedback_type":"good"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	var n int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM llm_request_events").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("got %d rows, want 1", n)
	}
}

func TestOpen_Reopens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().AppendEvaluation(context.Background(), EvaluationEventData{
		RequestID: "r1", QuestionID: "q", Story: "s", Category: "objective",
		Modality: "text", AnswerText: "a", Tier: "good", IsCorrect: true, Source: "llm",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	recent, err := s2.EventRepo().RecentEvaluations(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("got %d events after reopen, want 1", len(recent))
	}
}
