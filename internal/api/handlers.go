package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"storytutor/internal/evaluate"
	"storytutor/internal/rubric"
)

// checkRequest is the inbound grading request. The answer field accepts
// both a single string and a list of strings; see AnswerField.
type checkRequest struct {
	QuestionID string      `json:"question_id"`
	Answer     AnswerField `json:"answer"`
	Modality   string      `json:"modality,omitempty"`
}

// AnswerField decodes an answer that arrives either as one string (a
// voice transcript) or as a list of strings (separate form fields).
type AnswerField []string

func (a *AnswerField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = []string{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.New("answer must be a string or a list of strings")
	}
	*a = list
	return nil
}

type storySummary struct {
	Slug          string `json:"slug"`
	QuestionCount int    `json:"question_count"`
}

type questionSummary struct {
	ID       string          `json:"id"`
	Prompt   string          `json:"prompt"`
	Category rubric.Category `json:"category"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListStories(w http.ResponseWriter, r *http.Request) {
	stories := s.registry.Stories()
	out := make([]storySummary, 0, len(stories))
	for _, slug := range stories {
		out = append(out, storySummary{
			Slug:          slug,
			QuestionCount: len(s.registry.Story(slug)),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "story")
	rubrics := s.registry.Story(slug)
	if len(rubrics) == 0 {
		http.Error(w, "unknown story", http.StatusNotFound)
		return
	}

	out := make([]questionSummary, 0, len(rubrics))
	for _, q := range rubrics {
		out = append(out, questionSummary{
			ID:       q.ID,
			Prompt:   q.Prompt,
			Category: q.Category,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.check(w, r, req)
}

// handleCheckQuestion grades against the question named in the path,
// ignoring any question_id in the body.
func (s *Server) handleCheckQuestion(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.QuestionID = strings.TrimSpace(chi.URLParam(r, "questionID"))
	s.check(w, r, req)
}

func (s *Server) check(w http.ResponseWriter, r *http.Request, req checkRequest) {
	modality := evaluate.ModalityText
	if req.Modality != "" {
		modality = evaluate.Modality(req.Modality)
	}

	sub := evaluate.NewSubmission(req.QuestionID, req.Answer, modality)

	verdict, err := s.engine.Evaluate(r.Context(), sub)
	switch {
	case errors.Is(err, evaluate.ErrMalformedRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, rubric.ErrUnknownQuestion):
		// A question id the registry doesn't know is a deployment
		// mismatch, not a user mistake.
		s.log.Error("grading request for unregistered question", "question_id", req.QuestionID)
		http.Error(w, "unknown question", http.StatusInternalServerError)
		return
	case err != nil:
		s.log.Error("evaluation failed", "question_id", req.QuestionID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, verdict)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
