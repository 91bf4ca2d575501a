package evaluate

import "storytutor/internal/llm"

// VerdictSchema defines the JSON structure the LLM grader must return.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Graded assessment of a child's answer to a reading-comprehension question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback_type": map[string]any{
				"type":        "string",
				"enum":        []any{"excellent", "good", "partial", "needs_improvement", "incorrect"},
				"description": "Grading tier for the answer",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Short, warm, encouraging feedback written for a young child",
			},
			"matched_concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Expected concepts the answer covered, by label",
			},
			"misspelled_words": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Words from the answer that are misspelled, empty if none",
			},
		},
		"required":             []any{"feedback_type", "message", "matched_concepts", "misspelled_words"},
		"additionalProperties": false,
	},
}
