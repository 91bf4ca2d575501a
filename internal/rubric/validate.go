package rubric

import (
	"fmt"
	"strings"
)

// validateRubrics performs structural checks on a rubric set. Returns a
// combined error describing every problem found, or nil.
func validateRubrics(rubrics []*QuestionRubric) error {
	var errs []string

	idSet := make(map[string]bool, len(rubrics))
	for _, q := range rubrics {
		if q.ID == "" {
			errs = append(errs, "rubric with empty ID")
			continue
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true

		switch q.Category {
		case CategoryObjective, CategorySubjective, CategoryCreative:
		default:
			errs = append(errs, fmt.Sprintf("%s: invalid category %q", q.ID, q.Category))
		}

		if q.Story == "" {
			errs = append(errs, fmt.Sprintf("%s: empty story", q.ID))
		}
		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("%s: empty prompt", q.ID))
		}
		if q.MinAnswerLength < 1 {
			errs = append(errs, fmt.Sprintf("%s: min answer length must be >= 1", q.ID))
		}
		if q.RequiresCapitalization && q.Category != CategoryObjective {
			errs = append(errs, fmt.Sprintf("%s: capitalization rule only applies to objective questions", q.ID))
		}
		if q.Category == CategoryCreative && q.CanonicalAnswer != "" {
			errs = append(errs, fmt.Sprintf("%s: creative questions must not carry a canonical answer", q.ID))
		}

		// Every expected concept needs at least one surface form, and
		// every keyword set needs a declared concept.
		for _, c := range q.ExpectedConcepts {
			if len(q.ConceptKeywords[c]) == 0 {
				errs = append(errs, fmt.Sprintf("%s: concept %q has no keywords", q.ID, c))
			}
		}
		for c := range q.ConceptKeywords {
			if !containsString(q.ExpectedConcepts, c) {
				errs = append(errs, fmt.Sprintf("%s: keyword set for undeclared concept %q", q.ID, c))
			}
		}

		errs = append(errs, validateThresholds(q)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid rubric set:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateThresholds checks the threshold table is ordered descending,
// floors at zero matches, and never exceeds the concept count.
func validateThresholds(q *QuestionRubric) []string {
	var errs []string

	if len(q.Thresholds) == 0 {
		errs = append(errs, fmt.Sprintf("%s: no tier thresholds", q.ID))
		return errs
	}

	prev := -1
	for i, th := range q.Thresholds {
		if th.Tier.Rank() == 0 {
			errs = append(errs, fmt.Sprintf("%s: threshold %d uses non-classifier tier %q", q.ID, i, th.Tier))
		}
		if th.MinMatches > len(q.ExpectedConcepts) {
			errs = append(errs, fmt.Sprintf("%s: threshold %d requires %d matches but only %d concepts exist",
				q.ID, i, th.MinMatches, len(q.ExpectedConcepts)))
		}
		if prev >= 0 && th.MinMatches >= prev {
			errs = append(errs, fmt.Sprintf("%s: thresholds must be ordered by MinMatches descending", q.ID))
		}
		prev = th.MinMatches
	}

	if q.Thresholds[len(q.Thresholds)-1].MinMatches != 0 {
		errs = append(errs, fmt.Sprintf("%s: last threshold must floor at 0 matches", q.ID))
	}
	return errs
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
