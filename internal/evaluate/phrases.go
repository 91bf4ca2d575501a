package evaluate

import (
	"fmt"
	"hash/fnv"
	"strings"

	"storytutor/internal/rubric"
)

// Canned encouragement per tier, used by the fallback grader so a
// degraded response still reads like feedback written for a child.
var tierPhrases = map[rubric.Tier][]string{
	rubric.TierExcellent: {
		"Excellent! You remembered the story really well!",
		"Wonderful answer! You got all the important parts!",
		"Amazing work! That's exactly right!",
	},
	rubric.TierGood: {
		"Great job! You got most of it!",
		"Nice work! You're really close!",
		"Well done! You remembered a lot of the story!",
	},
	rubric.TierPartial: {
		"Good try! You got part of it. Can you remember anything else from the story?",
		"You're on the right track! Think about what else happened.",
		"That's a start! There's a bit more to the answer.",
	},
	rubric.TierNeedsImprovement: {
		"Good effort! Let's look back at the story together.",
		"Not quite, but keep trying! The story has the answer.",
		"That's a tricky one! Have another look at the story.",
	},
	rubric.TierIncorrect: {
		"Not quite! Let's check the story again.",
		"Good try, but that's not it. The answer is in the story!",
		"Hmm, that doesn't match the story. Let's see the right answer.",
	},
}

// Creative answers get affirmation rather than grading language.
var creativePhrases = []string{
	"What a great choice! Thanks for sharing your thoughts!",
	"I love your answer! There's no wrong choice here.",
	"That's a wonderful thing to say about the story!",
}

// encouragementFor picks a canned phrase for the tier. Selection hashes
// the answer text so repeated grading of the same answer is stable while
// different answers still see variety.
func encouragementFor(tier rubric.Tier, r *rubric.QuestionRubric, answer string) string {
	if r.Category == rubric.CategoryCreative {
		return pickPhrase(creativePhrases, answer)
	}

	phrases, ok := tierPhrases[tier]
	if !ok || len(phrases) == 0 {
		return "Thanks for your answer!"
	}

	msg := pickPhrase(phrases, answer)
	if tier == rubric.TierPartial || tier.Rank() <= rubric.TierNeedsImprovement.Rank() {
		if hint := conceptHint(r); hint != "" {
			msg = fmt.Sprintf("%s %s", msg, hint)
		}
	}
	return msg
}

// conceptHint nudges the child toward what a fuller answer mentions.
func conceptHint(r *rubric.QuestionRubric) string {
	if len(r.ExpectedConcepts) == 0 {
		return ""
	}
	labels := make([]string, 0, len(r.ExpectedConcepts))
	for _, c := range r.ExpectedConcepts {
		labels = append(labels, strings.ReplaceAll(c, "-", " "))
	}
	if len(labels) > 3 {
		labels = labels[:3]
	}
	return fmt.Sprintf("Think about: %s.", strings.Join(labels, ", "))
}

func pickPhrase(phrases []string, answer string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(answer))))
	return phrases[int(h.Sum32())%len(phrases)]
}
