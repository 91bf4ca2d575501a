package rubric

import (
	"errors"
	"strings"
	"testing"
)

func TestNewRegistry_LookupAndOrder(t *testing.T) {
	reg, err := NewRegistry([]*QuestionRubric{thresholdRubric(CategoryObjective)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, err := reg.Lookup("test-q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "test-q" {
		t.Errorf("got ID %q", q.ID)
	}

	if _, err := reg.Lookup("nope"); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got: %v", err)
	}
}

func TestNewRegistry_DuplicateID(t *testing.T) {
	_, err := NewRegistry([]*QuestionRubric{
		thresholdRubric(CategoryObjective),
		thresholdRubric(CategoryObjective),
	})
	if err == nil {
		t.Fatal("expected error for duplicate IDs")
	}
	if !strings.Contains(err.Error(), "duplicate question ID") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestNewRegistry_CreativeWithCanonicalAnswer(t *testing.T) {
	q := thresholdRubric(CategoryCreative)
	q.CanonicalAnswer = "Baby Bear"
	if _, err := NewRegistry([]*QuestionRubric{q}); err == nil {
		t.Fatal("expected error for creative rubric with canonical answer")
	}
}

func TestNewRegistry_ThresholdAboveConceptCount(t *testing.T) {
	q := thresholdRubric(CategoryObjective)
	q.Thresholds = []TierThreshold{
		{MinMatches: 7, Tier: TierExcellent},
		{MinMatches: 0, Tier: TierIncorrect},
	}
	if _, err := NewRegistry([]*QuestionRubric{q}); err == nil {
		t.Fatal("expected error for threshold above concept count")
	}
}

func TestNewRegistry_MissingZeroFloor(t *testing.T) {
	q := thresholdRubric(CategoryObjective)
	q.Thresholds = []TierThreshold{
		{MinMatches: 2, Tier: TierExcellent},
		{MinMatches: 1, Tier: TierPartial},
	}
	if _, err := NewRegistry([]*QuestionRubric{q}); err == nil {
		t.Fatal("expected error for missing zero-floor threshold")
	}
}

func TestDefault_BuildsBothStories(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("default registry failed validation: %v", err)
	}

	stories := reg.Stories()
	if len(stories) != 2 {
		t.Fatalf("got %d stories, want 2: %v", len(stories), stories)
	}
	if len(reg.Story(StoryGoldilocks)) == 0 {
		t.Error("no goldilocks rubrics")
	}
	if len(reg.Story(StoryPeterRabbit)) == 0 {
		t.Error("no peter rabbit rubrics")
	}
	if reg.Len() != len(reg.All()) {
		t.Errorf("Len %d != All %d", reg.Len(), len(reg.All()))
	}
}

func TestDefault_EveryRubricResolvesZeroMatches(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("default registry failed validation: %v", err)
	}
	for _, q := range reg.All() {
		tier := q.TierFor(0)
		if tier.Rank() == 0 {
			t.Errorf("%s: TierFor(0) returned non-classifier tier %q", q.ID, tier)
		}
	}
}
