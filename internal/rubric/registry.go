package rubric

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownQuestion is returned by Lookup for an unregistered question id.
// Under normal routing this indicates a caller/configuration mismatch, not
// user input.
var ErrUnknownQuestion = errors.New("unknown question")

// Registry is the read-only table of question rubrics, keyed by id.
type Registry struct {
	byID    map[string]*QuestionRubric
	byStory map[string][]*QuestionRubric
	order   []string
}

// NewRegistry builds and validates a registry from rubric sets.
func NewRegistry(sets ...[]*QuestionRubric) (*Registry, error) {
	var all []*QuestionRubric
	for _, set := range sets {
		all = append(all, set...)
	}
	if err := validateRubrics(all); err != nil {
		return nil, err
	}

	r := &Registry{
		byID:    make(map[string]*QuestionRubric, len(all)),
		byStory: make(map[string][]*QuestionRubric),
	}
	for _, q := range all {
		r.byID[q.ID] = q
		r.byStory[q.Story] = append(r.byStory[q.Story], q)
		r.order = append(r.order, q.ID)
	}
	return r, nil
}

// Lookup returns the rubric for a question id.
func (r *Registry) Lookup(id string) (*QuestionRubric, error) {
	q, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	return q, nil
}

// All returns every rubric in registration order.
func (r *Registry) All() []*QuestionRubric {
	out := make([]*QuestionRubric, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Story returns the rubrics for one story in registration order.
func (r *Registry) Story(story string) []*QuestionRubric {
	return r.byStory[story]
}

// Stories returns the registered story slugs in first-seen order.
func (r *Registry) Stories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, id := range r.order {
		s := r.byID[id].Story
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of registered rubrics.
func (r *Registry) Len() int { return len(r.byID) }

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the built-in registry covering both stories.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = NewRegistry(GoldilocksRubrics(), PeterRabbitRubrics())
	})
	return defaultReg, defaultErr
}
