package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockCall records one Generate invocation: the request and the purpose
// label it carried, so tests can assert on both the grading prompt and
// the event-log attribution.
type MockCall struct {
	Purpose Purpose
	Request Request
}

// MockVerdict builds a scripted grading reply in the shape the verdict
// schema demands: tier, message, and empty concept and spelling lists.
func MockVerdict(tier, message string) MockResponse {
	content, _ := json.Marshal(map[string]any{
		"feedback_type":    tier,
		"message":          message,
		"matched_concepts": []string{},
		"misspelled_words": []string{},
	})
	return MockResponse{
		Content: content,
		Usage:   Usage{InputTokens: 200, OutputTokens: 40},
	}
}

// MockProvider is a scripted Provider for tests. Replies are consumed
// in FIFO order; once the script runs out, Generate reports the
// provider as unavailable, which is also how tests simulate an outage.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockResponse
	calls   []MockCall
}

// NewMockProvider creates a MockProvider with the given scripted replies.
func NewMockProvider(replies ...MockResponse) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Purpose: PurposeFrom(ctx), Request: req})

	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}

	return &Response{
		Content: reply.Content,
		Usage:   reply.Usage,
		Model:   "mock",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a scripted reply to the queue.
func (m *MockProvider) AddResponse(reply MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// Calls returns a copy of the recorded invocations.
func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
