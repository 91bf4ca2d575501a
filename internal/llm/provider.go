package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external language-model service
// used to grade answers. Callers send a Request and receive structured JSON.
type Provider interface {
	// Generate sends a prompt and returns the model's reply. When the
	// request carries a Schema, the provider asks for JSON conforming to
	// it and validates the reply before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one grading call to the model.
type Request struct {
	// System sets the model's role and grading constraints.
	System string

	// Messages is the conversation. Grading is single-turn, so in
	// practice this holds one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the reply must conform to.
	Schema *Schema

	// MaxTokens bounds the reply length. Replies that hit the bound are
	// rejected as ErrMaxTokensExceeded rather than returned truncated.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero is deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "answer-verdict".
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the reply. With a Schema set it is the validated JSON
	// object; without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for the event log.
	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the configured one behind a routing gateway.
	Model string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
