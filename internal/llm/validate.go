package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache holds compiled schemas by name. Grading schemas are
// static per process, so entries never invalidate.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateResponse checks a reply against the grading schema. A nil
// schema validates everything; any failure comes back as
// *ErrInvalidResponse carrying the offending reply.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	compiled, err := schema.compiled()
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("reply is not JSON: %w", err),
		}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("reply violates schema %q: %w", schema.Name, err),
		}
	}

	return nil
}

// compiled returns the compiled form of the schema, compiling and
// caching it on first use.
func (s *Schema) compiled() (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(s.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a parsed JSON value rather than a Go map with
	// arbitrary concrete types, so the definition round-trips through
	// encoding/json first.
	defBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", s.Name, err)
	}
	var doc any
	if err := json.Unmarshal(defBytes, &doc); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", s.Name, err)
	}

	url := fmt.Sprintf("schema://%s.json", s.Name)
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", s.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", s.Name, err)
	}

	schemaCache.Store(s.Name, compiled)
	return compiled, nil
}
