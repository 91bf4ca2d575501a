package llm

import "context"

// Purpose labels what an LLM request was for. It travels on the context
// and ends up on the request's event-log row.
type Purpose string

const (
	// PurposeGrading marks a standard answer-grading request.
	PurposeGrading Purpose = "grading"
	// PurposeGradingCreative marks grading of a no-wrong-answer question,
	// which runs at a higher temperature.
	PurposeGradingCreative Purpose = "grading-creative"
	// PurposeUnknown is reported when no label was attached.
	PurposeUnknown Purpose = "unknown"
)

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose attaches a purpose label to the context.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey, p)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
