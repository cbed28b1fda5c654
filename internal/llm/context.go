package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purposes recorded with each request.
const (
	PurposeQuiz    = "quiz"
	PurposeTutor   = "tutor"
	PurposePreview = "preview"
)

// WithPurpose tags ctx with what the request is for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// DefaultPurpose tags ctx with purpose unless it already carries a tag.
func DefaultPurpose(ctx context.Context, purpose string) context.Context {
	if _, ok := ctx.Value(purposeKey).(string); ok {
		return ctx
	}
	return WithPurpose(ctx, purpose)
}
