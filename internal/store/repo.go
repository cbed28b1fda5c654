package store

import (
	"context"
	"time"
)

// QueryOpts filters and pages event queries. Results are newest first.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact match when set
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LLMRequestEventData is what gets recorded for one text-generation call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLMRequestEventData row.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates calls per purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates tokens per model for cost estimates.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// QuizResultData records a finished quiz.
type QuizResultData struct {
	SessionID  string
	Topic      string
	Difficulty string
	Score      int
	Total      int
	Source     string // "ai" or "fallback"
}

// QuizResult is a stored QuizResultData row.
type QuizResult struct {
	ID        int
	Timestamp time.Time
	QuizResultData
}

// EventRepo appends and reads the audit log.
type EventRepo interface {
	// AppendLLMRequest records a text-generation call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizResult records a finished quiz.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns nil, nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResult, error)
}

// NopEventRepo discards writes and reads nothing. It stands in when the
// database cannot be opened.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error { return nil }
func (NopEventRepo) AppendQuizResult(context.Context, QuizResultData) error      { return nil }
func (NopEventRepo) QueryLLMEvents(context.Context, QueryOpts) ([]LLMEvent, error) {
	return nil, nil
}
func (NopEventRepo) GetLLMEvent(context.Context, int) (*LLMEvent, error) { return nil, nil }
func (NopEventRepo) LLMUsageByPurpose(context.Context) ([]PurposeUsage, error) {
	return nil, nil
}
func (NopEventRepo) LLMUsageByModel(context.Context) ([]ModelUsage, error) { return nil, nil }
func (NopEventRepo) QueryQuizResults(context.Context, QueryOpts) ([]QuizResult, error) {
	return nil, nil
}
