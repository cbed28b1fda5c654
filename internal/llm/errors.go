package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit is a 429 from the backend. RetryAfter is zero when the
// backend did not say.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is output that is not JSON or does not match the
// request schema. Content is kept for the audit log.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return "invalid LLM response: " + e.Err.Error()
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers transport failures and 5xx replies.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return "LLM provider unavailable: " + e.Err.Error()
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is a reply cut off at Request.MaxTokens.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrorKind groups provider errors for retry decisions and logs.
type ErrorKind string

const (
	KindNone        ErrorKind = ""
	KindCanceled    ErrorKind = "canceled"
	KindRateLimit   ErrorKind = "rate_limit"
	KindInvalid     ErrorKind = "invalid_response"
	KindUnavailable ErrorKind = "unavailable"
	KindTruncated   ErrorKind = "truncated"
	KindOther       ErrorKind = "other"
)

// Classify maps err to its ErrorKind.
func Classify(err error) ErrorKind {
	var (
		rl      *ErrRateLimit
		invalid *ErrInvalidResponse
		down    *ErrProviderUnavailable
		cut     *ErrMaxTokensExceeded
	)
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.As(err, &cut):
		return KindTruncated
	case errors.As(err, &invalid):
		return KindInvalid
	case errors.As(err, &rl):
		return KindRateLimit
	case errors.As(err, &down):
		return KindUnavailable
	default:
		return KindOther
	}
}
