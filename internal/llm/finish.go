package llm

import (
	"encoding/json"
	"net/http"
)

// Normalised stop reasons.
const (
	stopEnd       = "end"
	stopMaxTokens = "max_tokens"
)

// reply is a backend answer before validation.
type reply struct {
	content json.RawMessage
	usage   Usage
	model   string
	stop    string
}

// finish turns a backend reply into a Response. Structured output that hit
// MaxTokens is ErrMaxTokensExceeded, since a cut JSON document never
// validates. Everything else must match the request schema.
func finish(req Request, r reply) (*Response, error) {
	if req.Schema != nil && r.stop == stopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: r.content}
	}
	if err := validateResponse(req.Schema, r.content); err != nil {
		return nil, err
	}
	return &Response{
		Content:    r.content,
		Usage:      r.usage,
		Model:      r.model,
		StopReason: r.stop,
	}, nil
}

// statusError maps an SDK error carrying an HTTP status. Anything that is
// not a 429 counts as the backend being unavailable.
func statusError(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a backend model ID. Unknown
// names are passed through as IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
