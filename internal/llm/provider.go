// Package llm is the text-generation layer behind the quiz and the tutor.
// Backends (Gemini, OpenAI, OpenRouter, Anthropic and a mock) share one
// Provider interface and are wrapped with retry and audit logging.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one reply per request.
type Provider interface {
	// Generate sends req and returns the reply. When req.Schema is set the
	// backend's structured output mode is used and Content is JSON that
	// has been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the backend model identifier, e.g. "gemini-2.5-flash".
	ModelID() string

	// Name is the backend, e.g. "gemini".
	Name() string
}

// Request is a single prompt.
type Request struct {
	System string

	// Messages is the conversation. Quiz and tutor requests are single-turn
	// and carry one user message.
	Messages []Message

	// Schema, when set, asks for JSON matching it. A nil Schema returns the
	// raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in 0..1. Zero leaves the backend default.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is kebab-case, e.g. "protein-quiz". OpenAI uses it as the schema
	// name and validation caches compiled schemas by it.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a backend reply.
type Response struct {
	// Content is the validated JSON object for schema requests, otherwise
	// the raw text.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is "end" or "max_tokens".
	StopReason string
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
