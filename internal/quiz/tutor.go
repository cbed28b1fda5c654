package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/proteinlab/internal/llm"
	"github.com/rs/zerolog"
)

// Fixed tutor replies. The tutor never returns an error to its caller.
const (
	TutorNoCredential = "I need an API key to function as your tutor! Please check the configuration."
	TutorNoAnswer     = "I couldn't generate an answer at this time."
	TutorUnavailable  = "Sorry, I'm having trouble connecting to the biology database right now."
	TutorPlaceholder  = "Ask me anything about amino acids, translation, or protein structures!"
)

// Tutor answers free-form protein questions in at most three sentences.
type Tutor struct {
	provider llm.Provider
	config   Config
	log      zerolog.Logger
}

// NewTutor creates a Tutor. provider may be nil when no credential was
// found.
func NewTutor(provider llm.Provider, cfg Config, log zerolog.Logger) *Tutor {
	return &Tutor{provider: provider, config: cfg, log: log}
}

// Available reports whether a provider is configured.
func (t *Tutor) Available() bool {
	return t != nil && t.provider != nil
}

type tutorOutput struct {
	Answer string `json:"answer"`
}

// Ask returns the tutor's reply to question.
func (t *Tutor) Ask(ctx context.Context, question string) string {
	if !t.Available() {
		return TutorNoCredential
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return TutorNoAnswer
	}

	answer, err := t.ask(ctx, question)
	switch {
	case err != nil && ctx.Err() != nil:
		t.log.Debug().Err(err).Msg("tutor request abandoned")
		return TutorUnavailable
	case err != nil:
		t.log.Warn().Err(err).Str("error_kind", string(llm.Classify(err))).Msg("tutor request failed")
		return TutorUnavailable
	}
	if answer == "" {
		return TutorNoAnswer
	}
	return answer
}

func (t *Tutor) ask(ctx context.Context, question string) (string, error) {
	ctx = llm.DefaultPurpose(ctx, llm.PurposeTutor)
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	resp, err := t.provider.Generate(ctx, llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorPrompt(question)},
		},
		Schema:      TutorSchema,
		MaxTokens:   t.config.TutorMaxTokens,
		Temperature: t.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	var out tutorOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return strings.TrimSpace(out.Answer), nil
}
