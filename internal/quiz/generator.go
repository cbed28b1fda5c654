package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/proteinlab/internal/llm"
)

// Generator produces a question set for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string, d Difficulty) ([]Question, error)
}

// LLMGenerator implements Generator using an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.Count <= 0 {
		cfg.Count = 3
	}
	return &LLMGenerator{provider: provider, config: cfg}
}

type quizOutput struct {
	Questions []Question `json:"questions"`
}

// Generate asks the provider for a question set and runs the validator
// chain over it.
func (g *LLMGenerator) Generate(ctx context.Context, topic string, d Difficulty) ([]Question, error) {
	ctx = llm.DefaultPurpose(ctx, llm.PurposeQuiz)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizPrompt(topic, d, g.config.Count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	return g.config.Check(out.Questions)
}
