package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/proteinlab/internal/store"
	"github.com/rs/zerolog"
)

// NewProvider builds the configured provider and wraps it with event
// logging and, when more than one attempt is allowed, retries.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log zerolog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller -> retry -> logging -> base
	p := WithLogging(base, eventRepo, log)
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}

// NewProviderFromEnv reads the credential once from the environment. It
// returns ErrNoCredential (wrapped) when no key is set so callers can fall
// back to static content.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log zerolog.Logger) (Provider, Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, cfg, err
		}
		cfg = discovered
	}

	p, err := NewProvider(ctx, cfg, eventRepo, log)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
