package llm

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// ErrNoCredential is returned when no provider API key can be found in the
// environment. Callers degrade to static content.
var ErrNoCredential = errors.New("no LLM API key configured")

// Config selects and configures the text-generation backend.
type Config struct {
	// Provider is one of "gemini", "openai", "anthropic", "openrouter", "mock".
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call, retries included.
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // OpenAI-compatible endpoints
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig controls the retry decorator. MaxAttempts of 1 sends each
// request once.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig targets Gemini with a single attempt per request.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays PROTEINLAB_* variables on DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setString(&cfg.Provider, "PROTEINLAB_LLM_PROVIDER")

	setString(&cfg.Gemini.APIKey, "PROTEINLAB_GEMINI_API_KEY")
	setString(&cfg.Gemini.Model, "PROTEINLAB_GEMINI_MODEL")

	setString(&cfg.OpenAI.APIKey, "PROTEINLAB_OPENAI_API_KEY")
	setString(&cfg.OpenAI.Model, "PROTEINLAB_OPENAI_MODEL")
	setString(&cfg.OpenAI.BaseURL, "PROTEINLAB_OPENAI_BASE_URL")

	setString(&cfg.Anthropic.APIKey, "PROTEINLAB_ANTHROPIC_API_KEY")
	setString(&cfg.Anthropic.Model, "PROTEINLAB_ANTHROPIC_MODEL")

	setString(&cfg.OpenRouter.APIKey, "PROTEINLAB_OPENROUTER_API_KEY")
	setString(&cfg.OpenRouter.Model, "PROTEINLAB_OPENROUTER_MODEL")

	if v, err := strconv.Atoi(os.Getenv("PROTEINLAB_LLM_MAX_ATTEMPTS")); err == nil && v > 0 {
		cfg.Retry.MaxAttempts = v
	}
	if v, err := time.ParseDuration(os.Getenv("PROTEINLAB_LLM_TIMEOUT")); err == nil && v > 0 {
		cfg.Timeout = v
	}

	return cfg
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig looks for a well-known API key when no PROTEINLAB_*
// credential is set. API_KEY is treated as a Gemini key. The first key found
// wins, in the order API_KEY, GEMINI_API_KEY, OPENAI_API_KEY,
// ANTHROPIC_API_KEY, OPENROUTER_API_KEY.
func DiscoverConfig() (Config, bool) {
	cfg := ConfigFromEnv()

	for _, probe := range []struct {
		env      string
		provider string
		key      *string
	}{
		{"API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	} {
		if k := os.Getenv(probe.env); k != "" {
			cfg.Provider = probe.provider
			*probe.key = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "gemini":
		key = c.Gemini.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s provider: %w", c.Provider, ErrNoCredential)
	}
	return nil
}
