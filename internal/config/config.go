package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server and logging settings. LLM credentials are read
// separately by the llm package.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// AllowedOrigins lists CORS origins. Empty means all origins.
	AllowedOrigins []string

	// RedisURL enables the shared quiz cache when set.
	RedisURL     string
	QuizCacheTTL time.Duration

	// AIRateLimit is the number of tutor and quiz requests one client IP
	// may make per minute.
	AIRateLimit int
}

// Load reads .env if present, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		RedisURL:       getEnv("REDIS_URL", ""),
		QuizCacheTTL:   time.Duration(getEnvInt("QUIZ_CACHE_TTL_MINUTES", 60)) * time.Minute,
		AIRateLimit:    getEnvInt("AI_RATE_LIMIT_PER_MINUTE", 20),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated list, returning nil for "".
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
