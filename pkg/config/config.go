package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Groq (OpenAI-compatible) completion provider.
	GroqAPIKey  string
	GroqBaseURL string
	// GroqModels is a priority list: the first model is tried first,
	// the rest are fallbacks with independent availability.
	GroqModels      []string
	GroqMaxTokens   int
	RewriteAttempts int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:     getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModels:      splitList(getEnv("GROQ_MODELS", "llama-3.3-70b-versatile,llama-3.1-8b-instant")),
		GroqMaxTokens:   getEnvInt("GROQ_MAX_TOKENS", 2200),
		RewriteAttempts: getEnvInt("REWRITE_MAX_ATTEMPTS", 3),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
