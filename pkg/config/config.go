package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultClaudeURL   = "https://api.claude.ai/call"
	DefaultOpenAIURL   = "https://api.openai.com/v4/completions"
	DefaultOpenAIModel = "text-davinci-003"
)

type Config struct {
	Port        string
	DatabaseURL string

	ClaudeURL    string
	ClaudeAPIKey string

	OpenAIURL    string
	OpenAIAPIKey string
	OpenAIModel  string

	// UpstreamTimeout bounds the whole fan-out to both providers.
	UpstreamTimeout time.Duration
	LogDebug        bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ClaudeURL:       getEnv("CLAUDE_API_URL", DefaultClaudeURL),
		ClaudeAPIKey:    os.Getenv("CLAUDE_API_KEY"),
		OpenAIURL:       getEnv("OPENAI_API_URL", DefaultOpenAIURL),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		LogDebug:        getEnvBool("LOG_DEBUG", false),
	}
	return cfg
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return errors.New("OPENAI_API_KEY is not set")
	}
	if c.UpstreamTimeout <= 0 {
		return errors.New("UPSTREAM_TIMEOUT must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
