package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the text-generation subsystem.
// Generation is optional: with no provider configured the agent still
// delivers rule-formatted recommendations.
type Config struct {
	Enabled     bool
	LogCalls    bool
	TimeoutMs   int
	Temperature float64
	MaxTokens   int

	// Primary provider (Gemini REST API).
	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string

	// Fallback provider (local Ollama instance).
	OllamaEndpoint string
	OllamaModel    string
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled until a provider is configured.
func DefaultConfig() Config {
	return Config{
		Enabled:        false,
		LogCalls:       true,
		TimeoutMs:      8000,
		Temperature:    0.7,
		MaxTokens:      256,
		GeminiModel:    "gemini-pro",
		GeminiEndpoint: "https://generativelanguage.googleapis.com",
		OllamaEndpoint: "http://localhost:11434",
		OllamaModel:    "llama3.2",
	}
}

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset value. Setting a Gemini API key or an explicit
// DISHA_LLM_ENABLED=true turns generation on.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("DISHA_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DISHA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DISHA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DISHA_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("DISHA_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.GeminiEndpoint = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.OllamaEndpoint = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}

	return cfg
}
