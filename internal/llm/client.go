package llm

import "context"

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses the configured default
	MaxTokens    *int     // nil uses the configured default
}

// GenerateResponse holds the result of one generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	Provider  string
	LatencyMs int64
}

// Generator produces fluent text from a prompt. Implementations enforce the
// configured per-call timeout and report every call to their Observer.
type Generator interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Name identifies the provider for logging.
	Name() string
}
