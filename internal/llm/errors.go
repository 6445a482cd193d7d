package llm

import "errors"

var (
	// ErrUnavailable indicates the provider's endpoint is unreachable.
	ErrUnavailable = errors.New("text generation provider unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("text generation request timed out")

	// ErrEmptyResponse indicates the provider answered without usable text.
	ErrEmptyResponse = errors.New("empty text generation response")

	// ErrRetryExhausted indicates all attempts against a provider failed.
	ErrRetryExhausted = errors.New("text generation attempts exhausted")

	// ErrAllProvidersFailed indicates both the primary and the fallback
	// provider failed within one turn.
	ErrAllProvidersFailed = errors.New("all text generation providers failed")
)
