package llm

import (
	"context"
	"fmt"
)

// FallbackGenerator tries the primary provider first and falls back to the
// secondary on any failure. The secondary is tried exactly once; there is no
// further retry within a turn. This is a deliberate two-branch strategy, not
// a generic retry framework.
type FallbackGenerator struct {
	primary   Generator
	secondary Generator
}

// NewFallbackGenerator composes a primary and an optional secondary
// Generator. secondary may be nil.
func NewFallbackGenerator(primary, secondary Generator) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, secondary: secondary}
}

func (g *FallbackGenerator) Name() string { return "fallback" }

func (g *FallbackGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	resp, primaryErr := g.primary.Generate(ctx, req)
	if primaryErr == nil {
		return resp, nil
	}

	if g.secondary == nil {
		return nil, primaryErr
	}

	resp, secondaryErr := g.secondary.Generate(ctx, req)
	if secondaryErr == nil {
		return resp, nil
	}
	return nil, fmt.Errorf("%w: primary: %v; fallback: %v", ErrAllProvidersFailed, primaryErr, secondaryErr)
}
