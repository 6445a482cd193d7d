package repository

import (
	"context"
	"errors"

	"github.com/margdarshak/disha/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// TranscriptRepo persists conversation turns for operator review.
// Implementations must be safe for concurrent use.
type TranscriptRepo interface {
	Append(ctx context.Context, turn *domain.TranscriptTurn) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.TranscriptTurn, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}
