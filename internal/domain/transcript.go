package domain

import "time"

// TranscriptRole identifies who produced a transcript turn.
type TranscriptRole string

const (
	RoleUser      TranscriptRole = "user"
	RoleAssistant TranscriptRole = "assistant"
)

// TranscriptTurn is one persisted turn of a conversation, kept for operator
// review. Persistence is best-effort and never blocks a reply.
type TranscriptTurn struct {
	ID        string         `json:"id"`
	SessionID string         `json:"session_id"`
	Phase     Phase          `json:"phase"`
	Role      TranscriptRole `json:"role"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}
