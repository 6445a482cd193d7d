package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/margdarshak/disha/internal/domain"
)

// SQLiteTranscriptRepo implements TranscriptRepo using a SQLite database.
type SQLiteTranscriptRepo struct {
	db *sql.DB
}

// NewSQLiteTranscriptRepo creates a new SQLiteTranscriptRepo.
func NewSQLiteTranscriptRepo(db *sql.DB) *SQLiteTranscriptRepo {
	return &SQLiteTranscriptRepo{db: db}
}

func (r *SQLiteTranscriptRepo) Append(ctx context.Context, t *domain.TranscriptTurn) error {
	query := `INSERT INTO transcript_turns (id, session_id, phase, role, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.SessionID,
		string(t.Phase),
		string(t.Role),
		t.Content,
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting transcript turn: %w", err)
	}
	return nil
}

func (r *SQLiteTranscriptRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.TranscriptTurn, error) {
	query := `SELECT id, session_id, phase, role, content, created_at
		FROM transcript_turns WHERE session_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing transcript turns: %w", err)
	}
	defer rows.Close()

	var turns []*domain.TranscriptTurn
	for rows.Next() {
		var t domain.TranscriptTurn
		var phase, role, createdAt string
		if err := rows.Scan(&t.ID, &t.SessionID, &phase, &role, &t.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning transcript turn: %w", err)
		}
		t.Phase = domain.Phase(phase)
		t.Role = domain.TranscriptRole(role)
		t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		turns = append(turns, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transcript turns: %w", err)
	}
	return turns, nil
}

func (r *SQLiteTranscriptRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	query := `DELETE FROM transcript_turns WHERE session_id = ?`
	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("deleting transcript turns: %w", err)
	}
	return nil
}
