package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Artifact kinds stored per generation session.
const (
	ArtifactPipelineResult = "pipeline_result"
	ArtifactResumeRecord   = "resume_record"
	ArtifactDocument       = "document"
)

// SaveArtifact stores a JSON artifact for a session, replacing any previous
// artifact of the same kind.
func (db *DB) SaveArtifact(ctx context.Context, sessionID, kind string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO generation_artifacts (session_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		sessionID, kind, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", kind, err)
	}
	return nil
}

// SaveTextArtifact stores a text artifact (a rendered document) for a session.
func (db *DB) SaveTextArtifact(ctx context.Context, sessionID, kind, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO generation_artifacts (session_id, kind, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, kind) DO UPDATE SET text_content = $3, created_at = NOW()`,
		sessionID, kind, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save text artifact %s: %w", kind, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by session and kind. Returns nil when
// no such artifact exists.
func (db *DB) GetArtifact(ctx context.Context, sessionID, kind string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM generation_artifacts WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", kind, err)
	}
	return content, nil
}

// GetTextArtifact retrieves a text artifact by session and kind. Returns an
// empty string when no such artifact exists.
func (db *DB) GetTextArtifact(ctx context.Context, sessionID, kind string) (string, error) {
	var text string
	err := db.pool.QueryRow(ctx,
		`SELECT text_content FROM generation_artifacts WHERE session_id = $1 AND kind = $2`,
		sessionID, kind,
	).Scan(&text)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to get text artifact %s: %w", kind, err)
	}
	return text, nil
}
