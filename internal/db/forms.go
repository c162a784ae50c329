package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// ContentHash returns a stable SHA-256 hash of the value's JSON form. The
// value is round-tripped through a generic map so key order never affects the
// hash; resubmitting identical form data always produces the same hash.
func ContentHash(value any) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to marshal content: %w", err)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("failed to canonicalize content: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("failed to marshal canonical content: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (db *DB) saveForm(ctx context.Context, table string, value any) (uuid.UUID, error) {
	hash, err := ContentHash(value)
	if err != nil {
		return uuid.Nil, err
	}

	content, err := json.Marshal(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal content: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO %s (hash, content)
		 VALUES ($1, $2)
		 ON CONFLICT (hash) DO UPDATE SET updated_at = NOW()
		 RETURNING id`, table),
		hash, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save %s: %w", table, err)
	}
	return id, nil
}

// SaveProfile stores a submitted profile, deduplicated by content hash.
// Resubmitting identical data refreshes the existing row instead of creating
// a new one.
func (db *DB) SaveProfile(ctx context.Context, profile *types.Profile) (uuid.UUID, error) {
	return db.saveForm(ctx, "profiles", profile)
}

// SaveJobRequirements stores submitted job requirements, deduplicated by
// content hash.
func (db *DB) SaveJobRequirements(ctx context.Context, job *types.JobRequirements) (uuid.UUID, error) {
	return db.saveForm(ctx, "job_requirements", job)
}

// GetLatestProfile returns the most recently submitted profile, or nil when
// none has been stored.
func (db *DB) GetLatestProfile(ctx context.Context) (*types.Profile, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profiles ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest profile: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse stored profile: %w", err)
	}
	return &profile, nil
}

// GetLatestJobRequirements returns the most recently submitted job
// requirements, or nil when none has been stored.
func (db *DB) GetLatestJobRequirements(ctx context.Context) (*types.JobRequirements, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM job_requirements ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest job requirements: %w", err)
	}

	var job types.JobRequirements
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to parse stored job requirements: %w", err)
	}
	return &job, nil
}
