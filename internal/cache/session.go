// Package cache stores per-session working state in Redis: the submitted
// forms, the assembled record, and the latest generated document. One session
// maps to one candidate/job pairing; concurrent writers are resolved
// last-write-wins.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// DefaultTTL is how long session state survives without activity.
const DefaultTTL = 24 * time.Hour

// SessionCache reads and writes session-scoped state.
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr, password string, db int) (*SessionCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SessionCache{client: client, ttl: DefaultTTL}, nil
}

// NewWithClient wraps an existing Redis client. Used by tests.
func NewWithClient(client *redis.Client) *SessionCache {
	return &SessionCache{client: client, ttl: DefaultTTL}
}

// Close closes the underlying connection.
func (c *SessionCache) Close() error {
	return c.client.Close()
}

func sessionKey(sessionID, field string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, field)
}

func (c *SessionCache) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session value: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session key %s: %w", key, err)
	}
	return nil
}

func (c *SessionCache) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse session key %s: %w", key, err)
	}
	return true, nil
}

// SetProfile stores the session's submitted profile.
func (c *SessionCache) SetProfile(ctx context.Context, sessionID string, profile *types.Profile) error {
	return c.setJSON(ctx, sessionKey(sessionID, "profile"), profile)
}

// GetProfile returns the session's profile, or nil when none is stored.
func (c *SessionCache) GetProfile(ctx context.Context, sessionID string) (*types.Profile, error) {
	var profile types.Profile
	ok, err := c.getJSON(ctx, sessionKey(sessionID, "profile"), &profile)
	if err != nil || !ok {
		return nil, err
	}
	return &profile, nil
}

// SetJobRequirements stores the session's job requirements.
func (c *SessionCache) SetJobRequirements(ctx context.Context, sessionID string, job *types.JobRequirements) error {
	return c.setJSON(ctx, sessionKey(sessionID, "job_requirements"), job)
}

// GetJobRequirements returns the session's job requirements, or nil when none
// are stored.
func (c *SessionCache) GetJobRequirements(ctx context.Context, sessionID string) (*types.JobRequirements, error) {
	var job types.JobRequirements
	ok, err := c.getJSON(ctx, sessionKey(sessionID, "job_requirements"), &job)
	if err != nil || !ok {
		return nil, err
	}
	return &job, nil
}

// SetRecord stores the session's assembled resume record.
func (c *SessionCache) SetRecord(ctx context.Context, sessionID string, record *types.ResumeRecord) error {
	return c.setJSON(ctx, sessionKey(sessionID, "record"), record)
}

// GetRecord returns the session's resume record, or nil when none is stored.
func (c *SessionCache) GetRecord(ctx context.Context, sessionID string) (*types.ResumeRecord, error) {
	var record types.ResumeRecord
	ok, err := c.getJSON(ctx, sessionKey(sessionID, "record"), &record)
	if err != nil || !ok {
		return nil, err
	}
	return &record, nil
}

// SetDocument stores the latest generated document text for the session.
func (c *SessionCache) SetDocument(ctx context.Context, sessionID, document string) error {
	if err := c.client.Set(ctx, sessionKey(sessionID, "document"), document, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session document: %w", err)
	}
	return nil
}

// GetDocument returns the latest generated document, or an empty string when
// none is stored.
func (c *SessionCache) GetDocument(ctx context.Context, sessionID string) (string, error) {
	doc, err := c.client.Get(ctx, sessionKey(sessionID, "document")).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session document: %w", err)
	}
	return doc, nil
}

// Clear removes all state for the session.
func (c *SessionCache) Clear(ctx context.Context, sessionID string) error {
	keys := []string{
		sessionKey(sessionID, "profile"),
		sessionKey(sessionID, "job_requirements"),
		sessionKey(sessionID, "record"),
		sessionKey(sessionID, "document"),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
