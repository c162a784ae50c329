package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/cache"
	"github.com/urabe-chihiro/resume-ai/internal/config"
	"github.com/urabe-chihiro/resume-ai/internal/db"
	"github.com/urabe-chihiro/resume-ai/internal/llm"
	"github.com/urabe-chihiro/resume-ai/internal/logging"
	"github.com/urabe-chihiro/resume-ai/internal/schemas"
	"github.com/urabe-chihiro/resume-ai/internal/types"
	"github.com/urabe-chihiro/resume-ai/internal/vector"
)

// app bundles the resources a command needs. Optional backends (database,
// session cache, context store) are nil when not configured; commands degrade
// rather than fail when they are missing.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	client    llm.Client
	database  *db.DB
	sessions  *cache.SessionCache
	documents *vector.DocumentManager
	sessionID string
}

func loadMergedConfig(configPath string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		LogLevel:    "info",
		LogFormat:   "console",
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newApp builds the command context. needLLM controls whether a missing API
// key is an error.
func newApp(ctx context.Context, configPath, sessionID string, needLLM bool) (*app, error) {
	cfg, err := loadMergedConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}

	a.sessionID = sessionID
	if a.sessionID == "" {
		a.sessionID = cfg.SessionID
	}
	if a.sessionID == "" {
		a.sessionID = uuid.NewString()
		logger.Debug("generated session id", zap.String("session_id", a.sessionID))
	}

	if needLLM {
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("API key required: set api_key in config or GEMINI_API_KEY environment variable")
		}
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, err
		}
		a.client = client
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("database unavailable, continuing without persistence", zap.Error(err))
		} else if err := database.EnsureSchema(ctx); err != nil {
			logger.Warn("database schema setup failed, continuing without persistence", zap.Error(err))
			database.Close()
		} else {
			a.database = database
		}
	}

	if cfg.RedisAddr != "" {
		sessions, err := cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, continuing without session cache", zap.Error(err))
		} else {
			a.sessions = sessions
		}
	}

	if len(cfg.ElasticAddrs) > 0 {
		store, err := vector.NewElasticStore(ctx, cfg.ElasticAddrs, "")
		if err != nil {
			logger.Warn("elasticsearch unavailable, continuing without context store", zap.Error(err))
		} else {
			a.documents = vector.NewDocumentManager(store, logger)
		}
	}

	return a, nil
}

func (a *app) close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.database != nil {
		a.database.Close()
	}
	if a.sessions != nil {
		_ = a.sessions.Close()
	}
	_ = a.logger.Sync()
}

func loadProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateBytes(schemas.SchemaProfile, data); err != nil {
		return nil, fmt.Errorf("invalid profile file %s: %w", path, err)
	}
	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}
	return &profile, nil
}

func loadJobRequirements(path string) (*types.JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job requirements file: %w", err)
	}
	if err := schemas.ValidateBytes(schemas.SchemaJobRequirements, data); err != nil {
		return nil, fmt.Errorf("invalid job requirements file %s: %w", path, err)
	}
	var job types.JobRequirements
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job requirements file: %w", err)
	}
	return &job, nil
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
