package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeTempFile(t, "profile.json", `{
		"name": "Tanaka",
		"programming_languages": ["Go"],
		"work_experiences": [
			{"company_name": "Acme", "position": "Engineer", "period": "2020-2023"}
		]
	}`)

	profile, err := loadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Tanaka", profile.Name)
	require.Len(t, profile.WorkExperiences, 1)
}

func TestLoadProfile_SchemaViolation(t *testing.T) {
	path := writeTempFile(t, "profile.json", `{"programming_languages": ["Go"]}`)
	_, err := loadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile file")
}

func TestLoadJobRequirements(t *testing.T) {
	path := writeTempFile(t, "job.json", `{
		"job_title": "Backend Engineer",
		"company_info": {"name": "Globex"},
		"job_description": "Design and operate Go services."
	}`)

	job, err := loadJobRequirements(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.JobTitle)
	assert.Equal(t, "Globex", job.CompanyInfo.Name)
}

func TestLoadJobRequirements_SchemaViolation(t *testing.T) {
	path := writeTempFile(t, "job.json", `{"job_title": "Backend Engineer"}`)
	_, err := loadJobRequirements(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job requirements file")
}

func TestLoadMergedConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := loadMergedConfig("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadMergedConfig_FileOverridesEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	path := writeTempFile(t, "config.json", `{"api_key": "file-key", "log_level": "debug"}`)
	cfg, err := loadMergedConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"generate", "summary", "compose", "improve", "suggest", "integrate", "forms"} {
		assert.True(t, names[want], "command %s not registered", want)
	}
}
