package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.json", `{
		"profile": "profile.json",
		"job": "job.json",
		"api_key": "test-key",
		"redis_addr": "localhost:6379",
		"elastic_addrs": ["http://localhost:9200"],
		"log_level": "debug"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "profile.json", cfg.Profile)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, []string{"http://localhost:9200"}, cfg.ElasticAddrs)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", "{not json")
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	profile := writeFile(t, dir, "profile.json", "{}")

	cfg := &Config{Profile: profile, LogLevel: "info", LogFormat: "json"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{LogLevel: "loud"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{LogFormat: "xml"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{RedisDB: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Profile: filepath.Join(dir, "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit-key"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:    "default-key",
		RedisAddr: "localhost:6379",
		LogLevel:  "info",
	})

	assert.Equal(t, "explicit-key", merged.APIKey)
	assert.Equal(t, "localhost:6379", merged.RedisAddr)
	assert.Equal(t, "info", merged.LogLevel)
}
