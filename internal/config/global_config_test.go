package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, "line", cfg.DiffConfig.Granularity)
	assert.Equal(t, "myers", cfg.DiffConfig.Algorithm)
	assert.True(t, cfg.DiffConfig.EnableSemanticCleanup)
	assert.Equal(t, 100, cfg.CacheConfig.MaxEntries)
	assert.Equal(t, 3600, cfg.CacheConfig.TTLSeconds)
	assert.Equal(t, "html", cfg.ExporterConfig.DefaultFormat)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
diff_config:
  granularity: raw
cache_config:
  max_entries: 5
  ttl_seconds: 60
log_config:
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "raw", cfg.DiffConfig.Granularity)
	assert.Equal(t, 5, cfg.CacheConfig.MaxEntries)
	assert.Equal(t, 60, cfg.CacheConfig.TTLSeconds)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// Untouched sections keep their defaults.
	assert.Equal(t, "html", cfg.ExporterConfig.DefaultFormat)
}

func TestLoadGlobalConfig_InvalidGranularityRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
diff_config:
  granularity: word
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadGlobalConfig(path)

	assert.Error(t, err)
}

func TestValidateConfig_RejectsBadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	assert.Error(t, ValidateConfig(cfg))
}
