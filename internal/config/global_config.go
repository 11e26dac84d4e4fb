package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/revisiondiff/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	DiffConfig     DiffConfig     `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	CacheConfig    CacheConfig    `json:"cache_config,omitempty" yaml:"cache_config,omitempty"`
	ExporterConfig ExporterConfig `json:"exporter_config,omitempty" yaml:"exporter_config,omitempty"`
	StorageConfig  StorageConfig  `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:     NewDefaultDiffConfig(),
		CacheConfig:    NewDefaultCacheConfig(),
		ExporterConfig: NewDefaultExporterConfig(),
		StorageConfig:  NewDefaultStorageConfig(),
		LogConfig:      NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. YAML is preferred if the extension is .yaml or .yml.
// When no config file is found the defaults are returned unchanged.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	path := GetConfigPath(providedPath)
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to read config file '%s'", path)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, common.WrapErrorf(err, "failed to parse YAML config '%s'", path)
		}
	case ".json":
		if err := json.Unmarshal(content, cfg); err != nil {
			return nil, common.WrapErrorf(err, "failed to parse JSON config '%s'", path)
		}
	default:
		return nil, common.NewError("unsupported config file extension: %s", filepath.Ext(path))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, common.WrapError(err, "config validation failed")
	}

	return cfg, nil
}
