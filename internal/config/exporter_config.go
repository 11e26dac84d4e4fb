package config

// ExporterConfig holds configuration for diff exports.
type ExporterConfig struct {
	DefaultFormat     string `json:"default_format,omitempty" yaml:"default_format,omitempty" validate:"omitempty,exportformat"`
	IncludeStatistics bool   `json:"include_statistics" yaml:"include_statistics"`
	IncludeMetadata   bool   `json:"include_metadata" yaml:"include_metadata"`
}

// NewDefaultExporterConfig returns default exporter configuration
func NewDefaultExporterConfig() ExporterConfig {
	return ExporterConfig{
		DefaultFormat:     "html",
		IncludeStatistics: true,
		IncludeMetadata:   true,
	}
}
