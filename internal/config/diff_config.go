package config

// DiffConfig holds configuration for text diffing.
type DiffConfig struct {
	Granularity           string `json:"granularity,omitempty" yaml:"granularity,omitempty" validate:"omitempty,granularity"`
	Algorithm             string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	EnableSemanticCleanup bool   `json:"enable_semantic_cleanup" yaml:"enable_semantic_cleanup"`
}

// NewDefaultDiffConfig returns default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		Granularity:           "line",
		Algorithm:             "myers",
		EnableSemanticCleanup: true,
	}
}
