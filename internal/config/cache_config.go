package config

// CacheConfig holds configuration for the diff result cache.
type CacheConfig struct {
	MaxEntries int `json:"max_entries,omitempty" yaml:"max_entries,omitempty" validate:"omitempty,gt=0"`
	TTLSeconds int `json:"ttl_seconds,omitempty" yaml:"ttl_seconds,omitempty" validate:"omitempty,gt=0"`
}

// NewDefaultCacheConfig returns default cache configuration
func NewDefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxEntries: 100,
		TTLSeconds: 3600,
	}
}
