package config

// StorageConfig holds paths for the version store and audit log.
type StorageConfig struct {
	DatabasePath string `json:"database_path,omitempty" yaml:"database_path,omitempty"`
	AuditLogPath string `json:"audit_log_path,omitempty" yaml:"audit_log_path,omitempty"`
}

// NewDefaultStorageConfig returns default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		DatabasePath: "versions.db",
		AuditLogPath: "audit/comparisons.parquet",
	}
}
