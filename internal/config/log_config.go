package config

// LogConfig holds logging configuration for the application.
type LogConfig struct {
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" validate:"omitempty,gt=0"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty" validate:"omitempty,gte=0"`
	EnableConsole bool   `json:"enable_console" yaml:"enable_console"`
	EnableFile    bool   `json:"enable_file" yaml:"enable_file"`
}

// NewDefaultLogConfig returns default logging configuration
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogLevel:      "info",
		LogFormat:     "console",
		MaxLogSizeMB:  100,
		MaxLogBackups: 3,
		EnableConsole: true,
		EnableFile:    false,
	}
}
