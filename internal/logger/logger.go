package logger

import (
	"io"
	stdlog "log"
	"strings"

	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/rs/zerolog"
)

// New creates a zerolog logger from the application log configuration.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	cfg     config.LogConfig
	factory *WriterFactory
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		cfg:     config.NewDefaultLogConfig(),
		factory: NewWriterFactory(),
	}
}

// WithConfig sets the logger configuration
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	lb.cfg = cfg
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return zerolog.Nop(), err
	}

	level, err := ParseLevel(lb.cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	writers := lb.createWriters()
	if len(writers) == 0 {
		return zerolog.Nop(), common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(level)
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

// validateConfig validates the logger configuration
func (lb *LoggerBuilder) validateConfig() error {
	if lb.cfg.EnableFile && lb.cfg.LogFile == "" {
		return common.NewValidationError("log_file", lb.cfg.LogFile, "file path required when file logging enabled")
	}
	return nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() []io.Writer {
	var writers []io.Writer

	if lb.cfg.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.cfg.LogFormat))
	}

	if lb.cfg.EnableFile {
		writers = append(writers, lb.factory.CreateFileWriter(lb.cfg))
	}

	return writers
}

// ParseLevel parses a string log level to zerolog.Level
func ParseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, common.WrapError(err, "invalid log level")
	}
	return level, nil
}
