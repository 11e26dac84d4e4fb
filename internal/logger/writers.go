package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log writers based on configuration
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a console writer for the given format.
// The "json" format writes raw JSON lines to stderr; everything else uses
// zerolog's console writer.
func (wf *WriterFactory) CreateConsoleWriter(format string) io.Writer {
	if strings.ToLower(format) == "json" {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

// CreateFileWriter creates a rotating file writer
func (wf *WriterFactory) CreateFileWriter(cfg config.LogConfig) io.Writer {
	// lumberjack creates intermediate directories only for the log file itself
	_ = os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755)

	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
		Compress:   true,
	}
}
