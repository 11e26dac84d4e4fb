package datastore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ComparisonAuditRecord is one logged comparison operation in the parquet
// audit file.
type ComparisonAuditRecord struct {
	Timestamp    int64 `parquet:"timestamp"`
	SiteID       int64 `parquet:"site_id"`
	UserID       int64 `parquet:"user_id"`
	OldVersionID int64 `parquet:"old_version_id"`
	NewVersionID int64 `parquet:"new_version_id"`
	CacheHit     bool  `parquet:"cache_hit"`
	DurationMs   int64 `parquet:"duration_ms"`
}

// ParquetAuditLog appends comparison records to a parquet file. Parquet
// files cannot be appended in place, so each write loads the existing
// records and rewrites the file. Audit volume is request-driven and low;
// callers treat failures as non-fatal.
type ParquetAuditLog struct {
	mu     sync.Mutex
	path   string
	logger zerolog.Logger
}

// NewParquetAuditLog creates an audit log writing to the configured path.
func NewParquetAuditLog(cfg config.StorageConfig, logger zerolog.Logger) (*ParquetAuditLog, error) {
	if cfg.AuditLogPath == "" {
		return nil, common.NewValidationError("audit_log_path", cfg.AuditLogPath, "audit log path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.AuditLogPath), 0o755); err != nil {
		return nil, common.WrapError(err, "failed to create audit log directory")
	}

	return &ParquetAuditLog{
		path:   cfg.AuditLogPath,
		logger: logger.With().Str("component", "ParquetAuditLog").Logger(),
	}, nil
}

// LogComparison records one comparison operation. The signature matches
// comparison.AuditLogger.
func (l *ParquetAuditLog) LogComparison(ctx context.Context, siteID, userID, oldVersionID, newVersionID int64, cacheHit bool, duration time.Duration) error {
	record := ComparisonAuditRecord{
		Timestamp:    time.Now().UnixMilli(),
		SiteID:       siteID,
		UserID:       userID,
		OldVersionID: oldVersionID,
		NewVersionID: newVersionID,
		CacheHit:     cacheHit,
		DurationMs:   duration.Milliseconds(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.readExisting()
	if err != nil {
		return common.WrapError(err, "failed to read existing audit records")
	}
	records = append(records, record)

	file, err := os.Create(l.path)
	if err != nil {
		return common.WrapError(err, "failed to open audit log for writing")
	}

	writer := parquet.NewGenericWriter[ComparisonAuditRecord](file, parquet.Compression(&parquet.Snappy))
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		_ = file.Close()
		return common.WrapError(err, "failed to write audit records")
	}
	if err := writer.Close(); err != nil {
		_ = file.Close()
		return common.WrapError(err, "failed to finalize audit log")
	}
	if err := file.Close(); err != nil {
		return common.WrapError(err, "failed to close audit log")
	}

	l.logger.Debug().
		Int64("old_version_id", record.OldVersionID).
		Int64("new_version_id", record.NewVersionID).
		Int("total_records", len(records)).
		Msg("Comparison audit record written")
	return nil
}

// ReadAll returns every audit record, oldest first.
func (l *ParquetAuditLog) ReadAll() ([]ComparisonAuditRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readExisting()
}

func (l *ParquetAuditLog) readExisting() ([]ComparisonAuditRecord, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil, nil
	}
	records, err := parquet.ReadFile[ComparisonAuditRecord](l.path)
	if err != nil {
		return nil, err
	}
	return records, nil
}
