// Package datastore provides the persistence collaborators of the
// comparison engine: the sqlite-backed version store and access table, and
// the parquet audit log.
package datastore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS versions (
    id               INTEGER PRIMARY KEY,
    site_id          INTEGER NOT NULL,
    content_type     TEXT    NOT NULL,
    content_id       INTEGER NOT NULL,
    version_number   INTEGER NOT NULL,
    version_type     TEXT    NOT NULL DEFAULT '',
    title            TEXT    NOT NULL DEFAULT '',
    slug             TEXT    NOT NULL DEFAULT '',
    excerpt          TEXT    NOT NULL DEFAULT '',
    content          TEXT    NOT NULL DEFAULT '',
    data             TEXT    NOT NULL DEFAULT '{}',
    meta_title       TEXT    NOT NULL DEFAULT '',
    meta_description TEXT    NOT NULL DEFAULT '',
    og_image         TEXT    NOT NULL DEFAULT '',
    created_at       TIMESTAMP NOT NULL,
    created_by       INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_versions_content ON versions(site_id, content_id, version_number);

CREATE TABLE IF NOT EXISTS site_access (
    site_id INTEGER NOT NULL,
    user_id INTEGER NOT NULL,
    PRIMARY KEY (site_id, user_id)
);
`

// SQLiteVersionStore reads version records and site access grants from a
// sqlite database. It implements comparison.VersionStore and
// comparison.AccessPolicy.
type SQLiteVersionStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteVersionStore opens (and if needed initializes) the store.
func NewSQLiteVersionStore(cfg config.StorageConfig, logger zerolog.Logger) (*SQLiteVersionStore, error) {
	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to open version database '%s'", cfg.DatabasePath)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "failed to initialize version schema")
	}

	return &SQLiteVersionStore{
		db:     db,
		logger: logger.With().Str("component", "SQLiteVersionStore").Logger(),
	}, nil
}

// FetchVersion loads one version by id. A missing id maps to
// common.ErrNotFound.
func (s *SQLiteVersionStore) FetchVersion(ctx context.Context, id int64) (*models.Version, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, site_id, content_type, content_id, version_number, version_type,
		       title, slug, excerpt, content, data,
		       meta_title, meta_description, og_image, created_at, created_by
		FROM versions WHERE id = ?`, id)

	var version models.Version
	var rawData string
	err := row.Scan(
		&version.ID, &version.SiteID, &version.ContentType, &version.ContentID,
		&version.VersionNumber, &version.VersionType,
		&version.Title, &version.Slug, &version.Excerpt, &version.Content, &rawData,
		&version.MetaTitle, &version.MetaDescription, &version.OGImage,
		&version.CreatedAt, &version.CreatedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.WrapErrorf(common.ErrNotFound, "version %d", id)
	}
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to load version %d", id)
	}

	if rawData != "" {
		if err := json.Unmarshal([]byte(rawData), &version.Data); err != nil {
			s.logger.Warn().Err(err).Int64("version_id", id).Msg("Ignoring malformed data bag")
			version.Data = nil
		}
	}

	return &version, nil
}

// HasAccess reports whether the user holds a grant on the site.
func (s *SQLiteVersionStore) HasAccess(ctx context.Context, siteID, userID int64) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM site_access WHERE site_id = ? AND user_id = ?`,
		siteID, userID).Scan(&count)
	if err != nil {
		return false, common.WrapError(err, "failed to query site access")
	}
	return count > 0, nil
}

// SaveVersion inserts a version record. Used by tooling and tests; the
// comparison engine itself never writes versions.
func (s *SQLiteVersionStore) SaveVersion(ctx context.Context, version *models.Version) error {
	rawData := "{}"
	if version.Data != nil {
		encoded, err := json.Marshal(version.Data)
		if err != nil {
			return common.WrapError(err, "failed to encode data bag")
		}
		rawData = string(encoded)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO versions (
			id, site_id, content_type, content_id, version_number, version_type,
			title, slug, excerpt, content, data,
			meta_title, meta_description, og_image, created_at, created_by
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		version.ID, version.SiteID, version.ContentType, version.ContentID,
		version.VersionNumber, version.VersionType,
		version.Title, version.Slug, version.Excerpt, version.Content, rawData,
		version.MetaTitle, version.MetaDescription, version.OGImage,
		version.CreatedAt, version.CreatedBy,
	)
	if err != nil {
		return common.WrapErrorf(err, "failed to save version %d", version.ID)
	}
	return nil
}

// GrantAccess adds a site access grant for a user.
func (s *SQLiteVersionStore) GrantAccess(ctx context.Context, siteID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO site_access (site_id, user_id) VALUES (?, ?)`,
		siteID, userID)
	if err != nil {
		return common.WrapError(err, "failed to grant site access")
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteVersionStore) Close() error {
	return s.db.Close()
}
