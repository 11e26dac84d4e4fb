package datastore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteVersionStore {
	cfg := config.StorageConfig{DatabasePath: filepath.Join(t.TempDir(), "versions.db")}
	store, err := NewSQLiteVersionStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteVersionStore_SaveAndFetch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	version := &models.Version{
		ID: 1, SiteID: 10, ContentType: "post", ContentID: 5,
		VersionNumber: 3, VersionType: "draft",
		Title: "Hello", Slug: "hello", Excerpt: "short",
		Content:   "<p>body</p>",
		Data:      map[string]any{"featured": true, "tags": []any{"go"}},
		MetaTitle: "Hello SEO",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy: 42,
	}

	require.NoError(t, store.SaveVersion(ctx, version))

	loaded, err := store.FetchVersion(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, version.Title, loaded.Title)
	assert.Equal(t, version.SiteID, loaded.SiteID)
	assert.Equal(t, version.Content, loaded.Content)
	assert.Equal(t, true, loaded.Data["featured"])
	assert.Equal(t, int64(42), loaded.CreatedBy)
}

func TestSQLiteVersionStore_FetchMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.FetchVersion(context.Background(), 12345)

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSQLiteVersionStore_AccessGrants(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	allowed, err := store.HasAccess(ctx, 10, 7)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, store.GrantAccess(ctx, 10, 7))

	allowed, err = store.HasAccess(ctx, 10, 7)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = store.HasAccess(ctx, 11, 7)
	require.NoError(t, err)
	assert.False(t, allowed, "grants are per site")
}
