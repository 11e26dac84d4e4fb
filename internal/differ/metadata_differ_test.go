package differ

import (
	"testing"

	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataDiffer_TitleOnly(t *testing.T) {
	md := NewMetadataDiffer()

	oldVersion := &models.Version{Title: "Old Title", Slug: "post", Excerpt: "summary"}
	newVersion := &models.Version{Title: "New Title", Slug: "post", Excerpt: "summary"}

	diff := md.DiffMetadata(oldVersion, newVersion)

	require.Len(t, diff, 1)
	entry, ok := diff["title"]
	require.True(t, ok)
	assert.Equal(t, models.MetadataModified, entry.ChangeType)
	assert.Equal(t, "Old Title", entry.OldValue)
	assert.Equal(t, "New Title", entry.NewValue)
}

func TestMetadataDiffer_NoChanges(t *testing.T) {
	md := NewMetadataDiffer()

	version := &models.Version{Title: "Same", Slug: "same", Data: map[string]any{"k": "v"}}
	other := &models.Version{Title: "Same", Slug: "same", Data: map[string]any{"k": "v"}}

	diff := md.DiffMetadata(version, other)

	assert.Empty(t, diff)
}

func TestMetadataDiffer_DataBagKeys(t *testing.T) {
	md := NewMetadataDiffer()

	oldVersion := &models.Version{
		Data: map[string]any{
			"removed_key": "gone",
			"kept_key":    "same",
			"changed_key": float64(1),
		},
	}
	newVersion := &models.Version{
		Data: map[string]any{
			"kept_key":    "same",
			"changed_key": float64(2),
			"added_key":   "fresh",
		},
	}

	diff := md.DiffMetadata(oldVersion, newVersion)

	require.Len(t, diff, 3)
	assert.Equal(t, models.MetadataRemoved, diff["data.removed_key"].ChangeType)
	assert.Equal(t, models.MetadataAdded, diff["data.added_key"].ChangeType)
	assert.Equal(t, models.MetadataModified, diff["data.changed_key"].ChangeType)
	assert.NotContains(t, diff, "data.kept_key")
}

func TestMetadataDiffer_NestedValueReportedAsWholeKey(t *testing.T) {
	md := NewMetadataDiffer()

	oldVersion := &models.Version{
		Data: map[string]any{"settings": map[string]any{"color": "red", "size": "m"}},
	}
	newVersion := &models.Version{
		Data: map[string]any{"settings": map[string]any{"color": "blue", "size": "m"}},
	}

	diff := md.DiffMetadata(oldVersion, newVersion)

	require.Len(t, diff, 1)
	entry := diff["data.settings"]
	assert.Equal(t, models.MetadataModified, entry.ChangeType)
}

func TestMetadataDiffer_EqualNestedValuesCompareEqual(t *testing.T) {
	md := NewMetadataDiffer()

	// Map iteration order must not affect the canonical serialization.
	oldVersion := &models.Version{
		Data: map[string]any{"settings": map[string]any{"a": 1.0, "b": 2.0, "c": 3.0}},
	}
	newVersion := &models.Version{
		Data: map[string]any{"settings": map[string]any{"c": 3.0, "b": 2.0, "a": 1.0}},
	}

	diff := md.DiffMetadata(oldVersion, newVersion)

	assert.Empty(t, diff)
}

func TestMetadataDiffer_NilDataBags(t *testing.T) {
	md := NewMetadataDiffer()

	oldVersion := &models.Version{Title: "t"}
	newVersion := &models.Version{Title: "t", Data: map[string]any{"new": true}}

	diff := md.DiffMetadata(oldVersion, newVersion)

	require.Len(t, diff, 1)
	assert.Equal(t, models.MetadataAdded, diff["data.new"].ChangeType)
}

func TestMetadataDiffer_SEOFields(t *testing.T) {
	md := NewMetadataDiffer()

	oldVersion := &models.Version{MetaTitle: "old meta", OGImage: "a.png"}
	newVersion := &models.Version{MetaTitle: "new meta", OGImage: "a.png"}

	diff := md.DiffMetadata(oldVersion, newVersion)

	require.Len(t, diff, 1)
	assert.Equal(t, models.MetadataModified, diff["meta_title"].ChangeType)
}
