package differ

import (
	"encoding/json"
	"sort"

	"github.com/aleister1102/revisiondiff/internal/models"
)

// MetadataDiffer compares the scalar metadata fields of two versions plus
// their open JSON data bags.
type MetadataDiffer struct{}

// NewMetadataDiffer creates a new metadata differ
func NewMetadataDiffer() *MetadataDiffer {
	return &MetadataDiffer{}
}

// scalarFields lists the fixed version fields compared by value, in the
// order their entries appear when iterated deterministically.
var scalarFields = []string{"title", "slug", "excerpt", "meta_title", "meta_description", "og_image"}

// DiffMetadata returns the field-level differences between two versions.
// Data-bag keys are reported under the composite name "data.<key>"; nested
// values are compared by canonical JSON serialization, one level deep.
func (md *MetadataDiffer) DiffMetadata(oldVersion, newVersion *models.Version) models.MetadataDiff {
	diff := models.MetadataDiff{}

	oldScalars := scalarValues(oldVersion)
	newScalars := scalarValues(newVersion)
	for _, field := range scalarFields {
		if oldScalars[field] != newScalars[field] {
			diff[field] = models.MetadataDiffEntry{
				ChangeType: models.MetadataModified,
				OldValue:   oldScalars[field],
				NewValue:   newScalars[field],
			}
		}
	}

	oldData := oldVersion.Data
	if oldData == nil {
		oldData = map[string]any{}
	}
	newData := newVersion.Data
	if newData == nil {
		newData = map[string]any{}
	}

	for _, key := range unionKeys(oldData, newData) {
		oldValue, inOld := oldData[key]
		newValue, inNew := newData[key]

		switch {
		case !inOld:
			diff["data."+key] = models.MetadataDiffEntry{
				ChangeType: models.MetadataAdded,
				NewValue:   newValue,
			}
		case !inNew:
			diff["data."+key] = models.MetadataDiffEntry{
				ChangeType: models.MetadataRemoved,
				OldValue:   oldValue,
			}
		case canonicalJSON(oldValue) != canonicalJSON(newValue):
			diff["data."+key] = models.MetadataDiffEntry{
				ChangeType: models.MetadataModified,
				OldValue:   oldValue,
				NewValue:   newValue,
			}
		}
	}

	return diff
}

func scalarValues(v *models.Version) map[string]string {
	return map[string]string{
		"title":            v.Title,
		"slug":             v.Slug,
		"excerpt":          v.Excerpt,
		"meta_title":       v.MetaTitle,
		"meta_description": v.MetaDescription,
		"og_image":         v.OGImage,
	}
}

func unionKeys(a, b map[string]any) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for key := range a {
		seen[key] = struct{}{}
	}
	for key := range b {
		seen[key] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// canonicalJSON serializes a value deterministically; encoding/json sorts
// map keys, so structurally equal values compare equal.
func canonicalJSON(value any) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded)
}
