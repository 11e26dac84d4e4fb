package models

// MetadataChangeType defines how a metadata field changed between versions.
type MetadataChangeType string

const (
	// MetadataAdded indicates a data-bag key present only in the new version.
	MetadataAdded MetadataChangeType = "added"
	// MetadataRemoved indicates a data-bag key present only in the old version.
	MetadataRemoved MetadataChangeType = "removed"
	// MetadataModified indicates a field whose value differs between versions.
	MetadataModified MetadataChangeType = "modified"
)

// MetadataDiffEntry describes one changed metadata field. Values are kept
// as-is for scalar fields and as the decoded JSON value for data-bag keys.
type MetadataDiffEntry struct {
	ChangeType MetadataChangeType `json:"change_type"`
	OldValue   any                `json:"old_value,omitempty"`
	NewValue   any                `json:"new_value,omitempty"`
}

// MetadataDiff maps a field name to its change entry. Data-bag keys use the
// composite name "data.<key>".
type MetadataDiff map[string]MetadataDiffEntry
