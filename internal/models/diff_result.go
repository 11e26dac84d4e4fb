package models

import "time"

// DiffResult is the aggregate outcome of comparing two versions. It is
// created once per successful comparison, cached by value and immutable
// thereafter.
type DiffResult struct {
	LeftVersion    *Version             `json:"left_version"`
	RightVersion   *Version             `json:"right_version"`
	TextDiff       TextDiffResult       `json:"text_diff"`
	StructuralDiff StructuralDiffResult `json:"structural_diff"`
	MetadataDiff   MetadataDiff         `json:"metadata_diff"`
	Statistics     Statistics           `json:"statistics"`
	ComputedAt     time.Time            `json:"computed_at"`
	AlgorithmUsed  string               `json:"algorithm_used"`
	CacheKey       string               `json:"cache_key"`
}

// VersionSummary is the reduced version projection used by the JSON export.
type VersionSummary struct {
	ID            int64     `json:"id"`
	VersionNumber int       `json:"version_number"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
}

// Summary projects a version down to the fields the JSON export carries.
func (v *Version) Summary() VersionSummary {
	return VersionSummary{
		ID:            v.ID,
		VersionNumber: v.VersionNumber,
		Title:         v.Title,
		CreatedAt:     v.CreatedAt,
	}
}
