package models

// TextChangeType defines the kind of a single line or segment change.
type TextChangeType string

const (
	// TextUnchanged indicates an equal segment.
	TextUnchanged TextChangeType = "unchanged"
	// TextAdd indicates a segment present only in the new text.
	TextAdd TextChangeType = "add"
	// TextRemove indicates a segment present only in the old text.
	TextRemove TextChangeType = "remove"
)

// Granularity selects how the text differ expresses its edit script.
type Granularity string

const (
	// GranularityLine re-expresses the edit script over line arrays with
	// hunk grouping and 1-based line bookkeeping.
	GranularityLine Granularity = "line"
	// GranularityRaw emits one change per non-equal diff span with the
	// span's raw text, skipping line and hunk bookkeeping.
	GranularityRaw Granularity = "raw"
)

// TextChange is one atomic change emitted by the text differ.
// Line numbers are 1-based; LineOld is set for unchanged/removed entries,
// LineNew for unchanged/added entries. Zero means not applicable.
type TextChange struct {
	Type    TextChangeType `json:"type"`
	Content string         `json:"content"`
	LineOld int            `json:"line_number_old,omitempty"`
	LineNew int            `json:"line_number_new,omitempty"`
}

// Hunk is a maximal contiguous run of non-unchanged changes. An equal line
// closes the current hunk; hunks separated by a single equal line are kept
// separate.
type Hunk struct {
	OldStart int          `json:"old_start"`
	OldLines int          `json:"old_lines"`
	NewStart int          `json:"new_start"`
	NewLines int          `json:"new_lines"`
	Changes  []TextChange `json:"changes"`
}

// TextDiffResult holds the structured result of a text diff operation.
// Changes is the flat list of non-unchanged entries across all hunks.
type TextDiffResult struct {
	Hunks           []Hunk       `json:"hunks"`
	Changes         []TextChange `json:"changes"`
	LinesAdded      int          `json:"lines_added"`
	LinesRemoved    int          `json:"lines_removed"`
	LinesModified   int          `json:"lines_modified"`
	SimilarityRatio float64      `json:"similarity_ratio"`
}
