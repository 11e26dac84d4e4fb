package models

// Statistics aggregates counts and derived scores across the three diff
// outputs of a comparison.
type Statistics struct {
	TotalChanges       int      `json:"total_changes"`
	LinesAdded         int      `json:"lines_added"`
	LinesRemoved       int      `json:"lines_removed"`
	LinesModified      int      `json:"lines_modified"`
	CharactersAdded    int      `json:"characters_added"`
	CharactersRemoved  int      `json:"characters_removed"`
	WordsAdded         int      `json:"words_added"`
	WordsRemoved       int      `json:"words_removed"`
	ChangePercent      float64  `json:"change_percent"`
	ComplexityScore    int      `json:"complexity_score"`
	ReviewTimeEstimate int      `json:"review_time_estimate"`
	MajorChanges       []string `json:"major_changes"`
}
