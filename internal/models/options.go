package models

// DefaultAlgorithmLabel is the informational algorithm tag attached to
// results when the caller does not provide one.
const DefaultAlgorithmLabel = "myers"

// CompareOptions controls a single comparison request.
type CompareOptions struct {
	Granularity       Granularity `json:"granularity"`
	Algorithm         string      `json:"algorithm"`
	IncludeStatistics bool        `json:"include_statistics"`
	IncludeMetadata   bool        `json:"include_metadata"`
}

// Normalized returns a copy with defaults applied. Cache keys are derived
// from the normalized form so that equivalent requests share an entry.
func (o CompareOptions) Normalized() CompareOptions {
	if o.Granularity != GranularityRaw {
		o.Granularity = GranularityLine
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithmLabel
	}
	return o
}

// ExportFormat selects the output representation of a computed diff.
type ExportFormat string

const (
	// FormatHTML renders a standalone side-by-side HTML document.
	FormatHTML ExportFormat = "html"
	// FormatJSON renders a reduced JSON projection.
	FormatJSON ExportFormat = "json"
	// FormatPDF renders the HTML document and returns its bytes as a PDF
	// surrogate. No real PDF layout is performed.
	FormatPDF ExportFormat = "pdf"
)
