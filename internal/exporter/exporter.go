// Package exporter renders computed diff results into HTML, JSON and
// PDF-surrogate payloads.
package exporter

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"sort"
	"time"

	"github.com/aleister1102/revisiondiff/internal/common"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
)

//go:embed templates/diff_report.html.tmpl
var templateFS embed.FS

// ExportOptions gates the optional sections of an export.
type ExportOptions struct {
	IncludeStatistics bool
	IncludeMetadata   bool
}

// DiffExporter renders a computed DiffResult into an exportable payload.
type DiffExporter struct {
	logger zerolog.Logger
	tmpl   *template.Template
}

// NewDiffExporter creates a new diff exporter
func NewDiffExporter(logger zerolog.Logger) (*DiffExporter, error) {
	tmpl, err := template.New("").Funcs(templateFunctions()).ParseFS(templateFS, "templates/diff_report.html.tmpl")
	if err != nil {
		return nil, common.WrapError(err, "failed to parse diff report template")
	}

	return &DiffExporter{
		logger: logger.With().Str("component", "DiffExporter").Logger(),
		tmpl:   tmpl,
	}, nil
}

// Export renders the diff in the requested format. An unsupported format is
// a reported error, never a panic.
func (e *DiffExporter) Export(diff *models.DiffResult, format models.ExportFormat, opts ExportOptions) ([]byte, error) {
	switch format {
	case models.FormatHTML:
		return e.exportHTML(diff, opts)
	case models.FormatJSON:
		return e.exportJSON(diff, opts)
	case models.FormatPDF:
		// PDF output is a deliberate stand-in: the rendered HTML document
		// bytes are returned as-is, no PDF layout is performed.
		e.logger.Debug().Msg("PDF export returns rendered HTML bytes (surrogate)")
		return e.exportHTML(diff, opts)
	default:
		return nil, common.WrapErrorf(common.ErrUnsupportedFormat, "format '%s'", format)
	}
}

// paneRow is one rendered line in a side-by-side pane.
type paneRow struct {
	Line    int
	Type    models.TextChangeType
	Content string
}

// metadataRow is one rendered metadata change.
type metadataRow struct {
	Field      string
	ChangeType models.MetadataChangeType
	OldValue   string
	NewValue   string
}

type reportData struct {
	Left        models.VersionSummary
	Right       models.VersionSummary
	LeftRows    []paneRow
	RightRows   []paneRow
	Statistics  *models.Statistics
	Metadata    []metadataRow
	ComputedAt  time.Time
	Algorithm   string
	GeneratedAt time.Time
}

// exportHTML renders the standalone side-by-side document. Each pane is
// reconstructed independently from the flat change list: the left pane
// carries unchanged and removed entries, the right pane unchanged and added
// ones. html/template escapes every rendered line.
func (e *DiffExporter) exportHTML(diff *models.DiffResult, opts ExportOptions) ([]byte, error) {
	data := reportData{
		Left:        diff.LeftVersion.Summary(),
		Right:       diff.RightVersion.Summary(),
		ComputedAt:  diff.ComputedAt,
		Algorithm:   diff.AlgorithmUsed,
		GeneratedAt: time.Now(),
	}

	for _, change := range diff.TextDiff.Changes {
		switch change.Type {
		case models.TextUnchanged, models.TextRemove:
			data.LeftRows = append(data.LeftRows, paneRow{Line: change.LineOld, Type: change.Type, Content: change.Content})
		}
		switch change.Type {
		case models.TextUnchanged, models.TextAdd:
			data.RightRows = append(data.RightRows, paneRow{Line: change.LineNew, Type: change.Type, Content: change.Content})
		}
	}

	if opts.IncludeStatistics {
		stats := diff.Statistics
		data.Statistics = &stats
	}
	if opts.IncludeMetadata && len(diff.MetadataDiff) > 0 {
		data.Metadata = metadataRows(diff.MetadataDiff)
	}

	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, "diff_report.html.tmpl", data); err != nil {
		return nil, common.WrapError(err, "failed to render diff report")
	}
	return buf.Bytes(), nil
}

// jsonExport is the reduced projection used by the JSON format.
type jsonExport struct {
	LeftVersion  models.VersionSummary `json:"left_version"`
	RightVersion models.VersionSummary `json:"right_version"`
	Changes      []models.TextChange   `json:"changes"`
	MetadataDiff models.MetadataDiff   `json:"metadata_diff"`
	Statistics   *models.Statistics    `json:"statistics,omitempty"`
}

func (e *DiffExporter) exportJSON(diff *models.DiffResult, opts ExportOptions) ([]byte, error) {
	payload := jsonExport{
		LeftVersion:  diff.LeftVersion.Summary(),
		RightVersion: diff.RightVersion.Summary(),
		Changes:      diff.TextDiff.Changes,
		MetadataDiff: diff.MetadataDiff,
	}
	if opts.IncludeStatistics {
		stats := diff.Statistics
		payload.Statistics = &stats
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, common.WrapError(err, "failed to encode JSON export")
	}
	return encoded, nil
}

// metadataRows flattens the metadata diff into field-sorted rows so the
// rendered panel is deterministic.
func metadataRows(diff models.MetadataDiff) []metadataRow {
	fields := make([]string, 0, len(diff))
	for field := range diff {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	rows := make([]metadataRow, 0, len(fields))
	for _, field := range fields {
		entry := diff[field]
		rows = append(rows, metadataRow{
			Field:      field,
			ChangeType: entry.ChangeType,
			OldValue:   stringifyValue(entry.OldValue),
			NewValue:   stringifyValue(entry.NewValue),
		})
	}
	return rows
}

func stringifyValue(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded)
}
