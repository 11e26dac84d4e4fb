package differ

import (
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/revisiondiff/internal/config"
	"github.com/aleister1102/revisiondiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiffer computes line- or segment-oriented edit scripts between two
// version contents.
type TextDiffer struct {
	dmp             *diffmatchpatch.DiffMatchPatch
	semanticCleanup bool
	logger          zerolog.Logger
}

// NewTextDiffer creates a new text differ
func NewTextDiffer(logger zerolog.Logger, cfg config.DiffConfig) *TextDiffer {
	return &TextDiffer{
		dmp:             diffmatchpatch.New(),
		semanticCleanup: cfg.EnableSemanticCleanup,
		logger:          logger.With().Str("component", "TextDiffer").Logger(),
	}
}

// DiffText compares two texts at the requested granularity. It never fails;
// absent content must be passed as the empty string by the caller.
func (td *TextDiffer) DiffText(oldText, newText string, granularity models.Granularity) models.TextDiffResult {
	if granularity == models.GranularityRaw {
		return td.diffRaw(oldText, newText)
	}
	return td.diffLines(oldText, newText)
}

// diffRaw emits one change per non-equal diff span with the span's raw text.
func (td *TextDiffer) diffRaw(oldText, newText string) models.TextDiffResult {
	diffs := td.dmp.DiffMain(oldText, newText, false)
	if td.semanticCleanup {
		diffs = td.dmp.DiffCleanupSemantic(diffs)
	}

	result := models.TextDiffResult{
		Hunks:   []models.Hunk{},
		Changes: []models.TextChange{},
	}

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			result.Changes = append(result.Changes, models.TextChange{
				Type:    models.TextAdd,
				Content: diff.Text,
			})
			result.LinesAdded++
		case diffmatchpatch.DiffDelete:
			result.Changes = append(result.Changes, models.TextChange{
				Type:    models.TextRemove,
				Content: diff.Text,
			})
			result.LinesRemoved++
		}
	}

	result.SimilarityRatio = td.similarityRatio(diffs, oldText, newText)
	return result
}

// diffLines re-expresses the edit script over the two texts' line arrays
// and groups contiguous changes into hunks. An equal line closes the open
// hunk; adjacent hunks separated by a single equal line stay separate.
func (td *TextDiffer) diffLines(oldText, newText string) models.TextDiffResult {
	lineText1, lineText2, lineArray := td.dmp.DiffLinesToChars(oldText, newText)
	diffs := td.dmp.DiffMain(lineText1, lineText2, false)
	diffs = td.dmp.DiffCharsToLines(diffs, lineArray)

	result := models.TextDiffResult{
		Hunks:   []models.Hunk{},
		Changes: []models.TextChange{},
	}

	oldLine, newLine := 1, 1
	var hunk *models.Hunk

	closeHunk := func() {
		if hunk != nil && len(hunk.Changes) > 0 {
			result.Hunks = append(result.Hunks, *hunk)
		}
		hunk = nil
	}
	openHunk := func() {
		if hunk == nil {
			hunk = &models.Hunk{
				OldStart: oldLine,
				NewStart: newLine,
				Changes:  []models.TextChange{},
			}
		}
	}

	for _, diff := range diffs {
		for _, line := range splitSpanLines(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffEqual:
				closeHunk()
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				openHunk()
				change := models.TextChange{
					Type:    models.TextRemove,
					Content: line,
					LineOld: oldLine,
				}
				hunk.Changes = append(hunk.Changes, change)
				hunk.OldLines++
				result.Changes = append(result.Changes, change)
				result.LinesRemoved++
				oldLine++
			case diffmatchpatch.DiffInsert:
				openHunk()
				change := models.TextChange{
					Type:    models.TextAdd,
					Content: line,
					LineNew: newLine,
				}
				hunk.Changes = append(hunk.Changes, change)
				hunk.NewLines++
				result.Changes = append(result.Changes, change)
				result.LinesAdded++
				newLine++
			}
		}
	}
	closeHunk()

	result.SimilarityRatio = td.similarityRatio(diffs, oldText, newText)
	return result
}

// similarityRatio derives a [0,1] score from the edit distance implied by
// the computed script, relative to the longer input. Two empty inputs are
// identical by definition.
func (td *TextDiffer) similarityRatio(diffs []diffmatchpatch.Diff, oldText, newText string) float64 {
	maxLen := utf8.RuneCountInString(oldText)
	if n := utf8.RuneCountInString(newText); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}

	distance := td.dmp.DiffLevenshtein(diffs)
	ratio := 1 - float64(distance)/float64(maxLen)
	if ratio < 0 {
		ratio = 0
	}
	return ratio
}

// splitSpanLines splits a diff span into its lines, dropping the phantom
// empty element produced by a trailing newline.
func splitSpanLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
