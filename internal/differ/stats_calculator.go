package differ

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/revisiondiff/internal/models"
)

// StatsCalculator derives aggregate statistics from the three diff outputs.
// It is a pure function of its inputs.
type StatsCalculator struct{}

// NewStatsCalculator creates a new stats calculator
func NewStatsCalculator() *StatsCalculator {
	return &StatsCalculator{}
}

// Calculate builds the statistics block for a comparison. Word and
// character counts use the net-delta heuristic: only the signed excess is
// reported in one direction, never both.
func (sc *StatsCalculator) Calculate(
	textDiff models.TextDiffResult,
	structuralDiff models.StructuralDiffResult,
	metadataDiff models.MetadataDiff,
	oldContent, newContent string,
) models.Statistics {
	oldWords := len(strings.Fields(oldContent))
	newWords := len(strings.Fields(newContent))
	oldChars := utf8.RuneCountInString(oldContent)
	newChars := utf8.RuneCountInString(newContent)

	stats := models.Statistics{
		LinesAdded:        textDiff.LinesAdded,
		LinesRemoved:      textDiff.LinesRemoved,
		LinesModified:     textDiff.LinesModified,
		WordsAdded:        netDelta(newWords, oldWords),
		WordsRemoved:      netDelta(oldWords, newWords),
		CharactersAdded:   netDelta(newChars, oldChars),
		CharactersRemoved: netDelta(oldChars, newChars),
		ChangePercent:     changePercent(oldChars, newChars),
		MajorChanges:      []string{},
	}

	structuralCount := len(structuralDiff.Changes)
	metadataCount := len(metadataDiff)

	stats.TotalChanges = len(textDiff.Changes) + structuralCount + metadataCount
	stats.ComplexityScore = stats.LinesModified*2 +
		stats.LinesAdded +
		stats.LinesRemoved +
		structuralCount*3 +
		metadataCount
	stats.ReviewTimeEstimate = int(math.Ceil(
		float64(stats.TotalChanges)*0.5 +
			float64(stats.WordsAdded)*0.01 +
			float64(stats.ComplexityScore)*0.1))

	stats.MajorChanges = sc.majorChanges(stats, structuralCount, metadataDiff)
	return stats
}

// majorChanges runs the fixed-order qualitative checks. Order is part of
// the output contract.
func (sc *StatsCalculator) majorChanges(stats models.Statistics, structuralCount int, metadataDiff models.MetadataDiff) []string {
	major := []string{}

	if _, ok := metadataDiff["title"]; ok {
		major = append(major, "Title changed")
	}
	if _, ok := metadataDiff["slug"]; ok {
		major = append(major, "URL slug modified")
	}
	if structuralCount > 5 {
		major = append(major, fmt.Sprintf("%d structural changes", structuralCount))
	}
	if stats.LinesAdded > 10 {
		major = append(major, fmt.Sprintf("%d lines added", stats.LinesAdded))
	}
	if stats.LinesRemoved > 10 {
		major = append(major, fmt.Sprintf("%d lines removed", stats.LinesRemoved))
	}
	if stats.ChangePercent > 50 {
		major = append(major, "Major content revision")
	}

	return major
}

func netDelta(a, b int) int {
	if a > b {
		return a - b
	}
	return 0
}

// changePercent reports the size delta relative to the old content, to one
// decimal place. Empty→empty is 0; empty→non-empty is 100.
func changePercent(oldChars, newChars int) float64 {
	if oldChars == 0 {
		if newChars == 0 {
			return 0
		}
		return 100
	}

	delta := newChars - oldChars
	if delta < 0 {
		delta = -delta
	}
	percent := float64(delta) / float64(oldChars) * 100
	return math.Round(percent*10) / 10
}
