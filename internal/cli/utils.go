// Package cli provides CLI output helpers for search outcomes.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hubedu/imagesearch/internal/models"
)

// SearchOutputFormat is the format for search result output.
type SearchOutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText SearchOutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON SearchOutputFormat = "json"
	// OutputCompact is one image per line, for piping.
	OutputCompact SearchOutputFormat = "compact"
)

// WriteSearchOutcome writes a search outcome to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteSearchOutcome(w io.Writer, outcome *models.SearchOutcome, format SearchOutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	case OutputCompact:
		writeSearchOutcomeCompact(w, outcome)
		return nil
	default:
		writeSearchOutcomeText(w, outcome)
		return nil
	}
}

func writeSearchOutcomeText(w io.Writer, outcome *models.SearchOutcome) {
	if outcome.Error != "" {
		fmt.Fprintf(w, "\nSearch failed: %s\n", outcome.Error)
		return
	}
	fmt.Fprintf(w, "\nFound %d images for %q (showing %d, method: %s)\n",
		outcome.TotalFound, outcome.Query, len(outcome.Images), outcome.SearchMethod)
	if outcome.OptimizedQuery != "" && outcome.OptimizedQuery != outcome.Query {
		fmt.Fprintf(w, "Searched as: %s\n", outcome.OptimizedQuery)
	}
	if len(outcome.SourcesUsed) > 0 {
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(outcome.SourcesUsed, ", "))
	}
	if outcome.FallbackUsed && outcome.SemanticAnalysis != nil {
		fmt.Fprintf(w, "Semantic fallback used (confidence %.0f): %s\n",
			outcome.SemanticAnalysis.SemanticScore,
			strings.Join(outcome.SemanticAnalysis.ContextualQueries, ", "))
	}
	fmt.Fprintln(w)
	for i, img := range outcome.Images {
		writeOneImage(w, i+1, img)
	}
}

func writeOneImage(w io.Writer, rank int, img *models.Candidate) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Rank: %d | Score: %.1f | Source: %s\n", rank, img.RelevanceScore, img.Source)
	if img.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", Truncate(img.Title, 120))
	}
	if img.Author != "" {
		fmt.Fprintf(w, "Author: %s\n", img.Author)
	}
	if img.Width > 0 && img.Height > 0 {
		fmt.Fprintf(w, "Size: %dx%d\n", img.Width, img.Height)
	}
	fmt.Fprintf(w, "URL: %s\n", img.URL)
	fmt.Fprintln(w)
}

func writeSearchOutcomeCompact(w io.Writer, outcome *models.SearchOutcome) {
	if outcome.Error != "" {
		fmt.Fprintf(w, "error\t%s\n", outcome.Error)
		return
	}
	for _, img := range outcome.Images {
		fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\n",
			img.RelevanceScore, img.Source, Truncate(img.Title, 60), img.URL)
	}
}

// PrintSearchOutcome prints a search outcome to stdout in text format.
func PrintSearchOutcome(outcome *models.SearchOutcome) {
	_ = WriteSearchOutcome(os.Stdout, outcome, OutputText)
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
