package search

import (
	"context"
	"strings"
)

// Theme is the detected topic of a query, carried in both the original
// language and English. Providers index English text far better, so the
// English form drives the exact-stage query.
type Theme struct {
	Topic        string
	EnglishTopic string
}

// ThemeDetector resolves a raw query into a search theme. Implementations
// may call external services; a detector failure is never fatal; the engine
// falls back to the raw query.
type ThemeDetector interface {
	DetectTheme(ctx context.Context, query, subject string) (Theme, error)
}

// TableThemeDetector is the default detector: a static Portuguese-to-English
// topic table, no network.
type TableThemeDetector struct{}

func NewTableThemeDetector() *TableThemeDetector {
	return &TableThemeDetector{}
}

func (d *TableThemeDetector) DetectTheme(_ context.Context, query, _ string) (Theme, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	english := normalized
	if translated, ok := translations[normalized]; ok {
		english = translated
	}

	return Theme{Topic: query, EnglishTopic: english}, nil
}
