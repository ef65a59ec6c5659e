// Package storage persists the search log: one row per handled request,
// used for usage analytics. Logging is best-effort; a storage failure must
// never fail a search.
package storage

import (
	"context"
	"time"

	"github.com/hubedu/imagesearch/internal/models"
)

// SearchRecord is one logged search request.
type SearchRecord struct {
	ID             string        `json:"id"`
	Query          string        `json:"query"`
	OptimizedQuery string        `json:"optimizedQuery"`
	Subject        string        `json:"subject,omitempty"`
	Stage          models.Stage  `json:"stage"`
	TotalFound     int           `json:"totalFound"`
	Returned       int           `json:"returned"`
	SourcesUsed    []string      `json:"sourcesUsed"`
	Duration       time.Duration `json:"duration"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// Store defines search-log persistence operations.
type Store interface {
	RecordSearch(ctx context.Context, rec *SearchRecord) error
	RecentSearches(ctx context.Context, limit int) ([]*SearchRecord, error)
	CountSearches(ctx context.Context) (int64, error)

	Close() error
}
