package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hubedu/imagesearch/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "searches.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecentSearches(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &SearchRecord{
		Query:          "solar system",
		OptimizedQuery: "solar system",
		Subject:        "physics",
		Stage:          models.StageExact,
		TotalFound:     12,
		Returned:       3,
		SourcesUsed:    []string{"wikimedia", "unsplash"},
		Duration:       420 * time.Millisecond,
		CreatedAt:      time.Now().Add(-time.Minute),
	}
	if err := store.RecordSearch(ctx, first); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if first.ID == "" {
		t.Fatal("RecordSearch did not assign an ID")
	}

	second := &SearchRecord{
		Query:      "metallica",
		Stage:      models.StageSemanticFallback,
		TotalFound: 4,
		Returned:   3,
		Duration:   time.Second,
	}
	if err := store.RecordSearch(ctx, second); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}

	recent, err := store.RecentSearches(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	if recent[0].Query != "metallica" {
		t.Errorf("recent[0].Query = %q, want newest first", recent[0].Query)
	}

	got := recent[1]
	if got.Stage != models.StageExact {
		t.Errorf("Stage = %q", got.Stage)
	}
	if got.Duration != 420*time.Millisecond {
		t.Errorf("Duration = %v", got.Duration)
	}
	if len(got.SourcesUsed) != 2 || got.SourcesUsed[0] != "wikimedia" {
		t.Errorf("SourcesUsed = %v", got.SourcesUsed)
	}
}

func TestRecentSearchesLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		rec := &SearchRecord{
			Query:     "q",
			Stage:     models.StageExact,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := store.RecordSearch(ctx, rec); err != nil {
			t.Fatalf("RecordSearch: %v", err)
		}
	}

	recent, err := store.RecentSearches(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("got %d records, want 2", len(recent))
	}

	count, err := store.CountSearches(ctx)
	if err != nil {
		t.Fatalf("CountSearches: %v", err)
	}
	if count != 5 {
		t.Errorf("CountSearches = %d, want 5", count)
	}
}

func TestEmptyStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recent, err := store.RecentSearches(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSearches: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("got %d records from empty store", len(recent))
	}

	count, err := store.CountSearches(ctx)
	if err != nil || count != 0 {
		t.Errorf("CountSearches = (%d, %v), want (0, nil)", count, err)
	}
}
