package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/provider"
	"github.com/hubedu/imagesearch/internal/ranking"
)

// stubProvider is a canned Provider for engine and aggregator tests.
type stubProvider struct {
	id         models.ProviderID
	candidates []models.Candidate
	err        error
	panics     bool
	queries    []string
}

func (s *stubProvider) ID() models.ProviderID { return s.id }
func (s *stubProvider) Configured() bool      { return true }

func (s *stubProvider) Search(_ context.Context, query string, _ int) ([]models.Candidate, error) {
	s.queries = append(s.queries, query)
	if s.panics {
		panic("provider exploded")
	}
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out, nil
}

func newTestAggregator(t *testing.T, providers ...provider.Provider) *Aggregator {
	t.Helper()
	reg := provider.NewRegistryFrom(providers...)
	agg, err := NewAggregator(reg, ranking.NewScorer(nil), len(providers), zap.NewNop())
	if err != nil {
		t.Fatalf("NewAggregator: %v", err)
	}
	t.Cleanup(agg.Close)
	return agg
}

func candidate(id string, source models.ProviderID, title string) models.Candidate {
	return models.Candidate{
		ID:     id,
		URL:    "https://img/" + id,
		Title:  title,
		Source: source,
	}
}

func TestOptimizeQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		subject string
		want    string
	}{
		{"educational term passes through", "cell biology lab", "math", "cell biology lab"},
		{"subject term appended", "pythagoras", "math", "pythagoras mathematics"},
		{"unknown subject leaves query alone", "pythagoras", "astrology", "pythagoras"},
		{"no subject leaves query alone", "pythagoras", "", "pythagoras"},
		{"subject key normalized", "pythagoras", "Math!", "pythagoras mathematics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OptimizeQuery(tt.query, tt.subject); got != tt.want {
				t.Errorf("OptimizeQuery(%q, %q) = %q, want %q", tt.query, tt.subject, got, tt.want)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	t.Run("specific mapping", func(t *testing.T) {
		exp := Expand("metallica", "")
		if exp.PrimaryQuery != "metallica band" {
			t.Errorf("PrimaryQuery = %q", exp.PrimaryQuery)
		}
		if exp.Confidence != 85 {
			t.Errorf("Confidence = %v, want 85", exp.Confidence)
		}
		if len(exp.ContextualQueries) != 3 {
			t.Errorf("ContextualQueries = %v, want 3 entries", exp.ContextualQueries)
		}
	})

	t.Run("portuguese topic translated before lookup", func(t *testing.T) {
		exp := Expand("vacinação", "")
		if exp.PrimaryQuery != "vaccination" {
			t.Errorf("PrimaryQuery = %q", exp.PrimaryQuery)
		}
		if exp.Confidence != 85 {
			t.Errorf("Confidence = %v, want 85", exp.Confidence)
		}
	})

	t.Run("containment match", func(t *testing.T) {
		exp := Expand("advanced mathematics topics", "")
		if exp.PrimaryQuery != "mathematics" {
			t.Errorf("PrimaryQuery = %q", exp.PrimaryQuery)
		}
	})

	t.Run("generic synthesis", func(t *testing.T) {
		exp := Expand("continental drift", "geography")
		if exp.PrimaryQuery != "continental drift" {
			t.Errorf("PrimaryQuery = %q", exp.PrimaryQuery)
		}
		if exp.Confidence != 70 {
			t.Errorf("Confidence = %v, want 70 for synthesized mapping", exp.Confidence)
		}
		if len(exp.ContextualQueries) != 2 || !strings.HasSuffix(exp.ContextualQueries[0], " concept") {
			t.Errorf("ContextualQueries = %v", exp.ContextualQueries)
		}
	})
}

func TestTableThemeDetector(t *testing.T) {
	d := NewTableThemeDetector()

	theme, err := d.DetectTheme(context.Background(), "Física", "")
	if err != nil {
		t.Fatalf("DetectTheme: %v", err)
	}
	if theme.EnglishTopic != "physics" {
		t.Errorf("EnglishTopic = %q, want physics", theme.EnglishTopic)
	}
	if theme.Topic != "Física" {
		t.Errorf("Topic = %q, want original preserved", theme.Topic)
	}

	theme, _ = d.DetectTheme(context.Background(), "quantum tunneling", "")
	if theme.EnglishTopic != "quantum tunneling" {
		t.Errorf("untranslatable topic changed: %q", theme.EnglishTopic)
	}
}

func TestIsInappropriate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  bool
	}{
		{"protest content", "crowd at an anti-government protest", "economy", true},
		{"violent content", "scenes of war and violence", "chemistry", true},
		{"clean on-topic", "molecule structure diagram", "chemistry", false},
		{"vaccine gate rejects off-topic", "a cute puppy in the park", "vaccination", true},
		{"vaccine gate accepts clinical", "doctor holding a syringe", "vaccination", false},
		{"generic education without topic", "students reading books in a library", "photosynthesis", true},
		{"generic education with topic", "photosynthesis lesson in a classroom", "photosynthesis", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInappropriate(tt.text, tt.query); got != tt.want {
				t.Errorf("IsInappropriate(%q, %q) = %v, want %v", tt.text, tt.query, got, tt.want)
			}
		})
	}
}

func TestDedupeByURL(t *testing.T) {
	in := []models.Candidate{
		{ID: "a", URL: "https://img/1"},
		{ID: "b", URL: "https://img/2"},
		{ID: "c", URL: "https://img/1"},
	}
	out := DedupeByURL(in)
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	if out[0].ID != "a" || out[1].ID != "b" {
		t.Errorf("dedupe must keep the first occurrence, got %v", []string{out[0].ID, out[1].ID})
	}
}

func TestSelectDiverse(t *testing.T) {
	t.Run("one per provider in priority order", func(t *testing.T) {
		// Five providers, one candidate each, strictly decreasing scores in
		// reverse priority order. Diversity must beat raw score.
		pool := []models.Candidate{
			{ID: "b", URL: "u1", Source: models.ProviderBing, RelevanceScore: 90},
			{ID: "px", URL: "u2", Source: models.ProviderPixabay, RelevanceScore: 80},
			{ID: "pe", URL: "u3", Source: models.ProviderPexels, RelevanceScore: 70},
			{ID: "un", URL: "u4", Source: models.ProviderUnsplash, RelevanceScore: 60},
			{ID: "wm", URL: "u5", Source: models.ProviderWikimedia, RelevanceScore: 50},
		}
		got := SelectDiverse(pool, 3)
		if len(got) != 3 {
			t.Fatalf("got %d, want 3", len(got))
		}
		want := []string{"wm", "un", "pe"}
		for i, id := range want {
			if got[i].ID != id {
				t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
			}
		}
	})

	t.Run("backfill by global score", func(t *testing.T) {
		pool := []models.Candidate{
			{ID: "w1", URL: "u1", Source: models.ProviderWikimedia, RelevanceScore: 90},
			{ID: "w2", URL: "u2", Source: models.ProviderWikimedia, RelevanceScore: 85},
			{ID: "w3", URL: "u3", Source: models.ProviderWikimedia, RelevanceScore: 40},
		}
		got := SelectDiverse(pool, 2)
		if len(got) != 2 {
			t.Fatalf("got %d, want 2", len(got))
		}
		if got[0].ID != "w1" || got[1].ID != "w2" {
			t.Errorf("got %v, want w1 then w2", []string{got[0].ID, got[1].ID})
		}
	})

	t.Run("duplicate urls occupy one slot", func(t *testing.T) {
		pool := []models.Candidate{
			{ID: "a", URL: "same", Source: models.ProviderWikimedia, RelevanceScore: 90},
			{ID: "b", URL: "same", Source: models.ProviderUnsplash, RelevanceScore: 80},
		}
		got := SelectDiverse(pool, 2)
		if len(got) != 1 {
			t.Fatalf("got %d, want 1", len(got))
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		if got := SelectDiverse(nil, 3); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestAggregatorIsolatesFailures(t *testing.T) {
	good := &stubProvider{
		id:         models.ProviderWikimedia,
		candidates: []models.Candidate{candidate("w1", models.ProviderWikimedia, "solar system diagram")},
	}
	failing := &stubProvider{id: models.ProviderUnsplash, err: errors.New("rate limited")}
	panicking := &stubProvider{id: models.ProviderBing, panics: true}
	empty := &stubProvider{id: models.ProviderPexels}

	agg := newTestAggregator(t, good, failing, panicking, empty)

	got, sources := agg.Search(context.Background(), "solar system", "solar system", 3)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].RelevanceScore <= 0 {
		t.Error("candidate was not scored on arrival")
	}
	if len(sources) != 1 || sources[0] != models.ProviderWikimedia {
		t.Errorf("sources = %v, want only wikimedia", sources)
	}
}

func TestEngineExactStage(t *testing.T) {
	wiki := &stubProvider{
		id: models.ProviderWikimedia,
		candidates: []models.Candidate{
			candidate("w1", models.ProviderWikimedia, "Solar system planets diagram"),
		},
	}
	eng := NewEngine(newTestAggregator(t, wiki), nil, zap.NewNop())

	out := eng.Search(context.Background(), models.SearchRequest{Query: "solar system", Count: 1})

	if !out.Success {
		t.Fatalf("Success = false: %+v", out)
	}
	if out.FallbackUsed || out.SearchMethod != models.StageExact {
		t.Errorf("expected exact stage, got method=%q fallback=%v", out.SearchMethod, out.FallbackUsed)
	}
	if len(out.Images) != 1 || out.Images[0].ID != "w1" {
		t.Errorf("Images = %+v", out.Images)
	}
	if out.SemanticAnalysis != nil {
		t.Error("SemanticAnalysis must be nil for the exact stage")
	}
	if len(out.SourcesUsed) != 1 || out.SourcesUsed[0] != "wikimedia" {
		t.Errorf("SourcesUsed = %v", out.SourcesUsed)
	}
	if len(wiki.queries) != 1 {
		t.Errorf("provider queried %d times, want 1", len(wiki.queries))
	}
}

func TestEngineFallbackTriggered(t *testing.T) {
	// The bird photo matches metallica's wrong-sense contexts and must stay
	// out of both stages; the band photo only survives the permissive
	// fallback filter.
	wiki := &stubProvider{
		id: models.ProviderWikimedia,
		candidates: []models.Candidate{
			candidate("bird", models.ProviderWikimedia, "aporonisu metallica bird species indonesia"),
			candidate("band", models.ProviderWikimedia, "metallica heavy metal stage show"),
		},
	}
	eng := NewEngine(newTestAggregator(t, wiki), nil, zap.NewNop())

	out := eng.Search(context.Background(), models.SearchRequest{Query: "metallica", Count: 3})

	if !out.FallbackUsed || out.SearchMethod != models.StageSemanticFallback {
		t.Fatalf("expected fallback, got method=%q fallback=%v", out.SearchMethod, out.FallbackUsed)
	}
	if out.SemanticAnalysis == nil {
		t.Fatal("SemanticAnalysis missing")
	}
	if out.SemanticAnalysis.PrimaryQuery != "metallica band" {
		t.Errorf("PrimaryQuery = %q", out.SemanticAnalysis.PrimaryQuery)
	}
	if out.SemanticAnalysis.SemanticScore != 85 {
		t.Errorf("SemanticScore = %v", out.SemanticAnalysis.SemanticScore)
	}
	if out.OptimizedQuery != "metallica band" {
		t.Errorf("OptimizedQuery = %q", out.OptimizedQuery)
	}

	for _, img := range out.Images {
		if img.ID == "bird" {
			t.Error("wrong-sense candidate admitted")
		}
	}
	if len(out.Images) != 1 || out.Images[0].ID != "band" {
		t.Errorf("Images = %+v", out.Images)
	}

	// Two fan-outs, one per stage.
	if len(wiki.queries) != 2 {
		t.Fatalf("provider queried %d times, want 2", len(wiki.queries))
	}
	if wiki.queries[1] != "metallica band" {
		t.Errorf("fallback query = %q", wiki.queries[1])
	}
}

func TestEngineAllProvidersFail(t *testing.T) {
	failing := &stubProvider{id: models.ProviderUnsplash, err: errors.New("network down")}
	eng := NewEngine(newTestAggregator(t, failing), nil, zap.NewNop())

	out := eng.Search(context.Background(), models.SearchRequest{Query: "photosynthesis", Count: 3})

	if out.Success {
		t.Error("Success = true with zero images")
	}
	if out.SearchMethod != models.StageSemanticFallback {
		t.Errorf("SearchMethod = %q, provider failures must not reach the error state", out.SearchMethod)
	}
	if len(out.Images) != 0 {
		t.Errorf("Images = %+v", out.Images)
	}
	if out.Error != "" {
		t.Errorf("Error = %q, provider failures are not orchestration errors", out.Error)
	}
}

func TestEngineCancelledContext(t *testing.T) {
	wiki := &stubProvider{id: models.ProviderWikimedia}
	eng := NewEngine(newTestAggregator(t, wiki), nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := eng.Search(ctx, models.SearchRequest{Query: "anything", Count: 3})
	if out.SearchMethod != models.StageError || out.Success {
		t.Errorf("expected error outcome on cancellation, got %+v", out)
	}
}

func TestEngineEmptyQuery(t *testing.T) {
	wiki := &stubProvider{id: models.ProviderWikimedia}
	eng := NewEngine(newTestAggregator(t, wiki), nil, zap.NewNop())

	out := eng.Search(context.Background(), models.SearchRequest{Query: ""})
	if out.SearchMethod != models.StageError || out.Error == "" {
		t.Errorf("expected validation error outcome, got %+v", out)
	}
}
