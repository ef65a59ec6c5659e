package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/config"
	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/provider"
	"github.com/hubedu/imagesearch/internal/ranking"
	"github.com/hubedu/imagesearch/internal/search"
	"github.com/hubedu/imagesearch/internal/storage"
)

type stubProvider struct {
	id         models.ProviderID
	candidates []models.Candidate
}

func (p *stubProvider) ID() models.ProviderID { return p.id }
func (p *stubProvider) Configured() bool      { return true }

func (p *stubProvider) Search(_ context.Context, _ string, _ int) ([]models.Candidate, error) {
	return append([]models.Candidate(nil), p.candidates...), nil
}

func newTestServer(t *testing.T, store storage.Store, candidates ...models.Candidate) *Server {
	t.Helper()
	registry := provider.NewRegistryFrom(&stubProvider{id: models.ProviderWikimedia, candidates: candidates})
	agg, err := search.NewAggregator(registry, ranking.NewScorer(nil), 2, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	engine := search.NewEngine(agg, nil, zap.NewNop())
	t.Cleanup(engine.Close)
	return NewServer(engine, store, &config.ServerConfig{Host: "localhost", Port: 8080}, zap.NewNop())
}

func searchCandidate(id, title string) models.Candidate {
	return models.Candidate{
		ID:     id,
		URL:    "https://img.example/" + id,
		Title:  title,
		Source: models.ProviderWikimedia,
		Width:  1200,
		Height: 800,
	}
}

func TestHandleSearch(t *testing.T) {
	srv := newTestServer(t, nil,
		searchCandidate("w1", "Photosynthesis diagram"),
		searchCandidate("w2", "Photosynthesis in leaves"),
	)

	body, _ := json.Marshal(models.SearchRequest{Query: "photosynthesis", Subject: "biology", Count: 2})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/images/search", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}
	var out models.SearchOutcome
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Success {
		t.Errorf("success: got false, error=%q", out.Error)
	}
	if len(out.Images) != 2 {
		t.Errorf("images: got %d, want 2", len(out.Images))
	}
	if out.SearchMethod != models.StageExact {
		t.Errorf("search method: got %s", out.SearchMethod)
	}
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	srv := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/images/search", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	srv.handleSearch(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestHandleSearch_EmptyQueryStillHTTP200(t *testing.T) {
	srv := newTestServer(t, nil)

	body, _ := json.Marshal(models.SearchRequest{Query: "   "})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/images/search", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.handleSearch(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	var out models.SearchOutcome
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Success {
		t.Error("success should be false for an empty query")
	}
	if out.Error == "" {
		t.Error("error message should be set")
	}
}

func TestHandleSearch_RecordsHistory(t *testing.T) {
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "searches.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	srv := newTestServer(t, store,
		searchCandidate("w1", "Photosynthesis diagram"),
		searchCandidate("w2", "Photosynthesis in leaves"),
		searchCandidate("w3", "Photosynthesis experiment"),
	)

	body, _ := json.Marshal(models.SearchRequest{Query: "photosynthesis", Count: 3})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/images/search", bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("search status: got %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent", nil)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("recent status: got %d", w.Code)
	}
	var out struct {
		Searches []*storage.SearchRecord `json:"searches"`
		Total    int64                   `json:"total"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Total != 1 || len(out.Searches) != 1 {
		t.Fatalf("history: got total=%d records=%d", out.Total, len(out.Searches))
	}
	rec := out.Searches[0]
	if rec.Query != "photosynthesis" {
		t.Errorf("recorded query: got %q", rec.Query)
	}
	if rec.Returned != 3 {
		t.Errorf("recorded returned: got %d", rec.Returned)
	}
}

func TestHandleRecentSearches_NoStore(t *testing.T) {
	srv := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent", nil)
	w := httptest.NewRecorder()
	srv.handleRecentSearches(w, r)

	if w.Code != http.StatusNotImplemented {
		t.Errorf("status: got %d, want 501", w.Code)
	}
}

func TestHandleRecentSearches_InvalidLimit(t *testing.T) {
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "searches.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	srv := newTestServer(t, store)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/searches/recent?limit=abc", nil)
	w := httptest.NewRecorder()
	srv.handleRecentSearches(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", w.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status: got %d", w.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["status"] != "ok" {
		t.Errorf("status body: got %v", out)
	}
}

func TestSetEngineSwaps(t *testing.T) {
	srv := newTestServer(t, nil)
	old := srv.Engine()

	registry := provider.NewRegistryFrom(&stubProvider{id: models.ProviderWikimedia})
	agg, err := search.NewAggregator(registry, ranking.NewScorer(nil), 1, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	replacement := search.NewEngine(agg, nil, zap.NewNop())
	t.Cleanup(replacement.Close)

	srv.SetEngine(replacement)
	if srv.Engine() != replacement {
		t.Error("engine was not swapped")
	}
	if srv.Engine() == old {
		t.Error("old engine still active")
	}
}
