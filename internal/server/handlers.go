package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/storage"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("query", req.Query),
		zap.String("subject", req.Subject),
		zap.Int("count", req.Count))

	started := time.Now()
	outcome := s.Engine().Search(r.Context(), req)
	s.recordSearch(r, req, outcome, time.Since(started))

	// Validation failures and orchestration errors are reported inside
	// the outcome body. An empty result set is not an HTTP error either.
	s.respondJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleRecentSearches(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.respondError(w, http.StatusNotImplemented, "search history not enabled")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	records, err := s.store.RecentSearches(r.Context(), limit)
	if err != nil {
		s.logger.Error("recent searches failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total, err := s.store.CountSearches(r.Context())
	if err != nil {
		s.logger.Error("count searches failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"searches": records,
		"total":    total,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recordSearch logs the search to the history store. Best effort; a store
// failure never fails the search itself.
func (s *Server) recordSearch(r *http.Request, req models.SearchRequest, outcome *models.SearchOutcome, took time.Duration) {
	if s.store == nil || outcome == nil {
		return
	}
	rec := &storage.SearchRecord{
		Query:          req.Query,
		OptimizedQuery: outcome.OptimizedQuery,
		Subject:        req.Subject,
		Stage:          outcome.SearchMethod,
		TotalFound:     outcome.TotalFound,
		Returned:       len(outcome.Images),
		SourcesUsed:    outcome.SourcesUsed,
		Duration:       took,
	}
	if err := s.store.RecordSearch(r.Context(), rec); err != nil {
		s.logger.Warn("failed to record search", zap.Error(err))
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
