// Package server provides the HTTP API for the image search service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/config"
	"github.com/hubedu/imagesearch/internal/search"
	"github.com/hubedu/imagesearch/internal/storage"
)

// Server is the HTTP server for the image search API.
type Server struct {
	mu     sync.RWMutex
	engine *search.Engine
	store  storage.Store
	config *config.ServerConfig
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies. store may be nil
// when search history is disabled.
func NewServer(
	engine *search.Engine,
	store storage.Store,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine: engine,
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// SetEngine swaps the search engine, closing the old one. Used when the
// config file changes at runtime.
func (s *Server) SetEngine(engine *search.Engine) {
	s.mu.Lock()
	old := s.engine
	s.engine = engine
	s.mu.Unlock()
	if old != nil && old != engine {
		old.Close()
	}
}

// Engine returns the current search engine.
func (s *Server) Engine() *search.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/images/search", s.handleSearch)
	r.Get("/api/v1/searches/recent", s.handleRecentSearches)
	r.Get("/health", s.handleHealth)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
