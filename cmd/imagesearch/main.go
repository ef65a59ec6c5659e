// Package main is the imagesearch CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/cli"
	"github.com/hubedu/imagesearch/internal/config"
	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/provider"
	"github.com/hubedu/imagesearch/internal/ranking"
	"github.com/hubedu/imagesearch/internal/search"
	"github.com/hubedu/imagesearch/internal/server"
	"github.com/hubedu/imagesearch/internal/storage"
	"github.com/hubedu/imagesearch/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/imagesearch/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "imagesearch server" from the project dir uses the project's config.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "recent":
		runRecent()
	case "version", "--version", "-v":
		fmt.Printf("imagesearch version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newEngine wires a search engine from config: provider registry, scorer,
// worker pool and the static theme detector.
func newEngine(cfg *config.Config, logger *zap.Logger) (*search.Engine, error) {
	registry := provider.NewRegistry(
		cfg.Providers.UnsplashAccessKey,
		cfg.Providers.PixabayAPIKey,
		cfg.Providers.BingSearchAPIKey,
		cfg.Providers.PexelsAPIKey,
	)
	scorer := ranking.NewScorer(&cfg.Search.Scoring)
	agg, err := search.NewAggregator(registry, scorer, cfg.Search.PoolSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize aggregator: %w", err)
	}
	agg.SetProviderTimeout(cfg.Search.ProviderTimeout())

	engine := search.NewEngine(agg, nil, logger)
	engine.SetRelevanceThreshold(cfg.Search.RelevanceThreshold)
	engine.SetFetchLimit(cfg.Search.PerProviderLimit)

	logger.Info("engine initialized",
		zap.Int("providers_configured", len(registry.Configured())),
		zap.Int("pool_size", cfg.Search.PoolSize))
	return engine, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	engine, err := newEngine(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize engine", zap.Error(err))
	}

	var store storage.Store
	if cfg.Analytics.EnabledOrDefault() {
		sqlStore, storeErr := storage.NewSQLiteStore(cfg.Analytics.DatabasePath)
		if storeErr != nil {
			logger.Fatal("Failed to initialize search history store", zap.Error(storeErr))
		}
		defer sqlStore.Close()
		store = sqlStore
	}

	srv := server.NewServer(engine, store, &cfg.Server, logger)

	// Reload the engine when the config file changes so provider keys and
	// scoring weights can be rotated without a restart.
	watchOpts := []config.WatcherOption{}
	if debugMode {
		watchOpts = append(watchOpts, config.WithLogger(logger))
	}
	watch := config.NewWatcher(resolvedConfigPath, func(path string) {
		newCfg, loadErr := config.Load(path)
		if loadErr != nil {
			logger.Warn("config reload failed, keeping current engine", zap.Error(loadErr))
			return
		}
		replacement, engErr := newEngine(newCfg, logger)
		if engErr != nil {
			logger.Warn("engine rebuild failed, keeping current engine", zap.Error(engErr))
			return
		}
		srv.SetEngine(replacement)
		logger.Info("engine reloaded after config change", zap.String("config_path", path))
	}, watchOpts...)
	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if err := watch.Start(watchCtx); err != nil {
		logger.Warn("config watch disabled", zap.Error(err))
	}
	defer watch.Stop()

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
	srv.Engine().Close()
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting.
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchArgsReorder moves any flags (and their values) that appear after the
// query to the front of the slice so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: imagesearch search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Examples:
  imagesearch search fotossíntese
  imagesearch search --subject biology "cell division"
  imagesearch search --count 5 --output json solar system
  imagesearch search --server "" gravidade       # direct provider access, no server needed
`)
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for direct mode)")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = call providers directly)")
	subject := fs.String("subject", "", "school subject for query optimization")
	count := fs.Int("count", models.DefaultResultCount, "number of images")
	outputFormat := fs.String("output", "text", "output format: text, compact, or json")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgs)

	if fs.NArg() < 1 {
		printSearchUsage(fs)
		os.Exit(1)
	}
	queryStr := buildSearchQuery(fs.Args())
	if queryStr == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}

	format := cli.OutputText
	switch *outputFormat {
	case "json":
		format = cli.OutputJSON
	case "text":
		format = cli.OutputText
	case "compact":
		format = cli.OutputCompact
	default:
		fmt.Printf("Unknown output format %q; use text, compact, or json\n", *outputFormat)
		os.Exit(1)
	}

	req := models.SearchRequest{
		Query:   queryStr,
		Subject: *subject,
		Count:   *count,
	}

	if *serverURL != "" {
		outcome, err := searchViaHTTP(*serverURL, req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Search failed: %v\n", err)
			os.Exit(1)
		}
		if err := cli.WriteSearchOutcome(os.Stdout, outcome, format); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Direct provider access (when server is not running).
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	engine, err := newEngine(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	outcome := engine.Search(context.Background(), req)
	if err := cli.WriteSearchOutcome(os.Stdout, outcome, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func searchViaHTTP(serverURL string, req models.SearchRequest) (*models.SearchOutcome, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(serverURL+"/api/v1/images/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var outcome models.SearchOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &outcome, nil
}

// recentResponse is the shape of GET /api/v1/searches/recent.
type recentResponse struct {
	Searches []*storage.SearchRecord `json:"searches"`
	Total    int64                   `json:"total"`
}

func runRecent() {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path (for direct mode)")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = read the database directly)")
	limit := fs.Int("limit", 20, "number of entries")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var recent recentResponse
	if *serverURL != "" {
		res, err := recentViaHTTP(*serverURL, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Recent searches failed: %v\n", err)
			os.Exit(1)
		}
		recent = *res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		store, err := storage.NewSQLiteStore(cfg.Analytics.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open search history: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		ctx := context.Background()
		records, err := store.RecentSearches(ctx, *limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Recent searches failed: %v\n", err)
			os.Exit(1)
		}
		total, err := store.CountSearches(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Count searches failed: %v\n", err)
			os.Exit(1)
		}
		recent = recentResponse{Searches: records, Total: total}
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(recent); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		fmt.Printf("%d searches total, showing %d most recent\n\n", recent.Total, len(recent.Searches))
		for _, rec := range recent.Searches {
			fmt.Printf("%s  %-30q  %s  found=%d returned=%d  %s\n",
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
				cli.Truncate(rec.Query, 28),
				rec.Stage,
				rec.TotalFound,
				rec.Returned,
				rec.Duration)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

func recentViaHTTP(serverURL string, limit int) (*recentResponse, error) {
	resp, err := http.Get(fmt.Sprintf("%s/api/v1/searches/recent?limit=%d", serverURL, limit))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(b))
	}
	var r recentResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &r, nil
}

func printUsage() {
	fmt.Println(`imagesearch - Educational image search across multiple providers

Usage:
  imagesearch server [flags]           Start the HTTP server
  imagesearch search [flags] <query>   Search for images
  imagesearch recent [flags]           Show recent searches
  imagesearch version                  Show version
  imagesearch help                     Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/imagesearch/config.yaml)
  --debug            Enable debug logging

Search Flags:
  --config string    Config file path (for direct mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") to call providers directly.
  --subject string   School subject used for query optimization
  --count int        Number of images (default: 3, max: 10)
  --output string    Output format: text, compact, or json (default: text)

Recent Flags:
  --config string    Config file path (for direct mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "") to read the database directly.
  --limit int        Number of entries (default: 20)
  --output string    Output format: text or json (default: text)

Examples:
  imagesearch server
  imagesearch search fotossíntese
  imagesearch search --subject biology "cell division"
  imagesearch search --output json solar system
  imagesearch recent --limit 10`)
}
