// Package config provides configuration loading and structs for the image search server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hubedu/imagesearch/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Providers ProvidersConfig `yaml:"providers"`
	Search    SearchConfig    `yaml:"search"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ProvidersConfig holds API credentials for the image providers.
// Keys left empty here fall back to the corresponding environment
// variables; Wikimedia Commons needs no key.
type ProvidersConfig struct {
	UnsplashAccessKey string `yaml:"unsplash_access_key"` // env: UNSPLASH_ACCESS_KEY
	PixabayAPIKey     string `yaml:"pixabay_api_key"`     // env: PIXABAY_API_KEY
	BingSearchAPIKey  string `yaml:"bing_search_api_key"` // env: BING_SEARCH_API_KEY
	PexelsAPIKey      string `yaml:"pexels_api_key"`      // env: PEXELS_API_KEY
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	DefaultCount           int                   `yaml:"default_count"`            // default: 3
	MaxCount               int                   `yaml:"max_count"`                // default: 10
	PerProviderLimit       int                   `yaml:"per_provider_limit"`       // default: 10
	PoolSize               int                   `yaml:"pool_size"`                // default: number of providers
	ProviderTimeoutSeconds int                   `yaml:"provider_timeout_seconds"` // default: 8
	RelevanceThreshold     float64               `yaml:"relevance_threshold"`      // default: 0.4
	Scoring                ranking.ScoringConfig `yaml:"scoring"`
}

// ProviderTimeout returns the per-provider timeout as a duration.
func (s *SearchConfig) ProviderTimeout() time.Duration {
	return time.Duration(s.ProviderTimeoutSeconds) * time.Second
}

// AnalyticsConfig holds settings for the search history store.
type AnalyticsConfig struct {
	Enabled      *bool  `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// EnabledOrDefault reports whether search history is on; defaults to true
// when unset.
func (a *AnalyticsConfig) EnabledOrDefault() bool {
	if a.Enabled != nil {
		return *a.Enabled
	}
	return true
}

// Load reads and parses the config file at path, resolves provider keys
// from the environment, and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Analytics.DatabasePath = expandPath(cfg.Analytics.DatabasePath, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
