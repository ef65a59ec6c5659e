package config

import (
	"os"
	"time"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/ranking"
	"github.com/hubedu/imagesearch/internal/search"
)

// ApplyDefaults sets default values for any zero values in cfg.
// Provider keys left empty in the file are resolved from the environment.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Providers.UnsplashAccessKey == "" {
		cfg.Providers.UnsplashAccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	}
	if cfg.Providers.PixabayAPIKey == "" {
		cfg.Providers.PixabayAPIKey = os.Getenv("PIXABAY_API_KEY")
	}
	if cfg.Providers.BingSearchAPIKey == "" {
		cfg.Providers.BingSearchAPIKey = os.Getenv("BING_SEARCH_API_KEY")
	}
	if cfg.Providers.PexelsAPIKey == "" {
		cfg.Providers.PexelsAPIKey = os.Getenv("PEXELS_API_KEY")
	}
	if cfg.Search.DefaultCount == 0 {
		cfg.Search.DefaultCount = models.DefaultResultCount
	}
	if cfg.Search.MaxCount == 0 {
		cfg.Search.MaxCount = models.MaxResultCount
	}
	if cfg.Search.PerProviderLimit == 0 {
		cfg.Search.PerProviderLimit = search.DefaultFetchLimit
	}
	if cfg.Search.ProviderTimeoutSeconds == 0 {
		cfg.Search.ProviderTimeoutSeconds = int(search.DefaultProviderTimeout / time.Second)
	}
	if cfg.Search.RelevanceThreshold == 0 {
		cfg.Search.RelevanceThreshold = ranking.DefaultLocalRelevanceThreshold
	}
	cfg.Search.Scoring.ApplyDefaults()
	if cfg.Analytics.DatabasePath == "" {
		cfg.Analytics.DatabasePath = "/usr/local/var/imagesearch/data/searches.db"
	}
}
