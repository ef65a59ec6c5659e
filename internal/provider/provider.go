// Package provider implements the five upstream image-search clients and
// the ordered registry the aggregator fans out over.
package provider

import (
	"context"
	"net/http"
	"time"

	"github.com/hubedu/imagesearch/internal/models"
)

// Provider is one upstream image source. Search returns normalized
// candidates; a provider with missing credentials reports Configured()
// false and is skipped rather than treated as an error.
type Provider interface {
	ID() models.ProviderID
	Configured() bool
	Search(ctx context.Context, query string, limit int) ([]models.Candidate, error)
}

const defaultHTTPTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// Registry holds providers in the fixed fan-out order.
type Registry struct {
	providers []Provider
}

// NewRegistry builds a registry from the given credentials. Wikimedia
// Commons needs no key and is always present.
func NewRegistry(unsplashKey, pixabayKey, bingKey, pexelsKey string) *Registry {
	return &Registry{
		providers: []Provider{
			NewUnsplash(unsplashKey),
			NewPixabay(pixabayKey),
			NewWikimedia(),
			NewBing(bingKey),
			NewPexels(pexelsKey),
		},
	}
}

// NewRegistryFrom builds a registry over explicit providers, in order.
func NewRegistryFrom(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// Configured returns the providers that have credentials, in fan-out order.
func (r *Registry) Configured() []Provider {
	out := make([]Provider, 0, len(r.providers))
	for _, p := range r.providers {
		if p.Configured() {
			out = append(out, p)
		}
	}
	return out
}

// All returns every registered provider, configured or not.
func (r *Registry) All() []Provider {
	return r.providers
}
