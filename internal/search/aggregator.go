package search

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/provider"
	"github.com/hubedu/imagesearch/internal/ranking"
	"github.com/hubedu/imagesearch/internal/relevance"
)

// DefaultProviderTimeout bounds each individual provider call.
const DefaultProviderTimeout = 8 * time.Second

// Aggregator fans one query out to every configured provider concurrently
// and merges the normalized, scored candidates. A provider that errors,
// times out, or panics contributes zero candidates and never delays or
// aborts its siblings.
type Aggregator struct {
	registry        *provider.Registry
	scorer          *ranking.Scorer
	pool            *ants.Pool
	providerTimeout time.Duration
	logger          *zap.Logger
}

// NewAggregator creates an aggregator backed by a shared worker pool. Pool
// size bounds concurrent upstream calls across all in-flight requests.
func NewAggregator(registry *provider.Registry, scorer *ranking.Scorer, poolSize int, logger *zap.Logger) (*Aggregator, error) {
	if poolSize < 1 {
		poolSize = len(registry.All())
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}
	return &Aggregator{
		registry:        registry,
		scorer:          scorer,
		pool:            pool,
		providerTimeout: DefaultProviderTimeout,
		logger:          logger,
	}, nil
}

// SetProviderTimeout overrides the per-provider call timeout.
func (a *Aggregator) SetProviderTimeout(d time.Duration) {
	if d > 0 {
		a.providerTimeout = d
	}
}

// Close releases the worker pool.
func (a *Aggregator) Close() {
	a.pool.Release()
}

// providerResult is one provider's contribution to a fan-out.
type providerResult struct {
	id         models.ProviderID
	candidates []models.Candidate
	err        error
}

// Search fans fanoutQuery out to all configured providers and returns every
// candidate, scored against relevanceQuery, plus the set of providers that
// contributed at least one result. The two queries differ when the fan-out
// query carries an educational-optimization suffix that should not skew
// relevance scoring.
func (a *Aggregator) Search(ctx context.Context, fanoutQuery, relevanceQuery string, limit int) ([]models.Candidate, []models.ProviderID) {
	providers := a.registry.Configured()
	if len(providers) == 0 {
		return nil, nil
	}

	results := make([]providerResult, len(providers))
	var wg sync.WaitGroup

	for i, p := range providers {
		wg.Add(1)
		i, p := i, p
		err := a.pool.Submit(func() {
			defer wg.Done()
			results[i] = a.searchOne(ctx, p, fanoutQuery, relevanceQuery, limit)
		})
		if err != nil {
			// Pool rejected the task (released or overloaded): treat like a
			// provider failure.
			results[i] = providerResult{id: p.ID(), err: err}
			wg.Done()
		}
	}
	wg.Wait()

	var merged []models.Candidate
	var sources []models.ProviderID
	for _, res := range results {
		if res.err != nil {
			a.logger.Warn("provider search failed",
				zap.String("provider", string(res.id)),
				zap.Error(res.err))
			continue
		}
		if len(res.candidates) == 0 {
			continue
		}
		merged = append(merged, res.candidates...)
		sources = append(sources, res.id)
	}
	return merged, sources
}

func (a *Aggregator) searchOne(ctx context.Context, p provider.Provider, fanoutQuery, relevanceQuery string, limit int) (res providerResult) {
	res.id = p.ID()

	// A panicking provider must not take down the whole fan-out.
	defer func() {
		if r := recover(); r != nil {
			res = providerResult{id: p.ID(), err: &panicError{value: r}}
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, a.providerTimeout)
	defer cancel()

	candidates, err := p.Search(callCtx, fanoutQuery, limit)
	if err != nil {
		res.err = err
		return res
	}

	for i := range candidates {
		verdict := relevance.Analyze(relevanceQuery, candidates[i].Text())
		candidates[i].RelevanceScore = a.scorer.Score(&candidates[i], relevanceQuery, verdict)
	}
	res.candidates = candidates
	return res
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return "provider panicked"
}
