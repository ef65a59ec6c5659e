package search

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/ranking"
	"github.com/hubedu/imagesearch/internal/relevance"
)

// Engine runs the two-stage hierarchical search: an exact-term stage, then a
// semantic-fallback stage iff the exact stage admits fewer candidates than
// requested. Only one stage's candidate pool reaches selection; pools are
// never merged across stages.
// DefaultFetchLimit is how many candidates each provider is asked for per
// stage. Fetching more than the requested count leaves the filters room to
// reject candidates without starving selection.
const DefaultFetchLimit = 10

type Engine struct {
	aggregator         *Aggregator
	detector           ThemeDetector
	logger             *zap.Logger
	relevanceThreshold float64
	fetchLimit         int
}

// NewEngine creates a search engine. A nil detector falls back to the
// static translation table.
func NewEngine(aggregator *Aggregator, detector ThemeDetector, logger *zap.Logger) *Engine {
	if detector == nil {
		detector = NewTableThemeDetector()
	}
	return &Engine{
		aggregator:         aggregator,
		detector:           detector,
		logger:             logger,
		relevanceThreshold: ranking.DefaultLocalRelevanceThreshold,
		fetchLimit:         DefaultFetchLimit,
	}
}

// SetFetchLimit overrides how many candidates each provider is asked for.
func (e *Engine) SetFetchLimit(limit int) {
	if limit > 0 {
		e.fetchLimit = limit
	}
}

// SetRelevanceThreshold overrides the lexical safety-net threshold used by
// the exact stage filter.
func (e *Engine) SetRelevanceThreshold(threshold float64) {
	if threshold > 0 {
		e.relevanceThreshold = threshold
	}
}

// Close releases the engine's worker pool.
func (e *Engine) Close() {
	e.aggregator.Close()
}

// Search executes one request through the state machine. Provider failures
// are absorbed inside the stages; only orchestration-level failures (a
// panic, or caller cancellation) reach the terminal error state.
func (e *Engine) Search(ctx context.Context, req models.SearchRequest) (outcome *models.SearchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("search orchestration panicked",
				zap.String("query", req.Query),
				zap.Any("panic", r))
			outcome = models.ErrorOutcome(req.Query, fmt.Sprintf("internal error: %v", r))
		}
	}()

	if err := req.Validate(); err != nil {
		return models.ErrorOutcome(req.Query, err.Error())
	}

	theme, err := e.detector.DetectTheme(ctx, req.Query, req.Subject)
	if err != nil {
		// Detector failure is non-fatal: search the raw query instead.
		e.logger.Warn("theme detection failed, using raw query",
			zap.String("query", req.Query),
			zap.Error(err))
		theme = Theme{Topic: req.Query, EnglishTopic: req.Query}
	}

	exactQuery := theme.EnglishTopic
	fanoutQuery := OptimizeQuery(exactQuery, req.Subject)

	e.logger.Info("exact stage",
		zap.String("query", req.Query),
		zap.String("exactQuery", exactQuery),
		zap.String("fanoutQuery", fanoutQuery))

	pool, exactSources := e.aggregator.Search(ctx, fanoutQuery, exactQuery, e.fetchLimit)
	if ctx.Err() != nil {
		return models.ErrorOutcome(req.Query, ctx.Err().Error())
	}

	admitted := e.filterExact(DedupeByURL(pool), exactQuery)

	if len(admitted) >= req.Count {
		sortByScore(admitted)
		return &models.SearchOutcome{
			Success:        true,
			Images:         toPointers(SelectDiverse(admitted, req.Count)),
			TotalFound:     len(admitted),
			SourcesUsed:    sourceNames(exactSources),
			Query:          req.Query,
			OptimizedQuery: exactQuery,
			FallbackUsed:   false,
			SearchMethod:   models.StageExact,
		}
	}

	e.logger.Info("semantic fallback stage",
		zap.String("query", req.Query),
		zap.Int("exactAdmitted", len(admitted)),
		zap.Int("requested", req.Count))

	expansion := Expand(theme.Topic, req.Subject)

	// The fallback pool replaces the exact pool entirely.
	pool, fallbackSources := e.aggregator.Search(ctx, expansion.PrimaryQuery, expansion.PrimaryQuery, e.fetchLimit)
	if ctx.Err() != nil {
		return models.ErrorOutcome(req.Query, ctx.Err().Error())
	}

	for i := range pool {
		pool[i].RelevanceScore += expansion.Confidence / 10
	}

	filtered := e.filterFallback(DedupeByURL(pool), exactQuery)
	sortByScore(filtered)
	images := SelectDiverse(filtered, req.Count)

	return &models.SearchOutcome{
		Success:        len(images) > 0,
		Images:         toPointers(images),
		TotalFound:     len(filtered),
		SourcesUsed:    sourceNames(unionSources(exactSources, fallbackSources)),
		Query:          req.Query,
		OptimizedQuery: expansion.PrimaryQuery,
		FallbackUsed:   true,
		SemanticAnalysis: &models.SemanticExpansion{
			PrimaryQuery:      expansion.PrimaryQuery,
			ContextualQueries: expansion.ContextualQueries,
			SemanticScore:     expansion.Confidence,
		},
		SearchMethod: models.StageSemanticFallback,
	}
}

// filterExact admits candidates the analyzer deems relevant, appropriate
// and free of false-positive context. A candidate the analyzer rejects can
// still be rescued by the lexical safety net, which exists to recover from
// analyzer false negatives; known wrong-sense matches stay out regardless.
func (e *Engine) filterExact(pool []models.Candidate, query string) []models.Candidate {
	admitted := make([]models.Candidate, 0, len(pool))
	for _, c := range pool {
		text := c.Text()
		if relevance.KnownFalsePositive(query, text) {
			continue
		}

		verdict := relevance.Analyze(query, text)
		if verdict.IsRelevant && !verdict.HasFalsePositive && !IsInappropriate(text, query) {
			admitted = append(admitted, c)
			continue
		}

		if ranking.LocalRelevance(query, text) >= e.relevanceThreshold {
			admitted = append(admitted, c)
		}
	}
	return admitted
}

// filterFallback is deliberately permissive: semantic-stage candidates are
// only screened for inappropriate content and known false positives, never
// for strict relevance.
func (e *Engine) filterFallback(pool []models.Candidate, query string) []models.Candidate {
	admitted := make([]models.Candidate, 0, len(pool))
	for _, c := range pool {
		text := c.Text()
		if relevance.KnownFalsePositive(query, text) {
			continue
		}
		if IsInappropriate(text, query) {
			continue
		}
		admitted = append(admitted, c)
	}
	return admitted
}

// sortByScore orders candidates by score, highest first, with a stable ID
// tie-break. The explicit sort guarantees provider arrival order never
// leaks into the output.
func sortByScore(candidates []models.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].RelevanceScore != candidates[j].RelevanceScore {
			return candidates[i].RelevanceScore > candidates[j].RelevanceScore
		}
		return candidates[i].ID < candidates[j].ID
	})
}

func toPointers(candidates []models.Candidate) []*models.Candidate {
	out := make([]*models.Candidate, len(candidates))
	for i := range candidates {
		out[i] = &candidates[i]
	}
	return out
}

func sourceNames(ids []models.ProviderID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func unionSources(a, b []models.ProviderID) []models.ProviderID {
	seen := make(map[models.ProviderID]bool, len(a)+len(b))
	out := make([]models.ProviderID, 0, len(a)+len(b))
	for _, id := range append(append([]models.ProviderID{}, a...), b...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
