package search

import (
	"sort"

	"github.com/hubedu/imagesearch/internal/models"
)

// SelectDiverse picks up to count candidates from a scored, deduplicated
// pool, preferring provider diversity over pure score maximization. One best
// candidate per provider is taken in priority order, then remaining slots
// are backfilled with the globally highest-scoring leftovers. Ties break on
// candidate ID so output never depends on input order.
func SelectDiverse(candidates []models.Candidate, count int) []models.Candidate {
	if count <= 0 || len(candidates) == 0 {
		return nil
	}

	pool := make([]models.Candidate, len(candidates))
	copy(pool, candidates)
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].RelevanceScore != pool[j].RelevanceScore {
			return pool[i].RelevanceScore > pool[j].RelevanceScore
		}
		return pool[i].ID < pool[j].ID
	})

	selected := make([]models.Candidate, 0, count)
	usedURLs := make(map[string]bool, count)

	for _, providerID := range models.ProviderPriority {
		if len(selected) >= count {
			break
		}
		for _, c := range pool {
			if c.Source != providerID || usedURLs[c.URL] {
				continue
			}
			selected = append(selected, c)
			usedURLs[c.URL] = true
			break
		}
	}

	for _, c := range pool {
		if len(selected) >= count {
			break
		}
		if usedURLs[c.URL] {
			continue
		}
		selected = append(selected, c)
		usedURLs[c.URL] = true
	}

	return selected
}
