package ranking

import (
	"strings"
)

// DefaultLocalRelevanceThreshold is the admission cutoff for the
// local-relevance safety net.
const DefaultLocalRelevanceThreshold = 0.4

// domainKeywords signal educational or scientific imagery regardless of the
// query's own vocabulary. Their presence nudges a borderline candidate over
// the admission threshold.
var domainKeywords = []string{
	"diagram", "diagrama", "illustration", "ilustração",
	"chart", "gráfico", "infographic", "infográfico",
	"scientific", "científico", "educational", "educacional",
	"anatomy", "anatomia", "microscope", "microscópio",
	"experiment", "experimento", "formula", "fórmula",
	"map", "mapa", "model", "modelo",
}

// LocalRelevance is a cheap lexical fallback used when the category-based
// analyzer rejects a candidate: the fraction of query words present in the
// candidate's text, nudged up when domain keywords appear. Returns a value
// in [0, 1]. It exists to recover from analyzer false negatives, so it is
// deliberately more permissive than the analyzer itself.
func LocalRelevance(query, text string) float64 {
	words := QueryWords(query)
	if len(words) == 0 {
		return 0
	}

	text = strings.ToLower(text)
	matched := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			matched++
		}
	}

	score := float64(matched) / float64(len(words))
	if matched > 0 && containsAny(text, domainKeywords) {
		score += 0.2
	}

	if score > 1 {
		return 1
	}
	return score
}
