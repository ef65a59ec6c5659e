// Package search implements the hierarchical image search engine: query
// optimization, concurrent provider fan-out, relevance filtering, semantic
// fallback and diversity selection.
package search

import (
	"strings"
)

// educationalKeywords holds per-subject vocabularies used to sharpen a query
// toward educational imagery. The first term of each list is the one
// appended when a query lacks any educational signal.
var educationalKeywords = map[string][]string{
	"biology":   {"biology", "science", "laboratory", "research", "microscope", "cell", "organism", "nature", "ecosystem"},
	"chemistry": {"chemistry", "laboratory", "experiment", "molecule", "atom", "reaction", "chemical", "science"},
	"physics":   {"physics", "experiment", "laboratory", "science", "energy", "force", "motion", "wave", "particle"},
	"math":      {"mathematics", "math", "equation", "formula", "graph", "chart", "calculation", "geometry", "algebra"},
	"history":   {"history", "historical", "ancient", "medieval", "renaissance", "civilization", "culture", "heritage"},
	"geography": {"geography", "landscape", "nature", "environment", "climate", "terrain", "geological", "earth"},
	"general":   {"education", "learning", "study", "academic", "school", "university", "knowledge", "teaching"},
}

// OptimizeQuery appends one subject-specific term to a query that carries no
// educational vocabulary of its own. Queries that already contain an
// educational keyword pass through untouched, and without a recognized
// subject nothing is appended: a generic "education" suffix attracts
// generic classroom stock photos.
func OptimizeQuery(query, subject string) string {
	clean := strings.ToLower(strings.TrimSpace(query))

	for _, keywords := range educationalKeywords {
		for _, kw := range keywords {
			if strings.Contains(clean, kw) {
				return query
			}
		}
	}

	key := normalizeSubjectKey(subject)
	keywords, ok := educationalKeywords[key]
	if !ok {
		return query
	}
	return strings.TrimSpace(query + " " + keywords[0])
}

func normalizeSubjectKey(subject string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(subject) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
