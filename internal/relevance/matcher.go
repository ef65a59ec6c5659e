package relevance

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// TermMatcher matches a fixed set of terms against arbitrary text using an
// Aho-Corasick automaton. Matching is case-insensitive substring containment,
// not whole-word matching: the term "bird" matches "blackbird nest".
// A TermMatcher is immutable after construction and safe for concurrent use.
type TermMatcher struct {
	terms   []string
	machine *ahocorasick.Matcher
}

// NewTermMatcher builds a matcher over the given terms. Terms are lowercased
// once at construction; empty terms are dropped.
func NewTermMatcher(terms []string) *TermMatcher {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}
	return &TermMatcher{
		terms:   lowered,
		machine: ahocorasick.NewStringMatcher(lowered),
	}
}

// MatchesAny reports whether any term occurs as a substring of text.
func (m *TermMatcher) MatchesAny(text string) bool {
	if len(m.terms) == 0 {
		return false
	}
	return m.machine.Contains([]byte(strings.ToLower(text)))
}

// Matches returns the distinct terms found as substrings of text.
func (m *TermMatcher) Matches(text string) []string {
	if len(m.terms) == 0 {
		return nil
	}
	hits := m.machine.Match([]byte(strings.ToLower(text)))
	if len(hits) == 0 {
		return nil
	}
	found := make([]string, 0, len(hits))
	for _, idx := range hits {
		found = append(found, m.terms[idx])
	}
	return found
}

// Terms returns the lowercased term list the matcher was built from.
func (m *TermMatcher) Terms() []string {
	return m.terms
}
