package relevance

import "strings"

// Verdict is the outcome of judging a candidate's text against a query's
// thematic category.
type Verdict struct {
	IsRelevant       bool
	HasFalsePositive bool
	Reason           string
	Category         Category
}

// Analyze classifies the query into a category and judges the candidate text
// against that category's vocabulary. A false-positive term only vetoes when
// no relevant term is present: a photo tagged both "tourism" and "galaxy"
// still counts for an astronomy query.
func Analyze(query, text string) Verdict {
	category := Classify(query)
	terms := TermsFor(category)

	hasRelevant := terms.Relevant.MatchesAny(text)
	hasFalsePositive := terms.FalsePositives.MatchesAny(text)

	if hasFalsePositive && !hasRelevant {
		return Verdict{
			IsRelevant:       false,
			HasFalsePositive: true,
			Reason:           "contexto " + category.FalsePositiveLabel,
			Category:         category,
		}
	}
	if !hasRelevant {
		return Verdict{IsRelevant: false, Category: category}
	}
	return Verdict{IsRelevant: true, Category: category}
}

// knownFalsePositives maps ambiguous query terms to contexts that signal the
// result is about something else entirely. "metallica" is also a fly genus
// and a bird-photo tag cluster on stock sites; "apple", "orange" and "tiger"
// collide with fruit and wildlife photography.
var knownFalsePositives = map[string]*TermMatcher{
	"metallica": NewTermMatcher([]string{
		"bird", "pássaro", "ave", "nature", "natureza", "animal",
		"wildlife", "wild", "tropical",
		"indonesia", "halmahera", "widi", "islands", "ilhas",
		"red eyes", "olhos vermelhos",
		"aporonisu", "species", "espécie", "biological", "biológico",
		"insect", "inseto", "dragonfly", "libélula",
		"macro", "close-up", "flying", "voando", "branch", "galho",
		"diptera", "entomology", "entomologia",
	}),
	"apple": NewTermMatcher([]string{
		"fruit", "fruta", "tree", "árvore", "garden", "jardim",
		"orchard", "pomar",
		"red apple", "maçã vermelha", "green apple", "maçã verde",
	}),
	"orange": NewTermMatcher([]string{
		"fruit", "fruta", "citrus", "citrino", "juice", "suco",
		"tree", "árvore",
	}),
	"tiger": NewTermMatcher([]string{
		"cat", "gato", "animal", "wildlife", "zoo",
		"jungle", "selva", "stripes", "listras",
	}),
}

var genericContextMatcher = NewTermMatcher([]string{
	"sticker", "logo", "text", "word", "letter", "font", "design",
})

var performanceContextMatcher = NewTermMatcher([]string{
	"band", "music", "concert",
})

// KnownFalsePositive reports whether the candidate text matches a known
// wrong-sense context for the query term, or appears in a purely generic
// context (stickers, logos, typography) without any performance signal.
func KnownFalsePositive(query, text string) bool {
	if m, ok := knownFalsePositives[strings.ToLower(strings.TrimSpace(query))]; ok && m.MatchesAny(text) {
		return true
	}
	if genericContextMatcher.MatchesAny(text) && !performanceContextMatcher.MatchesAny(text) {
		return true
	}
	return false
}
