package search

import (
	"strings"

	"github.com/hubedu/imagesearch/internal/models"
)

// inappropriateTerms flag confrontational or violent content that never
// belongs on a classroom slide, regardless of topic.
var inappropriateTerms = []string{
	"anti", "against", "opposition", "protest", "demonstration", "controversy",
	"debate", "dispute", "conflict", "war", "violence", "aggressive",
	"negative", "criticism", "complaint", "rejection", "refusal",
}

// medicalRelevantTerms gate vaccine-topic candidates: an image with none of
// these is off-topic for a vaccination query even when it is inoffensive.
var medicalRelevantTerms = []string{
	"vaccine", "vaccination", "injection", "syringe", "medical", "healthcare",
	"doctor", "nurse", "clinic", "hospital", "immunization", "prevention",
	"certificate", "card", "patient", "treatment", "medicine", "pharmaceutical",
}

// genericEducationContexts describe study settings rather than subjects. A
// candidate matching only these, without the literal query, is filler.
var genericEducationContexts = []string{
	"books", "library", "literature", "reading", "study", "academic",
	"classroom", "school", "education", "learning", "knowledge",
}

// IsInappropriate reports whether a candidate's text disqualifies it for
// educational use against the given query.
func IsInappropriate(text, query string) bool {
	text = strings.ToLower(text)
	query = strings.ToLower(query)

	for _, term := range inappropriateTerms {
		if strings.Contains(text, term) {
			return true
		}
	}

	// Vaccine topics get a stricter on-topic gate instead of the generic
	// education check.
	if strings.Contains(query, "vaccination") || strings.Contains(query, "vaccine") {
		for _, term := range medicalRelevantTerms {
			if strings.Contains(text, term) {
				return false
			}
		}
		return true
	}

	hasGenericEducation := false
	for _, ctx := range genericEducationContexts {
		if strings.Contains(text, ctx) {
			hasGenericEducation = true
			break
		}
	}
	if hasGenericEducation && !strings.Contains(text, query) {
		return true
	}

	return false
}

// DedupeByURL keeps the first candidate for each URL, preserving order.
func DedupeByURL(candidates []models.Candidate) []models.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		out = append(out, c)
	}
	return out
}
