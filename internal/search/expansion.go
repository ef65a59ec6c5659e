package search

import (
	"strings"
)

// themeMapping is one entry of the static semantic expansion table.
type themeMapping struct {
	PrimaryTerms       []string
	ContextualTerms    []string
	VisualConcepts     []string
	EducationalContext []string
	RelatedSubjects    []string
}

// Expansion is the semantic query derived for the fallback stage.
// Confidence is 85 for a specific table entry, 70 for a synthesized one.
type Expansion struct {
	PrimaryQuery       string
	ContextualQueries  []string
	VisualQueries      []string
	EducationalQueries []string
	Confidence         float64
}

// translations maps common Portuguese topics to the English terms the
// providers index best.
var translations = map[string]string{
	"vacinação":  "vaccination",
	"vacina":     "vaccine",
	"matemática": "mathematics",
	"matematica": "mathematics",
	"biologia":   "biology",
	"física":     "physics",
	"fisica":     "physics",
	"química":    "chemistry",
	"quimica":    "chemistry",
	"história":   "history",
	"historia":   "history",
	"geografia":  "geography",
	"literatura": "literature",
	"metallica":  "metallica",
}

// themeOrder fixes the lookup order for the containment fallback so an
// ambiguous topic always resolves to the same entry.
var themeOrder = []string{
	"metallica", "mathematics", "biology", "history", "physics",
	"chemistry", "literature", "geography", "vaccination",
}

var themeMappings = map[string]themeMapping{
	"metallica": {
		PrimaryTerms:       []string{"metallica band", "metallica heavy metal", "metallica concert", "metallica music"},
		ContextualTerms:    []string{"heavy metal band", "thrash metal", "rock concert", "metal music", "guitar solo"},
		VisualConcepts:     []string{"dark", "intense", "energetic", "powerful", "metal"},
		EducationalContext: []string{"music history", "cultural impact", "artistic expression", "band history"},
		RelatedSubjects:    []string{"music", "culture", "entertainment", "art"},
	},
	"mathematics": {
		PrimaryTerms:       []string{"mathematics", "math", "calculation", "numbers"},
		ContextualTerms:    []string{"equation", "formula", "geometry", "algebra", "calculus"},
		VisualConcepts:     []string{"geometric", "precise", "logical", "systematic"},
		EducationalContext: []string{"problem solving", "logical thinking", "analytical skills"},
		RelatedSubjects:    []string{"science", "engineering", "physics", "statistics"},
	},
	"biology": {
		PrimaryTerms:       []string{"biology", "life science", "living organisms"},
		ContextualTerms:    []string{"cell", "DNA", "evolution", "ecosystem", "organism"},
		VisualConcepts:     []string{"organic", "natural", "complex", "interconnected"},
		EducationalContext: []string{"life processes", "scientific method", "nature study"},
		RelatedSubjects:    []string{"chemistry", "medicine", "environment", "genetics"},
	},
	"history": {
		PrimaryTerms:       []string{"history", "historical", "past events"},
		ContextualTerms:    []string{"ancient", "medieval", "revolution", "war", "civilization"},
		VisualConcepts:     []string{"vintage", "timeless", "documentary", "archaeological"},
		EducationalContext: []string{"cultural heritage", "social development", "historical analysis"},
		RelatedSubjects:    []string{"geography", "politics", "sociology", "anthropology"},
	},
	"physics": {
		PrimaryTerms:       []string{"physics", "physical science", "natural laws"},
		ContextualTerms:    []string{"energy", "force", "motion", "quantum", "relativity"},
		VisualConcepts:     []string{"dynamic", "theoretical", "experimental", "precise"},
		EducationalContext: []string{"scientific method", "mathematical modeling", "experimental verification"},
		RelatedSubjects:    []string{"mathematics", "chemistry", "engineering", "astronomy"},
	},
	"chemistry": {
		PrimaryTerms:       []string{"chemistry", "chemical", "molecular science"},
		ContextualTerms:    []string{"atom", "molecule", "reaction", "compound", "element"},
		VisualConcepts:     []string{"molecular", "crystalline", "reactive", "transformative"},
		EducationalContext: []string{"molecular interactions", "chemical processes", "laboratory work"},
		RelatedSubjects:    []string{"physics", "biology", "medicine", "materials science"},
	},
	"literature": {
		PrimaryTerms:       []string{"literature", "literary", "written works"},
		ContextualTerms:    []string{"novel", "poetry", "drama", "author", "writing"},
		VisualConcepts:     []string{"artistic", "expressive", "narrative", "creative"},
		EducationalContext: []string{"critical thinking", "cultural analysis", "creative expression"},
		RelatedSubjects:    []string{"language", "history", "philosophy", "art"},
	},
	"geography": {
		PrimaryTerms:       []string{"geography", "geographical", "earth science"},
		ContextualTerms:    []string{"landscape", "climate", "population", "environment", "region"},
		VisualConcepts:     []string{"topographical", "environmental", "spatial", "diverse"},
		EducationalContext: []string{"spatial analysis", "environmental awareness", "cultural geography"},
		RelatedSubjects:    []string{"environment", "economics", "politics", "sociology"},
	},
	"vaccination": {
		PrimaryTerms:       []string{"vaccination", "vaccine", "immunization", "medical vaccination"},
		ContextualTerms:    []string{"vaccine injection", "medical procedure", "healthcare", "immunity", "prevention"},
		VisualConcepts:     []string{"medical", "healthcare", "clinical", "sterile", "professional"},
		EducationalContext: []string{"public health", "medical education", "healthcare training", "immunology"},
		RelatedSubjects:    []string{"medicine", "health", "biology", "public health"},
	},
}

// Expand derives the semantic-fallback query for a topic. A table entry is
// looked up by the translated topic, then by containment either way; with no
// entry at all, a generic expansion is synthesized from the topic itself.
func Expand(topic, subject string) Expansion {
	normalized := strings.ToLower(strings.TrimSpace(topic))

	englishTopic := normalized
	if translated, ok := translations[normalized]; ok {
		englishTopic = translated
	}

	mapping, ok := themeMappings[englishTopic]
	if !ok {
		mapping, ok = themeMappings[normalized]
	}
	if !ok {
		for _, key := range themeOrder {
			if strings.Contains(englishTopic, key) || strings.Contains(key, englishTopic) ||
				strings.Contains(normalized, key) || strings.Contains(key, normalized) {
				mapping, ok = themeMappings[key], true
				break
			}
		}
	}
	if !ok {
		related := subject
		if related == "" {
			related = "general"
		}
		mapping = themeMapping{
			PrimaryTerms:       []string{englishTopic},
			ContextualTerms:    []string{englishTopic + " concept", englishTopic + " study"},
			VisualConcepts:     []string{"educational", "informative", "illustrative"},
			EducationalContext: []string{"learning", "education", "academic"},
			RelatedSubjects:    []string{related},
		}
	}

	confidence := 70.0
	if len(mapping.PrimaryTerms) > 1 {
		confidence = 85
	}

	return Expansion{
		PrimaryQuery:       mapping.PrimaryTerms[0],
		ContextualQueries:  firstN(mapping.ContextualTerms, 3),
		VisualQueries:      firstN(mapping.VisualConcepts, 2),
		EducationalQueries: firstN(mapping.EducationalContext, 2),
		Confidence:         confidence,
	}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
