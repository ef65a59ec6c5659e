package ranking

import (
	"strings"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/relevance"
)

// genericStockPhrases flag lifestyle stock photography that providers return
// for almost any query. The penalty only applies when the literal query is
// absent from the candidate's text, so a genuinely on-topic office photo for
// an "office" query is unaffected.
var genericStockPhrases = []string{
	"person using laptop",
	"business meeting",
	"office desk",
	"smiling woman",
	"smiling man",
	"people working",
	"woman working",
	"man working",
	"team of people",
	"handshake",
	"startup office",
	"casual lifestyle",
}

var positiveMedicalTerms = []string{
	"injection", "syringe", "medical", "healthcare", "doctor",
	"nurse", "clinic", "hospital", "immunization", "prevention",
}

var negativeMedicalTerms = []string{
	"anti", "against", "opposition", "protest", "refusal",
}

// subjectCategories are the school-subject categories that share the flat
// SubjectCategoryBonus. Astronomy, medicine, environment and education carry
// their own tuned bonuses instead.
var subjectCategories = map[string]bool{
	relevance.CategoryGravity.Name:     true,
	relevance.CategoryPhysics.Name:     true,
	relevance.CategoryChemistry.Name:   true,
	relevance.CategoryBiology.Name:     true,
	relevance.CategoryMathematics.Name: true,
	relevance.CategoryHistory.Name:     true,
	relevance.CategoryHistorical.Name:  true,
	relevance.CategoryGeography.Name:   true,
	relevance.CategoryLiterature.Name:  true,
	relevance.CategoryTechnology.Name:  true,
	relevance.CategoryArt.Name:         true,
	relevance.CategoryAnatomy.Name:     true,
}

// Scorer computes a bounded relevance score for one candidate against a
// query. Scoring is pure: no I/O, no randomness, identical inputs always
// yield the identical score. Result ordering depends on this.
type Scorer struct {
	config *ScoringConfig
}

// NewScorer creates a new Scorer with the given config. A nil config uses
// the defaults.
func NewScorer(config *ScoringConfig) *Scorer {
	if config == nil {
		config = DefaultScoringConfig()
	}
	return &Scorer{config: config}
}

// Name returns the scorer name.
func (s *Scorer) Name() string {
	return "educational"
}

// Score computes the candidate's relevance score in [0, 100].
func (s *Scorer) Score(c *models.Candidate, query string, verdict relevance.Verdict) float64 {
	text := c.Text()
	exactQuery := strings.ToLower(strings.TrimSpace(query))
	words := QueryWords(query)

	score := 0.0

	// Exact full-query substring is the strongest signal.
	if exactQuery != "" && strings.Contains(text, exactQuery) {
		score += s.config.ExactQueryScore
	}

	for _, word := range words {
		if strings.Contains(text, word) {
			score += s.config.WordMatchScore
		}
	}

	score += s.categoryBonus(verdict.Category)

	if verdict.HasFalsePositive {
		score -= s.config.FalsePositivePenalty
	}

	if s.matchesGenericStock(text) && !strings.Contains(text, exactQuery) {
		score -= s.config.GenericStockPenalty
	}

	// Vaccine queries get an extra push toward clinical imagery and away
	// from protest coverage.
	if strings.Contains(exactQuery, "vaccin") || strings.Contains(exactQuery, "vacina") {
		if containsAny(text, positiveMedicalTerms) {
			score += s.config.MedicalContextBonus
		}
		if containsAny(text, negativeMedicalTerms) {
			score -= s.config.NegativeContextPenalty
		}
	}

	for _, tag := range c.Tags {
		tagLower := strings.ToLower(tag)
		if exactQuery != "" && strings.Contains(tagLower, exactQuery) {
			score += s.config.TagExactBonus
		} else if anyWordIn(tagLower, words) {
			score += s.config.TagWordBonus
		}
	}

	// Landscape images project better onto slides.
	if ratio := c.AspectRatio(); ratio >= s.config.AspectRatioMin && ratio <= s.config.AspectRatioMax {
		score += s.config.AspectRatioBonus
	}

	score += s.providerTrust(c.Source)

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func (s *Scorer) categoryBonus(category relevance.Category) float64 {
	switch {
	case category.IsGeneral():
		return 0
	case category.Name == relevance.CategoryAstronomy.Name:
		return s.config.AstronomyBonus
	case category.Name == relevance.CategoryMedicine.Name:
		return s.config.MedicineBonus
	case category.Name == relevance.CategoryEnvironment.Name:
		return s.config.EnvironmentBonus
	case category.Name == relevance.CategoryEducation.Name:
		return s.config.EducationBonus
	case subjectCategories[category.Name]:
		return s.config.SubjectCategoryBonus
	default:
		return s.config.OtherCategoryBonus
	}
}

func (s *Scorer) providerTrust(source models.ProviderID) float64 {
	switch source {
	case models.ProviderWikimedia:
		return s.config.WikimediaTrust
	case models.ProviderPexels:
		return s.config.PexelsTrust
	case models.ProviderUnsplash:
		return s.config.UnsplashTrust
	case models.ProviderBing:
		return s.config.BingTrust
	case models.ProviderPixabay:
		return s.config.PixabayTrust
	default:
		return 0
	}
}

func (s *Scorer) matchesGenericStock(text string) bool {
	return containsAny(text, genericStockPhrases)
}

// QueryWords splits a query into lowercased words longer than two
// characters. Short connective words carry no matching signal.
func QueryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			words = append(words, f)
		}
	}
	return words
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

func anyWordIn(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
