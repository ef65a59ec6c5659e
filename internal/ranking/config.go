package ranking

// ScoringConfig holds all configuration for candidate scoring.
type ScoringConfig struct {
	// Text matching scores
	ExactQueryScore float64 `yaml:"exact_query_score"` // default: 60
	WordMatchScore  float64 `yaml:"word_match_score"`  // default: 20

	// Penalties
	FalsePositivePenalty float64 `yaml:"false_positive_penalty"` // default: 50
	GenericStockPenalty  float64 `yaml:"generic_stock_penalty"`  // default: 50

	// Medical-topic adjustments
	MedicalContextBonus    float64 `yaml:"medical_context_bonus"`    // default: 30
	NegativeContextPenalty float64 `yaml:"negative_context_penalty"` // default: 50

	// Tag matching
	TagExactBonus float64 `yaml:"tag_exact_bonus"` // default: 25
	TagWordBonus  float64 `yaml:"tag_word_bonus"`  // default: 8

	// Image geometry
	AspectRatioBonus float64 `yaml:"aspect_ratio_bonus"` // default: 5
	AspectRatioMin   float64 `yaml:"aspect_ratio_min"`   // default: 1.2
	AspectRatioMax   float64 `yaml:"aspect_ratio_max"`   // default: 2.0

	// Category bonuses
	AstronomyBonus       float64 `yaml:"astronomy_bonus"`        // default: 40
	MedicineBonus        float64 `yaml:"medicine_bonus"`         // default: 35
	EnvironmentBonus     float64 `yaml:"environment_bonus"`      // default: 35
	EducationBonus       float64 `yaml:"education_bonus"`        // default: 25
	SubjectCategoryBonus float64 `yaml:"subject_category_bonus"` // default: 30
	OtherCategoryBonus   float64 `yaml:"other_category_bonus"`   // default: 20

	// Provider trust bonuses
	WikimediaTrust float64 `yaml:"wikimedia_trust"` // default: 15
	PexelsTrust    float64 `yaml:"pexels_trust"`    // default: 9
	UnsplashTrust  float64 `yaml:"unsplash_trust"`  // default: 8
	BingTrust      float64 `yaml:"bing_trust"`      // default: 7
	PixabayTrust   float64 `yaml:"pixabay_trust"`   // default: 6
}

// DefaultScoringConfig returns the default scoring configuration.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		ExactQueryScore: 60,
		WordMatchScore:  20,

		FalsePositivePenalty: 50,
		GenericStockPenalty:  50,

		MedicalContextBonus:    30,
		NegativeContextPenalty: 50,

		TagExactBonus: 25,
		TagWordBonus:  8,

		AspectRatioBonus: 5,
		AspectRatioMin:   1.2,
		AspectRatioMax:   2.0,

		AstronomyBonus:       40,
		MedicineBonus:        35,
		EnvironmentBonus:     35,
		EducationBonus:       25,
		SubjectCategoryBonus: 30,
		OtherCategoryBonus:   20,

		WikimediaTrust: 15,
		PexelsTrust:    9,
		UnsplashTrust:  8,
		BingTrust:      7,
		PixabayTrust:   6,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *ScoringConfig) ApplyDefaults() {
	defaults := DefaultScoringConfig()

	if c.ExactQueryScore == 0 {
		c.ExactQueryScore = defaults.ExactQueryScore
	}
	if c.WordMatchScore == 0 {
		c.WordMatchScore = defaults.WordMatchScore
	}
	if c.FalsePositivePenalty == 0 {
		c.FalsePositivePenalty = defaults.FalsePositivePenalty
	}
	if c.GenericStockPenalty == 0 {
		c.GenericStockPenalty = defaults.GenericStockPenalty
	}
	if c.MedicalContextBonus == 0 {
		c.MedicalContextBonus = defaults.MedicalContextBonus
	}
	if c.NegativeContextPenalty == 0 {
		c.NegativeContextPenalty = defaults.NegativeContextPenalty
	}
	if c.TagExactBonus == 0 {
		c.TagExactBonus = defaults.TagExactBonus
	}
	if c.TagWordBonus == 0 {
		c.TagWordBonus = defaults.TagWordBonus
	}
	if c.AspectRatioBonus == 0 {
		c.AspectRatioBonus = defaults.AspectRatioBonus
	}
	if c.AspectRatioMin == 0 {
		c.AspectRatioMin = defaults.AspectRatioMin
	}
	if c.AspectRatioMax == 0 {
		c.AspectRatioMax = defaults.AspectRatioMax
	}
	if c.AstronomyBonus == 0 {
		c.AstronomyBonus = defaults.AstronomyBonus
	}
	if c.MedicineBonus == 0 {
		c.MedicineBonus = defaults.MedicineBonus
	}
	if c.EnvironmentBonus == 0 {
		c.EnvironmentBonus = defaults.EnvironmentBonus
	}
	if c.EducationBonus == 0 {
		c.EducationBonus = defaults.EducationBonus
	}
	if c.SubjectCategoryBonus == 0 {
		c.SubjectCategoryBonus = defaults.SubjectCategoryBonus
	}
	if c.OtherCategoryBonus == 0 {
		c.OtherCategoryBonus = defaults.OtherCategoryBonus
	}
	if c.WikimediaTrust == 0 {
		c.WikimediaTrust = defaults.WikimediaTrust
	}
	if c.PexelsTrust == 0 {
		c.PexelsTrust = defaults.PexelsTrust
	}
	if c.UnsplashTrust == 0 {
		c.UnsplashTrust = defaults.UnsplashTrust
	}
	if c.BingTrust == 0 {
		c.BingTrust = defaults.BingTrust
	}
	if c.PixabayTrust == 0 {
		c.PixabayTrust = defaults.PixabayTrust
	}
}
