package ranking

import (
	"testing"

	"github.com/hubedu/imagesearch/internal/models"
	"github.com/hubedu/imagesearch/internal/relevance"
)

func TestScorerScore(t *testing.T) {
	scorer := NewScorer(nil)

	tests := []struct {
		name      string
		candidate models.Candidate
		query     string
		verdict   relevance.Verdict
		wantMin   float64
		wantMax   float64
	}{
		{
			name: "exact query match with category bonus",
			candidate: models.Candidate{
				Title:  "Solar system planets in orbit",
				Source: models.ProviderWikimedia,
			},
			query:   "solar system",
			verdict: relevance.Verdict{IsRelevant: true, Category: relevance.CategoryAstronomy},
			// 60 exact + 20+20 words + 40 astronomy + 15 wikimedia, clamped
			wantMin: 100,
			wantMax: 100,
		},
		{
			name: "false positive penalty applies after bonus",
			candidate: models.Candidate{
				Title:  "Lake Como tourism in Italy",
				Source: models.ProviderPixabay,
			},
			query:   "solar system",
			verdict: relevance.Verdict{HasFalsePositive: true, Category: relevance.CategoryAstronomy},
			// 40 astronomy - 50 penalty + 6 pixabay
			wantMin: 0,
			wantMax: 10,
		},
		{
			name: "generic stock penalized without literal query",
			candidate: models.Candidate{
				Title:  "Business meeting in a modern office",
				Source: models.ProviderUnsplash,
			},
			query:   "photosynthesis",
			verdict: relevance.Verdict{Category: relevance.CategoryBiology},
			// 30 subject - 50 generic + 8 unsplash, clamps at 0
			wantMin: 0,
			wantMax: 0,
		},
		{
			name: "tag bonuses",
			candidate: models.Candidate{
				Title:  "Cell structure",
				Tags:   []string{"cell biology", "microscope"},
				Source: models.ProviderPexels,
			},
			query:   "cell biology",
			verdict: relevance.Verdict{IsRelevant: true, Category: relevance.CategoryBiology},
			// 20 word ("cell") + 30 subject + 25 tag exact + 9 pexels; the
			// full query never appears in the title
			wantMin: 84,
			wantMax: 84,
		},
		{
			name: "aspect ratio bonus",
			candidate: models.Candidate{
				Title:  "unrelated",
				Width:  1600,
				Height: 900,
				Source: models.ProviderBing,
			},
			query:   "photosynthesis",
			verdict: relevance.Verdict{Category: relevance.CategoryGeneral},
			// 5 aspect + 7 bing
			wantMin: 12,
			wantMax: 12,
		},
		{
			name: "anti-vaccination content penalized",
			candidate: models.Candidate{
				Title:  "Protest against vaccination",
				Source: models.ProviderUnsplash,
			},
			query:   "vaccination",
			verdict: relevance.Verdict{IsRelevant: true, Category: relevance.CategoryMedicine},
			// 60 exact + 20 word + 35 medicine - 50 negative + 8 unsplash
			wantMin: 60,
			wantMax: 80,
		},
		{
			name: "positive medical context rewarded",
			candidate: models.Candidate{
				Title:  "Nurse preparing a syringe at the clinic",
				Source: models.ProviderWikimedia,
			},
			query:   "vaccination",
			verdict: relevance.Verdict{IsRelevant: true, Category: relevance.CategoryMedicine},
			// 35 medicine + 30 medical + 15 wikimedia, no query text match
			wantMin: 80,
			wantMax: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(&tt.candidate, tt.query, tt.verdict)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("Score = %v, want in [%v, %v]", got, tt.wantMin, tt.wantMax)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score = %v out of [0, 100]", got)
			}
		})
	}
}

func TestScorerDeterministic(t *testing.T) {
	scorer := NewScorer(nil)
	c := models.Candidate{
		Title:       "Gravitational field diagram showing planets orbit",
		Description: "physics illustration",
		Tags:        []string{"gravity", "physics"},
		Width:       1920,
		Height:      1080,
		Source:      models.ProviderWikimedia,
	}
	v := relevance.Analyze("gravity", c.Text())

	first := scorer.Score(&c, "gravity", v)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(&c, "gravity", v); got != first {
			t.Fatalf("Score not deterministic: %v != %v", got, first)
		}
	}
	if first < 60 {
		t.Errorf("expected a high score for on-topic candidate, got %v", first)
	}
}

func TestScoringConfigApplyDefaults(t *testing.T) {
	cfg := &ScoringConfig{ExactQueryScore: 80}
	cfg.ApplyDefaults()

	if cfg.ExactQueryScore != 80 {
		t.Errorf("explicit value overwritten: %v", cfg.ExactQueryScore)
	}
	if cfg.WordMatchScore != 20 {
		t.Errorf("WordMatchScore = %v, want 20", cfg.WordMatchScore)
	}
	if cfg.WikimediaTrust != 15 {
		t.Errorf("WikimediaTrust = %v, want 15", cfg.WikimediaTrust)
	}
}

func TestQueryWords(t *testing.T) {
	words := QueryWords("The Solar System of us")
	if len(words) != 3 {
		t.Fatalf("QueryWords = %v, want 3 words", words)
	}
	for _, w := range []string{"the", "solar", "system"} {
		found := false
		for _, got := range words {
			if got == w {
				found = true
			}
		}
		if !found {
			t.Errorf("missing word %q in %v", w, words)
		}
	}
}

func TestLocalRelevance(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		text    string
		wantMin float64
		wantMax float64
	}{
		{"full overlap", "solar system", "the solar system explained", 1, 1},
		{"half overlap", "solar system", "solar panels on a roof", 0.5, 0.5},
		{"domain keyword boost", "solar system", "solar diagram", 0.7, 0.7},
		{"no overlap", "solar system", "a bowl of fruit", 0, 0},
		{"empty query", "", "anything", 0, 0},
		{"boost clamps at one", "solar system", "solar system diagram", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalRelevance(tt.query, tt.text)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("LocalRelevance = %v, want in [%v, %v]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}
