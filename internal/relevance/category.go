// Package relevance classifies queries into topic categories and judges
// whether candidate image text is topically relevant to a query.
package relevance

// Category is a topic bucket used to select relevant and false-positive term
// sets. Exactly one category is selected per query. Categories are static,
// immutable data; no new categories are created at runtime.
type Category struct {
	// Name keys into the term-set catalog.
	Name string
	// FalsePositiveLabel describes the kind of off-topic context that
	// produces false positives for this category. It becomes the verdict
	// reason when a candidate is rejected.
	FalsePositiveLabel string
}

// Built-in categories. The labels are the ones the product surfaces to
// content reviewers, hence the Portuguese wording.
var (
	CategoryHistorical  = Category{Name: "historical", FalsePositiveLabel: "histórico irrelevante"}
	CategoryGravity     = Category{Name: "gravity", FalsePositiveLabel: "genérico/não-físico"}
	CategoryAstronomy   = Category{Name: "astronomy", FalsePositiveLabel: "geográfico/turístico"}
	CategoryMedicine    = Category{Name: "medicine", FalsePositiveLabel: "genérico/não-médico"}
	CategoryEnvironment = Category{Name: "environment", FalsePositiveLabel: "tecnológico/genérico"}
	CategoryHistory     = Category{Name: "history", FalsePositiveLabel: "moderno/contemporâneo"}
	CategoryGeography   = Category{Name: "geography", FalsePositiveLabel: "genérico/não-geográfico"}
	CategoryMathematics = Category{Name: "mathematics", FalsePositiveLabel: "genérico/não-matemático"}
	CategoryPhysics     = Category{Name: "physics", FalsePositiveLabel: "genérico/não-físico"}
	CategoryChemistry   = Category{Name: "chemistry", FalsePositiveLabel: "genérico/não-químico"}
	CategoryBiology     = Category{Name: "biology", FalsePositiveLabel: "genérico/não-biológico"}
	CategoryLiterature  = Category{Name: "literature", FalsePositiveLabel: "genérico/não-literário"}
	CategoryTechnology  = Category{Name: "technology", FalsePositiveLabel: "genérico/não-tecnológico"}
	CategoryArt         = Category{Name: "art", FalsePositiveLabel: "genérico/não-artístico"}
	CategoryAnatomy     = Category{Name: "anatomy", FalsePositiveLabel: "genérico/não-anatômico"}
	CategoryEducation   = Category{Name: "education", FalsePositiveLabel: "genérico/não-educacional"}
	CategoryGeneral     = Category{Name: "general", FalsePositiveLabel: "genérico"}
)

// IsGeneral reports whether c is the fallback category.
func (c Category) IsGeneral() bool {
	return c.Name == CategoryGeneral.Name
}
