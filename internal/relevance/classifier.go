package relevance

import (
	"strings"
)

// classifierRule binds an ordered keyword vocabulary to a category. Rules are
// evaluated top to bottom and the first match wins, so narrow categories
// (gravity, named historical events) must precede broad ones (physics,
// history). The order is load-bearing: reordering changes how ambiguous
// queries are categorized.
type classifierRule struct {
	matcher  *TermMatcher
	category Category
}

func newRule(category Category, keywords ...string) classifierRule {
	return classifierRule{matcher: NewTermMatcher(keywords), category: category}
}

// classifierRules is the primary rule cascade. The historical-keyword check
// runs first so war/conflict themes are never routed to a subject category
// with weaker content safeguards; gravity precedes physics because its term
// set carries stronger anti-tourism false-positive terms.
var classifierRules = []classifierRule{
	newRule(CategoryHistorical,
		"war", "guerra", "world war", "segunda guerra", "primeira guerra",
		"holocaust", "genocide", "genocídio", "nazi", "hitler", "stalin",
		"battle", "batalha", "conflict", "conflito", "military", "militar",
		"revolution", "revolução", "civil war", "guerra civil",
		"crusade", "cruzada", "invasion", "invasão", "occupation", "ocupação",
		"history", "história", "historical", "histórico", "ancient", "antigo",
		"medieval", "renaissance", "renascimento"),
	newRule(CategoryGravity,
		"gravidade", "gravity", "gravitational", "gravitacional",
		"mass", "massa", "weight", "peso", "attraction", "atração",
		"celestial", "celestial bodies"),
	newRule(CategoryAstronomy,
		"sistema solar", "solar system", "planeta", "planet",
		"astronomia", "astronomy", "espaço", "space",
		"galáxia", "galaxy", "estrela", "star"),
	newRule(CategoryMedicine,
		"vacinação", "vaccination", "vacina", "vaccine",
		"medicina", "medicine", "saúde", "health",
		"hospital", "clínica", "clinic"),
	newRule(CategoryEnvironment,
		"aquecimento", "global", "climate", "warming",
		"meio ambiente", "environment", "poluição", "pollution",
		"sustentabilidade", "sustainability"),
	newRule(CategoryHistory,
		"história", "history", "histórico", "historical",
		"antigo", "ancient", "medieval", "renascimento", "renaissance"),
	newRule(CategoryGeography,
		"geografia", "geography", "país", "country",
		"continente", "continent", "capital", "região", "region"),
	newRule(CategoryMathematics,
		"matemática", "mathematics", "matematica", "math",
		"cálculo", "calculation", "equação", "equation",
		"geometria", "geometry"),
	newRule(CategoryPhysics,
		"física", "physics", "fisica", "energia", "energy",
		"força", "force", "movimento", "motion",
		"gravidade", "gravity", "gravitational", "mass", "massa",
		"weight", "peso", "attraction", "atração",
		"celestial", "celestial bodies"),
	newRule(CategoryChemistry,
		"química", "chemistry", "quimica", "molécula", "molecule",
		"átomo", "atom", "reação", "reaction"),
	newRule(CategoryBiology,
		"biologia", "biology", "célula", "cell",
		"dna", "genética", "genetics", "evolução", "evolution"),
	newRule(CategoryLiterature,
		"literatura", "literature", "livro", "book",
		"poesia", "poetry", "romance", "novel"),
	newRule(CategoryTechnology,
		"tecnologia", "technology", "computador", "computer",
		"programação", "programming", "software", "hardware"),
	newRule(CategoryArt,
		"arte", "art", "pintura", "painting",
		"escultura", "sculpture", "música", "music"),
	newRule(CategoryAnatomy,
		"cérebro", "brain", "neurônio", "neuron",
		"anatomia", "anatomy", "sistema nervoso", "nervous system",
		"medula", "spinal cord", "córtex", "cortex",
		"sinapse", "synapse", "neurotransmissor", "neurotransmitter"),
	newRule(CategoryEducation,
		"educação", "education", "escola", "school",
		"aprender", "learning", "estudar", "study"),
	newRule(CategoryBiology,
		"plant", "planta", "leaf", "folha", "tree", "árvore",
		"flower", "flor", "photosynthesis", "fotossíntese",
		"green", "verde", "nature", "natureza"),
}

// fallbackClusters is the semantic fallback: broad keyword clusters tried in
// a fixed order when no primary rule fires.
var fallbackClusters = []classifierRule{
	newRule(CategoryPhysics,
		"science", "scientific", "ciência", "ciencia", "cientista",
		"experiment", "experimento", "laborator"),
	newRule(CategoryTechnology,
		"digital", "internet", "robot", "robô", "algorithm", "algoritmo",
		"code", "código", "dados", "data"),
	newRule(CategoryArt,
		"design", "desenho", "drawing", "criativ", "creative",
		"artist", "artista", "cultura", "culture"),
	newRule(CategoryMedicine,
		"doença", "disease", "sintoma", "symptom", "tratamento",
		"treatment", "remédio", "drug"),
	newRule(CategoryEnvironment,
		"ecolog", "reciclagem", "recycling", "floresta", "forest",
		"oceano", "ocean", "bioma", "biome"),
	newRule(CategoryEducation,
		"aula", "lesson", "curso", "course", "prova", "exam",
		"professor", "teacher", "aluno", "student"),
}

// singleKeywordCategories is consulted after the clusters: an exact word in
// the query maps straight to a category.
var singleKeywordCategories = map[string]Category{
	"planet":    CategoryAstronomy,
	"planeta":   CategoryAstronomy,
	"orbit":     CategoryAstronomy,
	"órbita":    CategoryAstronomy,
	"cell":      CategoryBiology,
	"célula":    CategoryBiology,
	"gene":      CategoryBiology,
	"atom":      CategoryChemistry,
	"átomo":     CategoryChemistry,
	"number":    CategoryMathematics,
	"número":    CategoryMathematics,
	"fraction":  CategoryMathematics,
	"fração":    CategoryMathematics,
	"music":     CategoryArt,
	"música":    CategoryArt,
	"poem":      CategoryLiterature,
	"poema":     CategoryLiterature,
	"map":       CategoryGeography,
	"mapa":      CategoryGeography,
	"empire":    CategoryHistory,
	"império":   CategoryHistory,
	"vaccine":   CategoryMedicine,
	"energy":    CategoryPhysics,
	"energia":   CategoryPhysics,
	"climate":   CategoryEnvironment,
	"clima":     CategoryEnvironment,
	"computer":  CategoryTechnology,
	"professor": CategoryEducation,
}

var questionWords = []string{
	"what", "how", "why", "when", "where", "which", "who",
	"o que", "como", "por que", "porque", "qual", "quando", "onde", "quem",
}

// Classify maps a free-text query to exactly one category. The primary rule
// cascade is tried first; unmatched queries fall through to the semantic
// fallback (keyword clusters, then single-keyword lookup, then a coarse
// query-shape heuristic), and finally to the general category.
func Classify(query string) Category {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return CategoryGeneral
	}

	for _, rule := range classifierRules {
		if rule.matcher.MatchesAny(q) {
			return rule.category
		}
	}

	for _, cluster := range fallbackClusters {
		if cluster.matcher.MatchesAny(q) {
			return cluster.category
		}
	}

	for _, word := range strings.Fields(q) {
		if cat, ok := singleKeywordCategories[word]; ok {
			return cat
		}
	}

	// Query-shape heuristic: numbers suggest a math exercise, question words
	// suggest a general study topic.
	if strings.ContainsAny(q, "0123456789") {
		return CategoryMathematics
	}
	for _, w := range questionWords {
		if strings.Contains(q, w) {
			return CategoryEducation
		}
	}

	return CategoryGeneral
}
