package relevance

// TermSet holds the compiled vocabularies used to judge a candidate against a
// category: relevant terms admit, false-positive terms veto only in the
// absence of a relevant match.
type TermSet struct {
	Relevant       *TermMatcher
	FalsePositives *TermMatcher
}

func newTermSet(relevant, falsePositives []string) *TermSet {
	return &TermSet{
		Relevant:       NewTermMatcher(relevant),
		FalsePositives: NewTermMatcher(falsePositives),
	}
}

// genericPeopleTerms covers lifestyle stock photography that pollutes image
// results for nearly every educational topic. Most categories share it as
// part of their false-positive vocabulary.
var genericPeopleTerms = []string{
	"woman", "mulher", "man", "homem", "person", "pessoa",
	"smiling", "sorrindo", "casual",
	"business", "negócio", "office", "escritório",
	"work", "trabalho", "meeting", "reunião",
}

var genericTechTerms = []string{
	"technology", "tecnologia", "computer", "computador",
	"laptop", "notebook", "internet",
}

var touristTrapTerms = []string{
	"lake como", "como italy", "como lake", "varenna", "italy", "italian", "italiano",
	"landscape", "paisagem", "mountain", "montanha", "nature", "natureza",
	"forest", "floresta", "city", "cidade", "building", "edifício",
	"architecture", "arquitetura", "travel", "viagem", "vacation", "férias",
	"tourism", "turismo", "hotel", "restaurant", "restaurante",
	"swan", "cisne", "moonlight", "luar", "lake", "lago", "villa", "vila",
	"ballaster",
}

func joined(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

var categoryTermSets = map[string]*TermSet{
	CategoryGravity.Name: newTermSet(
		[]string{
			"gravity", "gravidade", "gravitational", "gravitacional",
			"mass", "massa", "weight", "peso", "attraction", "atração",
			"celestial", "celestial bodies", "planets", "planetas",
			"newton", "einstein", "space", "espaço", "universe", "universo", "cosmos",
			"orbit", "órbita", "orbital", "falling", "queda",
			"acceleration", "aceleração", "physics", "física",
			"force", "força", "motion", "movimento", "energy", "energia",
			"physics diagram", "diagrama de física",
			"scientific illustration", "ilustração científica",
			"physics concept", "conceito de física", "physical law", "lei física",
			"gravitational field", "campo gravitacional",
			"gravitational pull", "atração gravitacional",
			"earth", "terra", "moon", "lua", "sun", "sol",
			"solar system", "sistema solar", "black hole", "buraco negro",
			"spacetime", "espaço-tempo", "relativity", "relatividade",
		},
		joined(genericPeopleTerms, genericTechTerms, []string{
			"library", "biblioteca", "books", "livros",
			"education", "educação", "learning", "aprendizado",
			"school", "escola", "classroom", "sala de aula",
			"student", "estudante", "teacher", "professor",
			"water", "água", "drop", "gota", "splash", "salpico",
			"liquid", "líquido", "wet", "molhado",
			"lake", "lago", "como", "italy", "italian", "italiano",
			"landscape", "paisagem", "mountain", "montanha",
			"nature", "natureza", "forest", "floresta",
			"city", "cidade", "building", "edifício",
			"architecture", "arquitetura", "travel", "viagem",
			"vacation", "férias", "tourism", "turismo",
			"hotel", "restaurant", "restaurante",
			"swan", "cisne", "moonlight", "luar", "villa", "vila",
		}),
	),
	CategoryAstronomy.Name: newTermSet(
		[]string{
			"solar system", "sistema solar", "planet", "planeta",
			"sun", "sol", "moon", "lua", "mars", "marte", "earth", "terra",
			"jupiter", "saturn", "saturno", "venus", "vênus",
			"mercury", "mercúrio", "neptune", "netuno", "uranus", "urano",
			"pluto", "plutão", "asteroid", "asteroide", "comet", "cometa",
			"galaxy", "galáxia", "star", "estrela", "orbit", "órbita",
			"space", "espaço", "astronomy", "astronomia", "cosmos", "universo",
			"universe", "nebula", "nebulosa", "constellation", "constelação",
			"telescope", "telescópio", "satellite", "satélite",
			"spacecraft", "nave espacial", "rocket", "foguete", "nasa",
			"solar", "solar wind", "vento solar", "eclipse", "eclípse",
			"meteor", "meteoro",
		},
		touristTrapTerms,
	),
	CategoryMedicine.Name: newTermSet(
		[]string{
			"vaccine", "vaccination", "vacina", "vacinação",
			"injection", "injeção", "syringe", "seringa",
			"medical", "médico", "healthcare", "saúde",
			"doctor", "nurse", "enfermeiro",
			"clinic", "clínica", "hospital",
			"immunization", "imunização", "prevention", "prevenção",
			"certificate", "certificado", "card", "cartão",
			"patient", "paciente", "treatment", "tratamento",
			"medicine", "medicamento", "pharmaceutical", "farmacêutico",
			"surgery", "cirurgia",
		},
		joined(genericPeopleTerms, []string{
			"clothing", "roupa", "fashion", "moda", "beauty", "beleza",
			"lifestyle", "estilo de vida",
		}),
	),
	CategoryEnvironment.Name: newTermSet(
		[]string{
			"climate", "clima", "global warming", "aquecimento global",
			"greenhouse", "efeito estufa", "carbon", "carbono",
			"emission", "emissão", "temperature", "temperatura",
			"ice", "gelo", "glacier", "geleira", "polar",
			"arctic", "ártico", "antarctic", "antártico",
			"sea level", "nível do mar", "ocean", "oceano",
			"environment", "meio ambiente", "pollution", "poluição",
			"fossil fuel", "combustível fóssil", "renewable", "renovável",
			"solar", "wind", "vento", "deforestation", "desmatamento",
			"ecosystem", "ecossistema", "biodiversity", "biodiversidade",
			"sustainability", "sustentabilidade", "co2",
		},
		[]string{
			"laptop", "computador", "woman", "mulher", "man", "homem",
			"person", "pessoa", "work", "trabalho", "office", "escritório",
			"business", "negócio", "technology", "tecnologia",
			"internet", "digital",
		},
	),
	CategoryHistory.Name: newTermSet(
		[]string{
			"history", "história", "historical", "histórico",
			"ancient", "antigo", "medieval", "renaissance", "renascimento",
			"revolution", "revolução", "war", "guerra",
			"civilization", "civilização", "empire", "império",
			"kingdom", "reino", "dynasty", "dinastia",
			"monument", "monumento", "archaeological", "arqueológico",
			"artifact", "artefato", "museum", "museu",
			"heritage", "patrimônio",
		},
		[]string{
			"modern", "moderno", "contemporary", "contemporâneo",
			"technology", "tecnologia", "computer", "computador",
			"smartphone", "celular", "internet", "digital",
			"social media", "rede social", "app", "aplicativo",
		},
	),
	CategoryHistorical.Name: newTermSet(
		[]string{
			"document", "documento", "archive", "arquivo",
			"manuscript", "manuscrito", "letter", "carta",
			"treaty", "tratado", "declaration", "declaração",
			"newspaper", "jornal", "report", "relatório", "record", "registro",
			"map", "mapa", "territory", "território", "border", "fronteira",
			"region", "região", "country", "país", "nation", "nação",
			"geography", "geografia", "historical map", "mapa histórico",
			"leader", "líder", "politician", "político",
			"commander", "comandante", "general",
			"president", "presidente", "minister", "ministro",
			"historical figure", "figura histórica", "portrait", "retrato",
			"conference", "conferência", "meeting", "reunião",
			"summit", "cúpula", "ceremony", "cerimônia",
			"event", "evento", "occasion", "ocasião",
			"historical event", "evento histórico", "milestone", "marco",
			"weapon", "arma", "tank", "tanque", "aircraft", "aeronave",
			"ship", "navio", "uniform", "uniforme",
			"equipment", "equipamento", "vehicle", "veículo",
			"military equipment", "equipamento militar",
			"historical technology", "tecnologia histórica",
			"building", "edifício", "monument", "monumento", "memorial",
			"museum", "museu", "library", "biblioteca",
			"historical building", "edifício histórico", "landmark",
			"educational", "educacional", "learning", "aprendizado",
			"teaching", "ensino", "study", "estudo",
			"research", "pesquisa", "academic", "acadêmico",
			"history", "história", "historical", "histórico",
			"educational history", "história educacional",
		},
		[]string{
			"blood", "sangue", "corpse", "cadáver", "death", "morte",
			"killing", "matando", "execution", "execução",
			"torture", "tortura", "massacre",
			"bombing", "bombardeio", "destruction", "destruição",
			"ruins", "ruínas",
			"propaganda", "hate", "ódio", "racist", "racista",
			"supremacist", "supremacista", "extremist", "extremista",
			"adult", "adulto", "sexy", "sensual", "nude", "nu",
			"explicit", "explícito",
			"modern", "moderno", "contemporary", "contemporâneo",
			"current", "atual", "today", "hoje", "now", "agora",
			"recent", "recente",
			"abstract", "abstrato", "art", "arte", "painting", "pintura",
			"drawing", "desenho", "illustration", "ilustração",
			"cartoon", "desenho animado", "comic", "quadrinho",
			"advertisement", "anúncio", "commercial", "comercial",
			"marketing", "product", "produto", "sale", "venda",
			"buy", "comprar", "shop", "loja",
			"woman", "mulher", "man", "homem", "person", "pessoa",
			"smiling", "sorrindo", "casual", "business", "negócio",
			"office", "escritório", "work", "trabalho",
			"technology", "tecnologia", "computer", "computador",
			"laptop", "notebook",
			"library", "biblioteca", "books", "livros",
			"education", "educação", "learning", "aprendizado",
			"school", "escola", "classroom", "sala de aula",
			"student", "estudante", "teacher", "professor",
		},
	),
	CategoryGeography.Name: newTermSet(
		[]string{
			"geography", "geografia", "country", "país",
			"continent", "continente", "capital", "region", "região",
			"landscape", "paisagem", "terrain", "terreno",
			"climate", "clima", "population", "população",
			"culture", "cultura", "language", "idioma",
			"currency", "moeda", "border", "fronteira",
			"mountain", "montanha", "river", "rio",
			"lake", "lago", "ocean", "oceano",
		},
		joined(genericPeopleTerms, []string{
			"technology", "tecnologia", "computer", "computador",
			"laptop", "notebook",
		}),
	),
	CategoryMathematics.Name: newTermSet(
		[]string{
			"mathematics", "matemática", "math", "cálculo", "calculation",
			"equation", "equação", "formula", "fórmula",
			"geometry", "geometria", "algebra", "álgebra", "calculus",
			"statistics", "estatística", "probability", "probabilidade",
			"number", "número", "graph", "gráfico", "chart",
			"function", "função", "variable", "variável",
		},
		joined(genericPeopleTerms, genericTechTerms),
	),
	CategoryPhysics.Name: newTermSet(
		[]string{
			"physics", "física", "energy", "energia", "force", "força",
			"motion", "movimento", "wave", "onda", "particle", "partícula",
			"quantum", "quântico", "relativity", "relatividade",
			"gravity", "gravidade", "gravitational", "gravitacional",
			"mass", "massa", "weight", "peso", "attraction", "atração",
			"celestial", "celestial bodies", "planets", "planetas",
			"magnetism", "magnetismo", "electricity", "eletricidade",
			"electromagnetic", "eletromagnético",
			"experiment", "experimento", "laboratory", "laboratório",
			"measurement", "medição", "newton", "einstein",
			"space", "espaço", "universe", "universo", "cosmos",
			"orbit", "órbita", "orbital", "falling", "queda",
			"acceleration", "aceleração",
			"physics diagram", "diagrama de física",
			"scientific illustration", "ilustração científica",
			"physics concept", "conceito de física", "physical law", "lei física",
		},
		joined(genericPeopleTerms, genericTechTerms, []string{
			"library", "biblioteca", "books", "livros",
			"education", "educação", "learning", "aprendizado",
			"school", "escola", "classroom", "sala de aula",
			"student", "estudante", "teacher", "professor",
		}),
	),
	CategoryChemistry.Name: newTermSet(
		[]string{
			"chemistry", "química", "molecule", "molécula",
			"atom", "átomo", "reaction", "reação",
			"compound", "composto", "element", "elemento",
			"periodic table", "tabela periódica",
			"laboratory", "laboratório", "experiment", "experimento",
			"chemical", "químico", "bond", "ligação", "ion", "íon",
			"crystal", "cristal", "solution", "solução",
		},
		joined(genericPeopleTerms, genericTechTerms),
	),
	CategoryBiology.Name: newTermSet(
		[]string{
			"biology", "biologia", "cell", "célula", "dna",
			"genetics", "genética", "evolution", "evolução",
			"organism", "organismo", "ecosystem", "ecossistema",
			"species", "espécie", "habitat",
			"microscope", "microscópio", "laboratory", "laboratório",
			"research", "pesquisa", "protein", "proteína", "gene",
			"chromosome", "cromossomo", "mutation", "mutação",
			"plant", "planta", "leaf", "folha", "tree", "árvore",
			"flower", "flor", "green", "verde",
			"photosynthesis", "fotossíntese", "chlorophyll", "clorofila",
			"nature", "natureza", "botany", "botânica",
			"vegetation", "vegetação", "forest", "floresta",
			"garden", "jardim",
		},
		joined(genericPeopleTerms, genericTechTerms),
	),
	CategoryLiterature.Name: newTermSet(
		[]string{
			"literature", "literatura", "book", "livro",
			"poetry", "poesia", "novel", "romance",
			"author", "autor", "writer", "escritor",
			"poem", "poema", "story", "história",
			"character", "personagem", "plot", "enredo",
			"theme", "tema", "genre", "gênero",
			"classic", "clássico", "contemporary", "contemporâneo",
			"fiction", "ficção",
		},
		joined(genericPeopleTerms, genericTechTerms),
	),
	CategoryTechnology.Name: newTermSet(
		[]string{
			"technology", "tecnologia", "computer", "computador",
			"programming", "programação", "software", "hardware",
			"algorithm", "algoritmo", "code", "código",
			"data", "dados", "network", "rede", "internet",
			"artificial intelligence", "inteligência artificial",
			"machine learning", "aprendizado de máquina",
			"database", "banco de dados", "server", "servidor",
		},
		joined(genericPeopleTerms, []string{
			"lifestyle", "estilo de vida", "fashion", "moda",
			"beauty", "beleza",
		}),
	),
	CategoryArt.Name: newTermSet(
		[]string{
			"art", "arte", "painting", "pintura",
			"sculpture", "escultura", "music", "música",
			"artist", "artista", "museum", "museu",
			"gallery", "galeria", "exhibition", "exposição",
			"creative", "criativo", "aesthetic", "estético",
			"design", "color", "cor", "brush", "pincel",
			"canvas", "tela", "palette", "paleta",
			"technique", "técnica",
		},
		joined(genericPeopleTerms, genericTechTerms),
	),
	CategoryAnatomy.Name: newTermSet(
		[]string{
			"brain", "cérebro", "neuron", "neurônio", "neural",
			"nervous system", "sistema nervoso",
			"anatomy", "anatomia", "cortex", "córtex",
			"cerebral", "synapse", "sinapse",
			"neurotransmitter", "neurotransmissor",
			"spinal cord", "medula", "cerebellum", "cerebelo",
			"hippocampus", "hipocampo", "amygdala", "amígdala",
			"frontal lobe", "lobo frontal",
			"temporal lobe", "lobo temporal",
			"parietal lobe", "lobo parietal",
			"occipital lobe", "lobo occipital",
			"brainstem", "tronco cerebral",
			"thalamus", "tálamo", "hypothalamus", "hipotálamo",
			"gray matter", "matéria cinzenta",
			"white matter", "matéria branca",
			"dendrite", "dendrito", "axon", "axônio",
			"myelin", "mielina", "glial cell", "célula glial", "neuroglia",
			"brain scan", "tomografia cerebral",
			"mri", "ressonância magnética", "ct scan", "tomografia",
			"neurological", "neurológico", "cognitive", "cognitivo",
			"memory", "memória", "learning", "aprendizado",
		},
		joined([]string{
			"coronavirus", "covid", "virus", "vírus",
			"disease", "doença", "infection", "infecção",
			"symptoms", "sintomas", "medical", "médico",
			"hospital", "clinic", "clínica", "doctor",
		}, genericPeopleTerms, genericTechTerms, touristTrapTerms),
	),
	CategoryEducation.Name: newTermSet(
		[]string{
			"education", "educação", "school", "escola",
			"learning", "aprendizado", "study", "estudo",
			"teacher", "professor", "student", "estudante",
			"classroom", "sala de aula", "university", "universidade",
			"knowledge", "conhecimento", "teaching", "ensino",
			"academic", "acadêmico", "curriculum", "currículo",
			"lesson", "lição", "course", "curso",
			"training", "treinamento", "skill", "habilidade",
		},
		joined(genericPeopleTerms, genericTechTerms),
	),
	CategoryGeneral.Name: newTermSet(
		[]string{
			"general", "geral", "common", "comum",
			"basic", "básico", "simple", "simples",
			"basic concept", "conceito básico",
			"fundamental", "essential", "essencial",
		},
		joined(genericPeopleTerms, genericTechTerms, []string{
			"lifestyle", "estilo de vida", "fashion", "moda",
			"beauty", "beleza",
		}),
	),
}

// TermsFor returns the term set for a category, falling back to the general
// vocabulary when the category has no dedicated one.
func TermsFor(category Category) *TermSet {
	if ts, ok := categoryTermSets[category.Name]; ok {
		return ts
	}
	return categoryTermSets[CategoryGeneral.Name]
}
