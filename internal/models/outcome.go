package models

// Stage identifies which phase of the hierarchical search produced the
// outcome. There is no transition out of StageError.
type Stage string

const (
	// StageExact means results came from the literal-term search.
	StageExact Stage = "exact"
	// StageSemanticFallback means the exact stage was insufficient and the
	// expanded-query stage produced the results.
	StageSemanticFallback Stage = "semantic_fallback"
	// StageError means the orchestration itself failed (provider failures
	// alone never reach this state).
	StageError Stage = "error"
)

// String returns the wire name of the stage.
func (s Stage) String() string { return string(s) }

// SemanticExpansion describes the expanded query used by the fallback stage.
type SemanticExpansion struct {
	PrimaryQuery      string   `json:"primaryQuery"`
	ContextualQueries []string `json:"contextualQueries"`
	SemanticScore     float64  `json:"semanticScore"`
}

// SearchOutcome is the engine's final output for one request.
type SearchOutcome struct {
	Success          bool               `json:"success"`
	Images           []*Candidate       `json:"images"`
	TotalFound       int                `json:"totalFound"`
	SourcesUsed      []string           `json:"sourcesUsed"`
	Query            string             `json:"query"`
	OptimizedQuery   string             `json:"optimizedQuery"`
	FallbackUsed     bool               `json:"fallbackUsed"`
	SemanticAnalysis *SemanticExpansion `json:"semanticAnalysis"`
	SearchMethod     Stage              `json:"searchMethod"`
	Error            string             `json:"error,omitempty"`
}

// ErrorOutcome returns the terminal error outcome for a request.
func ErrorOutcome(query, message string) *SearchOutcome {
	return &SearchOutcome{
		Success:        false,
		Images:         []*Candidate{},
		SourcesUsed:    []string{},
		Query:          query,
		OptimizedQuery: query,
		FallbackUsed:   true,
		SearchMethod:   StageError,
		Error:          message,
	}
}
