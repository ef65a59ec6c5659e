package models

import "fmt"

const (
	// DefaultResultCount is the number of images returned when the request
	// does not specify one.
	DefaultResultCount = 3
	// MaxResultCount caps how many images a single request may ask for.
	MaxResultCount = 10
)

// SearchRequest is an inbound image search request.
type SearchRequest struct {
	Query   string `json:"query"`
	Subject string `json:"subject,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// Validate ensures the request has valid fields and sets defaults.
// Returns an error if the query is empty; otherwise normalizes the count.
func (r *SearchRequest) Validate() error {
	if r.Query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if r.Count <= 0 {
		r.Count = DefaultResultCount
	}
	if r.Count > MaxResultCount {
		r.Count = MaxResultCount
	}
	return nil
}
