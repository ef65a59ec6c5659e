// Package models defines core data structures for image search requests,
// candidates, and outcomes.
package models

import "strings"

// ProviderID identifies one of the supported image-search providers.
type ProviderID string

const (
	// ProviderUnsplash is the Unsplash photo API.
	ProviderUnsplash ProviderID = "unsplash"
	// ProviderPixabay is the Pixabay image API.
	ProviderPixabay ProviderID = "pixabay"
	// ProviderWikimedia is Wikimedia Commons (no credential required).
	ProviderWikimedia ProviderID = "wikimedia"
	// ProviderBing is the Bing Image Search API.
	ProviderBing ProviderID = "bing"
	// ProviderPexels is the Pexels photo API.
	ProviderPexels ProviderID = "pexels"
)

// ProviderPriority lists every known provider in diversity-selection order:
// curated/editorial sources first, generic stock sources last.
var ProviderPriority = []ProviderID{
	ProviderWikimedia,
	ProviderUnsplash,
	ProviderPexels,
	ProviderPixabay,
	ProviderBing,
}

// Candidate is one image result from one provider.
// URL is the dedup key: two candidates with equal URL are the same image
// regardless of which provider returned them. Candidates live only for
// the duration of a single request.
type Candidate struct {
	ID             string     `json:"id"`
	URL            string     `json:"url"`
	Thumbnail      string     `json:"thumbnail,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Author         string     `json:"author"`
	AuthorURL      string     `json:"authorUrl,omitempty"`
	Source         ProviderID `json:"source"`
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Tags           []string   `json:"tags"`
	RelevanceScore float64    `json:"relevanceScore"`
	DownloadURL    string     `json:"downloadUrl,omitempty"`
	SourceURL      string     `json:"sourceUrl,omitempty"`
}

// Text returns the candidate's searchable text (title plus description),
// lowercased. All relevance matching operates on this string.
func (c *Candidate) Text() string {
	return strings.ToLower(strings.TrimSpace(c.Title + " " + c.Description))
}

// AspectRatio returns width/height, or 0 when dimensions are unknown.
func (c *Candidate) AspectRatio() float64 {
	if c.Width <= 0 || c.Height <= 0 {
		return 0
	}
	return float64(c.Width) / float64(c.Height)
}
