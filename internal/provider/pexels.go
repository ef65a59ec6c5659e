package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hubedu/imagesearch/internal/models"
)

const pexelsBaseURL = "https://api.pexels.com/v1"

// Pexels searches the Pexels photo API. Requires an API key.
type Pexels struct {
	BaseURL string

	apiKey string
	client *http.Client
}

func NewPexels(apiKey string) *Pexels {
	return &Pexels{
		BaseURL: pexelsBaseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (p *Pexels) ID() models.ProviderID {
	return models.ProviderPexels
}

func (p *Pexels) Configured() bool {
	return p.apiKey != ""
}

type pexelsResponse struct {
	Photos []struct {
		ID              int    `json:"id"`
		URL             string `json:"url"`
		Alt             string `json:"alt"`
		Photographer    string `json:"photographer"`
		PhotographerURL string `json:"photographer_url"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		Src             struct {
			Large  string `json:"large"`
			Medium string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

func (p *Pexels) Search(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	if !p.Configured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(min(limit, 80)))
	params.Set("orientation", "landscape")
	params.Set("size", "large")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building pexels request: %w", err)
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pexels returned status %d", resp.StatusCode)
	}

	var data pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding pexels response: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(data.Photos))
	for _, photo := range data.Photos {
		candidates = append(candidates, models.Candidate{
			ID:          "pexels_" + strconv.Itoa(photo.ID),
			URL:         photo.Src.Large,
			Thumbnail:   photo.Src.Medium,
			Title:       photo.Alt,
			Description: photo.Alt,
			Author:      authorOr(photo.Photographer, "Pexels"),
			AuthorURL:   photo.PhotographerURL,
			Source:      models.ProviderPexels,
			Width:       photo.Width,
			Height:      photo.Height,
			SourceURL:   photo.URL,
		})
	}
	return candidates, nil
}
