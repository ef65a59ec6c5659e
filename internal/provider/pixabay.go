package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hubedu/imagesearch/internal/models"
)

const pixabayBaseURL = "https://pixabay.com/api"

// Pixabay searches the Pixabay API. Requires an API key, passed as a query
// parameter rather than a header.
type Pixabay struct {
	BaseURL string

	apiKey string
	client *http.Client
}

func NewPixabay(apiKey string) *Pixabay {
	return &Pixabay{
		BaseURL: pixabayBaseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (p *Pixabay) ID() models.ProviderID {
	return models.ProviderPixabay
}

func (p *Pixabay) Configured() bool {
	return p.apiKey != ""
}

type pixabayResponse struct {
	Hits []struct {
		ID             int    `json:"id"`
		WebformatURL   string `json:"webformatURL"`
		PreviewURL     string `json:"previewURL"`
		Tags           string `json:"tags"`
		User           string `json:"user"`
		WebformatWidth int    `json:"webformatWidth"`
		WebformatHeight int   `json:"webformatHeight"`
	} `json:"hits"`
}

func (p *Pixabay) Search(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	if !p.Configured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("image_type", "photo")
	params.Set("orientation", "horizontal")
	params.Set("category", "education,science")
	params.Set("min_width", "800")
	params.Set("min_height", "600")
	params.Set("per_page", strconv.Itoa(min(limit, 200)))
	params.Set("safesearch", "true")
	params.Set("order", "popular")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building pixabay request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay returned status %d", resp.StatusCode)
	}

	var data pixabayResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding pixabay response: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(data.Hits))
	for _, hit := range data.Hits {
		var tags []string
		for _, t := range strings.Split(hit.Tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		candidates = append(candidates, models.Candidate{
			ID:          "pixabay_" + strconv.Itoa(hit.ID),
			URL:         hit.WebformatURL,
			Thumbnail:   hit.PreviewURL,
			Title:       hit.Tags,
			Description: hit.Tags,
			Author:      authorOr(hit.User, "Pixabay"),
			Source:      models.ProviderPixabay,
			Width:       hit.WebformatWidth,
			Height:      hit.WebformatHeight,
			Tags:        tags,
		})
	}
	return candidates, nil
}
