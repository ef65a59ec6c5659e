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

const bingBaseURL = "https://api.bing.microsoft.com/v7.0/images/search"

// Bing searches the Bing Image Search API. Requires a subscription key.
type Bing struct {
	BaseURL string

	apiKey string
	client *http.Client
}

func NewBing(apiKey string) *Bing {
	return &Bing{
		BaseURL: bingBaseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (b *Bing) ID() models.ProviderID {
	return models.ProviderBing
}

func (b *Bing) Configured() bool {
	return b.apiKey != ""
}

type bingResponse struct {
	Value []struct {
		ImageID      string `json:"imageId"`
		ContentURL   string `json:"contentUrl"`
		ThumbnailURL string `json:"thumbnailUrl"`
		Name         string `json:"name"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		HostPageURL  string `json:"hostPageUrl"`
	} `json:"value"`
}

func (b *Bing) Search(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	if !b.Configured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(min(limit, 150)))
	params.Set("offset", "0")
	params.Set("mkt", "pt-BR")
	params.Set("safeSearch", "Moderate")
	params.Set("imageType", "Photo")
	params.Set("size", "Large")
	params.Set("aspect", "Wide")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building bing request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", b.apiKey)
	req.Header.Set("User-Agent", "ImageSearch/1.0")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bing returned status %d", resp.StatusCode)
	}

	var data bingResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding bing response: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(data.Value))
	for _, image := range data.Value {
		candidates = append(candidates, models.Candidate{
			ID:          "bing_" + image.ImageID,
			URL:         image.ContentURL,
			Thumbnail:   image.ThumbnailURL,
			Title:       image.Name,
			Description: image.Name,
			Author:      "Bing Images",
			Source:      models.ProviderBing,
			Width:       image.Width,
			Height:      image.Height,
			SourceURL:   image.HostPageURL,
		})
	}
	return candidates, nil
}
