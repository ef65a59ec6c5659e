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

const unsplashBaseURL = "https://api.unsplash.com"

// Unsplash searches the Unsplash photo API. Requires an access key.
type Unsplash struct {
	// BaseURL is overridable for tests.
	BaseURL string

	apiKey string
	client *http.Client
}

func NewUnsplash(apiKey string) *Unsplash {
	return &Unsplash{
		BaseURL: unsplashBaseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

func (u *Unsplash) ID() models.ProviderID {
	return models.ProviderUnsplash
}

func (u *Unsplash) Configured() bool {
	return u.apiKey != ""
}

type unsplashResponse struct {
	Results []struct {
		ID             string `json:"id"`
		Description    string `json:"description"`
		AltDescription string `json:"alt_description"`
		Width          int    `json:"width"`
		Height         int    `json:"height"`
		URLs           struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
		Tags []struct {
			Title string `json:"title"`
		} `json:"tags"`
		Links struct {
			DownloadLocation string `json:"download_location"`
		} `json:"links"`
	} `json:"results"`
}

func (u *Unsplash) Search(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	if !u.Configured() {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", strconv.Itoa(min(limit, 30)))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")
	params.Set("order_by", "relevant")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.BaseURL+"/search/photos?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building unsplash request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.apiKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	var data unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decoding unsplash response: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(data.Results))
	for _, photo := range data.Results {
		title := photo.Description
		if title == "" {
			title = photo.AltDescription
		}
		tags := make([]string, 0, len(photo.Tags))
		for _, t := range photo.Tags {
			tags = append(tags, t.Title)
		}
		candidates = append(candidates, models.Candidate{
			ID:          "unsplash_" + photo.ID,
			URL:         photo.URLs.Regular,
			Thumbnail:   photo.URLs.Thumb,
			Title:       title,
			Description: title,
			Author:      authorOr(photo.User.Name, "Unsplash"),
			AuthorURL:   photo.User.Links.HTML,
			Source:      models.ProviderUnsplash,
			Width:       photo.Width,
			Height:      photo.Height,
			Tags:        tags,
			DownloadURL: photo.Links.DownloadLocation,
		})
	}
	return candidates, nil
}

func authorOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
