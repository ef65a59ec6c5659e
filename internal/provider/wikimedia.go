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

const wikimediaBaseURL = "https://commons.wikimedia.org/w/api.php"

// Wikimedia searches Wikimedia Commons. Needs no credentials, so it is
// always configured. Two round trips: a file-namespace search for titles,
// then an imageinfo lookup for URLs and dimensions.
type Wikimedia struct {
	BaseURL string

	client *http.Client
}

func NewWikimedia() *Wikimedia {
	return &Wikimedia{
		BaseURL: wikimediaBaseURL,
		client:  newHTTPClient(),
	}
}

func (w *Wikimedia) ID() models.ProviderID {
	return models.ProviderWikimedia
}

func (w *Wikimedia) Configured() bool {
	return true
}

type wikimediaSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type wikimediaInfoResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string `json:"title"`
			ImageInfo []struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
				Mime   string `json:"mime"`
			} `json:"imageinfo"`
		} `json:"pages"`
	} `json:"query"`
}

func (w *Wikimedia) Search(ctx context.Context, query string, limit int) ([]models.Candidate, error) {
	// Exclude document formats so slide decks don't end up embedding PDFs.
	searchQuery := query + " -filetype:pdf -filetype:doc -filetype:docx" +
		" filetype:jpg OR filetype:png OR filetype:gif OR filetype:svg OR filetype:webp"

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "search")
	params.Set("srsearch", searchQuery)
	params.Set("srnamespace", "6")
	params.Set("srlimit", strconv.Itoa(min(limit, 50)))
	params.Set("srprop", "size")
	params.Set("origin", "*")

	var search wikimediaSearchResponse
	if err := w.get(ctx, params, &search); err != nil {
		return nil, fmt.Errorf("wikimedia search: %w", err)
	}
	if len(search.Query.Search) == 0 {
		return nil, nil
	}

	titles := make([]string, 0, len(search.Query.Search))
	for _, item := range search.Query.Search {
		titles = append(titles, item.Title)
	}

	infoParams := url.Values{}
	infoParams.Set("action", "query")
	infoParams.Set("format", "json")
	infoParams.Set("titles", strings.Join(titles, "|"))
	infoParams.Set("prop", "imageinfo")
	infoParams.Set("iiprop", "url|size|mime")
	infoParams.Set("origin", "*")

	var info wikimediaInfoResponse
	if err := w.get(ctx, infoParams, &info); err != nil {
		return nil, fmt.Errorf("wikimedia imageinfo: %w", err)
	}

	var candidates []models.Candidate
	for pageID, page := range info.Query.Pages {
		if len(page.ImageInfo) == 0 {
			continue
		}
		ii := page.ImageInfo[0]
		if !isImageMime(ii.Mime) || !isImageURL(ii.URL) {
			continue
		}
		title := strings.TrimPrefix(page.Title, "File:")
		candidates = append(candidates, models.Candidate{
			ID:          "wikimedia_" + pageID,
			URL:         ii.URL,
			Title:       title,
			Description: title,
			Author:      "Wikimedia Commons",
			Source:      models.ProviderWikimedia,
			Width:       ii.Width,
			Height:      ii.Height,
		})
	}
	return candidates, nil
}

func (w *Wikimedia) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func isImageMime(mime string) bool {
	return strings.HasPrefix(mime, "image/")
}

var imageURLMarkers = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", "commons/",
}

func isImageURL(u string) bool {
	if u == "" {
		return false
	}
	for _, marker := range imageURLMarkers {
		if strings.Contains(u, marker) {
			return true
		}
	}
	return false
}
