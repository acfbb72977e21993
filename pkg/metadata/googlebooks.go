package metadata

import (
	"context"
	"fmt"
	"net/url"

	mhttp "github.com/openmediastation/mediaserver/pkg/http"
)

const booksMaxResults = 10

// GoogleBooks searches volumes by title. The api key is optional; without a host it is disabled.
type GoogleBooks struct {
	client *mhttp.RateLimitedClient
	scheme string
	host   string
	apiKey string
}

func NewGoogleBooks(client *mhttp.RateLimitedClient, scheme, host, apiKey string) *GoogleBooks {
	return &GoogleBooks{client: client, scheme: scheme, host: host, apiKey: apiKey}
}

func (g *GoogleBooks) Enabled() bool {
	return g != nil && g.host != ""
}

// Volume is one search hit
type Volume struct {
	Title string
	Year  int
	Book  Book
}

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		ID         string `json:"id"`
		VolumeInfo struct {
			Title               string   `json:"title"`
			Subtitle            string   `json:"subtitle"`
			Authors             []string `json:"authors"`
			Publisher           string   `json:"publisher"`
			PublishedDate       string   `json:"publishedDate"`
			Description         string   `json:"description"`
			PageCount           int      `json:"pageCount"`
			Categories          []string `json:"categories"`
			Language            string   `json:"language"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

func (g *GoogleBooks) URL(title string) string {
	q := url.Values{}
	q.Set("q", title)
	q.Set("printType", "books")
	q.Set("maxResults", fmt.Sprint(booksMaxResults))
	if g.apiKey != "" {
		q.Set("key", g.apiKey)
	}

	u := url.URL{Scheme: g.scheme, Host: g.host, Path: "/books/v1/volumes", RawQuery: q.Encode()}
	return u.String()
}

// Search returns the volumes matching title, best ranked first
func (g *GoogleBooks) Search(ctx context.Context, title string) ([]Volume, error) {
	var resp volumesResponse
	if err := g.client.GetJSON(ctx, g.URL(title), &resp); err != nil {
		return nil, fmt.Errorf("google books search for %q failed: %w", title, err)
	}

	volumes := make([]Volume, 0, len(resp.Items))
	for _, item := range resp.Items {
		info := item.VolumeInfo

		isbn := ""
		for _, id := range info.IndustryIdentifiers {
			if id.Type == "ISBN_13" || (isbn == "" && id.Type == "ISBN_10") {
				isbn = id.Identifier
			}
		}

		volumes = append(volumes, Volume{
			Title: info.Title,
			Year:  leadingYear(info.PublishedDate),
			Book: Book{
				VolumeID:      item.ID,
				Subtitle:      info.Subtitle,
				Authors:       info.Authors,
				Publisher:     info.Publisher,
				PublishedDate: info.PublishedDate,
				Description:   info.Description,
				PageCount:     info.PageCount,
				Categories:    info.Categories,
				Language:      info.Language,
				ISBN:          isbn,
				Thumbnail:     info.ImageLinks.Thumbnail,
			},
		})
	}

	return volumes, nil
}
