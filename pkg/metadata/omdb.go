package metadata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/openmediastation/mediaserver/pkg/discovery"
	mhttp "github.com/openmediastation/mediaserver/pkg/http"
	"github.com/openmediastation/mediaserver/pkg/inventory"
)

// OMDb queries the open movie database by title. Without an api key it is disabled.
type OMDb struct {
	client *mhttp.RateLimitedClient
	scheme string
	host   string
	apiKey string
}

func NewOMDb(client *mhttp.RateLimitedClient, scheme, host, apiKey string) *OMDb {
	return &OMDb{client: client, scheme: scheme, host: host, apiKey: apiKey}
}

// Enabled reports whether lookups can be made
func (o *OMDb) Enabled() bool {
	return o != nil && o.apiKey != "" && o.host != ""
}

// VideoResult is a parsed OMDb answer
type VideoResult struct {
	Title string
	Year  int
	Video Video
}

type omdbResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Type       string `json:"Type"`
	Season     string `json:"Season"`
	Episode    string `json:"Episode"`
	Ratings    []struct {
		Source string `json:"Source"`
		Value  string `json:"Value"`
	} `json:"Ratings"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// omdbType maps a category to the type filter of the api
func omdbType(kind inventory.Kind) string {
	switch kind {
	case inventory.KindMovie:
		return "movie"
	case inventory.KindShow:
		return "series"
	case inventory.KindEpisode:
		return "episode"
	}
	return ""
}

// URL builds the query for req
func (o *OMDb) URL(req discovery.MetadataRequest) string {
	q := url.Values{}
	q.Set("apikey", o.apiKey)
	q.Set("t", req.Title)
	q.Set("plot", "short")
	if t := omdbType(req.Category); t != "" {
		q.Set("type", t)
	}
	if req.Year > 0 {
		q.Set("y", strconv.Itoa(req.Year))
	}
	if req.Season > 0 {
		q.Set("Season", strconv.Itoa(req.Season))
	}
	if req.Episode > 0 {
		q.Set("Episode", strconv.Itoa(req.Episode))
	}

	u := url.URL{Scheme: o.scheme, Host: o.host, Path: "/", RawQuery: q.Encode()}
	return u.String()
}

// Lookup fetches the best OMDb entry for req. An answer without a match is ErrNoMatch.
func (o *OMDb) Lookup(ctx context.Context, req discovery.MetadataRequest) (VideoResult, error) {
	var resp omdbResponse
	if err := o.client.GetJSON(ctx, o.URL(req), &resp); err != nil {
		return VideoResult{}, fmt.Errorf("omdb lookup of %q failed: %w", req.Title, err)
	}

	if !strings.EqualFold(resp.Response, "true") {
		return VideoResult{}, fmt.Errorf("%w: %s", ErrNoMatch, resp.Error)
	}

	result := VideoResult{
		Title: resp.Title,
		Year:  leadingYear(resp.Year),
		Video: Video{
			ImdbID:     resp.ImdbID,
			Type:       resp.Type,
			Rated:      resp.Rated,
			Released:   resp.Released,
			Runtime:    resp.Runtime,
			Genre:      resp.Genre,
			Director:   resp.Director,
			Writer:     resp.Writer,
			Actors:     resp.Actors,
			Plot:       resp.Plot,
			Language:   resp.Language,
			Country:    resp.Country,
			Poster:     resp.Poster,
			ImdbRating: resp.ImdbRating,
			Season:     req.Season,
			Episode:    req.Episode,
		},
	}
	for _, r := range resp.Ratings {
		result.Video.Ratings = append(result.Video.Ratings, Rating{Source: r.Source, Value: r.Value})
	}

	return result, nil
}

// leadingYear reads the first four digits of values like "2015–2019" or "2004-03-12"
func leadingYear(s string) int {
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return y
}
