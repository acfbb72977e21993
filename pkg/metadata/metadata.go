// Package metadata looks up descriptive data for inventory items and keeps one
// record per lookup, grouped by category.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/discovery"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
)

var (
	// ErrNoMatch is returned by providers that found nothing for a query
	ErrNoMatch = errors.New("no match")
	// ErrUnsupportedCategory is returned for categories no provider covers
	ErrUnsupportedCategory = errors.New("unsupported category")
)

const (
	SourceParsed      = "parsed"
	SourceOMDb        = "omdb"
	SourceGoogleBooks = "googleBooks"
)

// Metadata is one lookup result. Items point at it through their MetadataID.
type Metadata struct {
	ID       uuid.UUID      `json:"id"`
	ParentID uuid.UUID      `json:"parentId"`
	Category inventory.Kind `json:"category"`
	Title    string         `json:"title"`
	Year     int            `json:"year,omitempty"`
	Source   string         `json:"source"`

	Video *Video `json:"video,omitempty"`
	Book  *Book  `json:"book,omitempty"`
}

type Rating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Video holds what OMDb knows about a movie, show, season or episode
type Video struct {
	ImdbID     string   `json:"imdbId,omitempty"`
	Type       string   `json:"type,omitempty"`
	Rated      string   `json:"rated,omitempty"`
	Released   string   `json:"released,omitempty"`
	Runtime    string   `json:"runtime,omitempty"`
	Genre      string   `json:"genre,omitempty"`
	Director   string   `json:"director,omitempty"`
	Writer     string   `json:"writer,omitempty"`
	Actors     string   `json:"actors,omitempty"`
	Plot       string   `json:"plot,omitempty"`
	Language   string   `json:"language,omitempty"`
	Country    string   `json:"country,omitempty"`
	Poster     string   `json:"poster,omitempty"`
	ImdbRating string   `json:"imdbRating,omitempty"`
	Ratings    []Rating `json:"ratings,omitempty"`
	Season     int      `json:"season,omitempty"`
	Episode    int      `json:"episode,omitempty"`
}

// Book holds what Google Books knows about a volume
type Book struct {
	VolumeID      string   `json:"volumeId,omitempty"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	Description   string   `json:"description,omitempty"`
	PageCount     int      `json:"pageCount,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Language      string   `json:"language,omitempty"`
	ISBN          string   `json:"isbn,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
}

// Service creates metadata records. A disabled provider still yields a record
// with the parsed title and year.
type Service struct {
	docs  storage.DocumentStore
	omdb  *OMDb
	books *GoogleBooks
}

func New(docs storage.DocumentStore, omdb *OMDb, books *GoogleBooks) *Service {
	return &Service{docs: docs, omdb: omdb, books: books}
}

func (s *Service) collection(kind inventory.Kind) storage.Collection[Metadata] {
	return storage.NewCollection[Metadata](s.docs, path.Join("metadata", string(kind)))
}

// CreateNewMetadata looks req up with the provider for its category and stores the result.
// Provider failures are returned; a query without a match still stores the parsed values.
func (s *Service) CreateNewMetadata(ctx context.Context, req discovery.MetadataRequest) (*uuid.UUID, error) {
	log := logger.FromCtx(ctx)

	record := Metadata{
		ID:       uuid.New(),
		ParentID: req.ParentID,
		Category: req.Category,
		Title:    req.Title,
		Year:     req.Year,
		Source:   SourceParsed,
	}

	var err error
	switch req.Category {
	case inventory.KindMovie, inventory.KindShow, inventory.KindSeason, inventory.KindEpisode:
		err = s.lookupVideo(ctx, req, &record)
	case inventory.KindBook:
		err = s.lookupBook(ctx, req, &record)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCategory, req.Category)
	}

	if errors.Is(err, ErrNoMatch) {
		log.Debugw("no metadata match", "title", req.Title, "category", req.Category)
	} else if err != nil {
		return nil, err
	}

	err = s.collection(req.Category).Update(ctx, func(records []Metadata) ([]Metadata, error) {
		return append(records, record), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store metadata: %w", err)
	}

	log.Debugw("metadata created", "id", record.ID, "title", record.Title, "source", record.Source)
	return &record.ID, nil
}

func (s *Service) lookupVideo(ctx context.Context, req discovery.MetadataRequest, record *Metadata) error {
	if !s.omdb.Enabled() {
		return nil
	}

	video, err := s.omdb.Lookup(ctx, req)
	if err != nil {
		return err
	}

	record.Source = SourceOMDb
	if video.Title != "" {
		record.Title = video.Title
	}
	if video.Year != 0 {
		record.Year = video.Year
	}
	record.Video = &video.Video
	return nil
}

func (s *Service) lookupBook(ctx context.Context, req discovery.MetadataRequest, record *Metadata) error {
	if !s.books.Enabled() {
		return nil
	}

	volumes, err := s.books.Search(ctx, req.Title)
	if err != nil {
		return err
	}

	titles := make([]string, len(volumes))
	for i, v := range volumes {
		titles[i] = v.Title
	}

	idx, score := BestMatch(req.Title, titles)
	if idx < 0 {
		return fmt.Errorf("%w: best score %.2f", ErrNoMatch, score)
	}

	volume := volumes[idx]
	record.Source = SourceGoogleBooks
	record.Title = volume.Title
	if volume.Year != 0 {
		record.Year = volume.Year
	}
	record.Book = &volume.Book
	return nil
}

// ListMetadata returns every record of kind
func (s *Service) ListMetadata(ctx context.Context, kind inventory.Kind) ([]Metadata, error) {
	return s.collection(kind).List(ctx)
}

// GetMetadata returns the record with id or storage.ErrNotFound
func (s *Service) GetMetadata(ctx context.Context, kind inventory.Kind, id uuid.UUID) (Metadata, error) {
	records, err := s.ListMetadata(ctx, kind)
	if err != nil {
		return Metadata{}, err
	}

	idx := slices.IndexFunc(records, func(m Metadata) bool { return m.ID == id })
	if idx < 0 {
		return Metadata{}, storage.ErrNotFound
	}

	return records[idx], nil
}

// UpdateOrAddMetadata replaces the record with the same id or appends it
func (s *Service) UpdateOrAddMetadata(ctx context.Context, m Metadata) error {
	if m.Category == "" {
		return fmt.Errorf("%w: empty category", ErrUnsupportedCategory)
	}

	return s.collection(m.Category).Update(ctx, func(records []Metadata) ([]Metadata, error) {
		idx := slices.IndexFunc(records, func(r Metadata) bool { return r.ID == m.ID })
		if idx < 0 {
			return append(records, m), nil
		}
		records[idx] = m
		return records, nil
	})
}
