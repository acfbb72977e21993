// Package inventory holds the discovered media model shared by discovery, storage and the api.
package inventory

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Kind is the category of an inventory item. It is also the collection key used by stores.
type Kind string

const (
	KindMovie   Kind = "Movie"
	KindShow    Kind = "Show"
	KindSeason  Kind = "Season"
	KindEpisode Kind = "Episode"
	KindBook    Kind = "Book"
)

// Kinds lists every known kind in cascade order
var Kinds = []Kind{KindMovie, KindShow, KindSeason, KindEpisode, KindBook}

// ParseKind returns the Kind for s, ignoring case, and whether it is known
func ParseKind(s string) (Kind, bool) {
	idx := slices.IndexFunc(Kinds, func(k Kind) bool { return strings.EqualFold(string(k), s) })
	if idx < 0 {
		return Kind(s), false
	}
	return Kinds[idx], true
}

// Item is one logical piece of media. Kind specific fields live in the
// Show, Season and Episode payloads, at most one of which is set.
type Item struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Kind       Kind       `json:"category"`
	MetadataID *uuid.UUID `json:"metadataId,omitempty"`
	Versions   []Version  `json:"versions"`
	Addons     []Addon    `json:"addons"`
	FolderPath *string    `json:"folderPath,omitempty"`

	Show    *ShowFields    `json:"show,omitempty"`
	Season  *SeasonFields  `json:"season,omitempty"`
	Episode *EpisodeFields `json:"episode,omitempty"`
}

type ShowFields struct {
	SeasonIDs []uuid.UUID `json:"seasonIds"`
}

type SeasonFields struct {
	ShowID     uuid.UUID   `json:"showId"`
	SeasonNr   int         `json:"seasonNr"`
	EpisodeIDs []uuid.UUID `json:"episodeIds"`
}

type EpisodeFields struct {
	SeasonID  uuid.UUID `json:"seasonId"`
	SeasonNr  int       `json:"seasonNr"`
	EpisodeNr int       `json:"episodeNr"`
}

// Version is one physical file backing an item
type Version struct {
	ID         uuid.UUID  `json:"id"`
	Path       string     `json:"path"`
	FileInfoID *uuid.UUID `json:"fileInfoId,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// Addon is a sidecar file such as a subtitle
type Addon struct {
	ID       uuid.UUID `json:"id"`
	Path     string    `json:"path"`
	Category string    `json:"category"`
	Language string    `json:"language,omitempty"`
}

const (
	AddonSubtitle = "Subtitle"
	AddonInfo     = "Info"
	AddonUnknown  = "Unknown"
)

// NewMovie returns a movie with a fresh id
func NewMovie(title string) Item {
	return Item{ID: uuid.New(), Title: title, Kind: KindMovie}
}

// NewBook returns a book with a fresh id
func NewBook(title string) Item {
	return Item{ID: uuid.New(), Title: title, Kind: KindBook}
}

// NewShow returns a show rooted at folderPath
func NewShow(title, folderPath string) Item {
	return Item{
		ID:         uuid.New(),
		Title:      title,
		Kind:       KindShow,
		FolderPath: &folderPath,
		Show:       &ShowFields{SeasonIDs: []uuid.UUID{}},
	}
}

// NewSeason returns a season of showID rooted at folderPath
func NewSeason(title, folderPath string, showID uuid.UUID, seasonNr int) Item {
	return Item{
		ID:         uuid.New(),
		Title:      title,
		Kind:       KindSeason,
		FolderPath: &folderPath,
		Season: &SeasonFields{
			ShowID:     showID,
			SeasonNr:   seasonNr,
			EpisodeIDs: []uuid.UUID{},
		},
	}
}

// NewEpisode returns an episode of seasonID
func NewEpisode(title string, seasonID uuid.UUID, seasonNr, episodeNr int) Item {
	return Item{
		ID:    uuid.New(),
		Title: title,
		Kind:  KindEpisode,
		Episode: &EpisodeFields{
			SeasonID:  seasonID,
			SeasonNr:  seasonNr,
			EpisodeNr: episodeNr,
		},
	}
}

// HasVersionPath reports whether any version of the item points at path
func (i Item) HasVersionPath(path string) bool {
	return slices.ContainsFunc(i.Versions, func(v Version) bool {
		return v.Path == path
	})
}

// HasFolderPath reports whether the item is grouped under folder
func (i Item) HasFolderPath(folder string) bool {
	return i.FolderPath != nil && *i.FolderPath == folder
}

// ChildIDs returns the seasons of a show or the episodes of a season
func (i Item) ChildIDs() []uuid.UUID {
	switch {
	case i.Show != nil:
		return i.Show.SeasonIDs
	case i.Season != nil:
		return i.Season.EpisodeIDs
	}
	return nil
}

// LinkChild appends id to the children of a show or season and reports whether it was missing
func (i *Item) LinkChild(id uuid.UUID) bool {
	if slices.Contains(i.ChildIDs(), id) {
		return false
	}

	switch i.Kind {
	case KindShow:
		if i.Show == nil {
			i.Show = &ShowFields{}
		}
		i.Show.SeasonIDs = append(slices.Clone(i.Show.SeasonIDs), id)
	case KindSeason:
		if i.Season == nil {
			i.Season = &SeasonFields{}
		}
		i.Season.EpisodeIDs = append(slices.Clone(i.Season.EpisodeIDs), id)
	default:
		return false
	}
	return true
}

// MergeAddons appends the addons whose path is not yet attached and reports whether anything was added
func (i *Item) MergeAddons(addons []Addon) bool {
	changed := false
	for _, a := range addons {
		if slices.ContainsFunc(i.Addons, func(existing Addon) bool { return existing.Path == a.Path }) {
			continue
		}
		i.Addons = append(i.Addons, a)
		changed = true
	}
	return changed
}

// Clone returns a deep copy so callers can mutate without touching shared slices
func (i Item) Clone() Item {
	c := i
	c.Versions = slices.Clone(i.Versions)
	c.Addons = slices.Clone(i.Addons)
	if i.MetadataID != nil {
		id := *i.MetadataID
		c.MetadataID = &id
	}
	if i.FolderPath != nil {
		p := *i.FolderPath
		c.FolderPath = &p
	}
	if i.Show != nil {
		sf := *i.Show
		sf.SeasonIDs = slices.Clone(sf.SeasonIDs)
		c.Show = &sf
	}
	if i.Season != nil {
		sf := *i.Season
		sf.EpisodeIDs = slices.Clone(sf.EpisodeIDs)
		c.Season = &sf
	}
	if i.Episode != nil {
		ef := *i.Episode
		c.Episode = &ef
	}
	return c
}

// RemoveID returns ids without id
func RemoveID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	return slices.DeleteFunc(slices.Clone(ids), func(v uuid.UUID) bool { return v == id })
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
