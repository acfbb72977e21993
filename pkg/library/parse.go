package library

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/openmediastation/mediaserver/pkg/inventory"
)

// Tier names the strategy that read the season and episode of a show file
type Tier string

const (
	TierMarker       Tier = "marker"
	TierLeadingDigit Tier = "leading-digit"
)

// Parsed is everything the name of a media path tells us, without touching any store
type Parsed struct {
	Path     string         `json:"path"`
	Category inventory.Kind `json:"category"`
	Title    string         `json:"title"`
	Year     int            `json:"year,omitempty"`
	Language string         `json:"language,omitempty"`
	Version  string         `json:"version,omitempty"`
	// FolderPath is set when the item has a dedicated folder
	FolderPath string `json:"folderPath,omitempty"`

	Show *ParsedShow `json:"show,omitempty"`
}

// ParsedShow carries the show and season keys of an episode
type ParsedShow struct {
	Title        string `json:"title"`
	SearchTitle  string `json:"searchTitle"`
	Year         int    `json:"year,omitempty"`
	FolderPath   string `json:"folderPath"`
	SeasonTitle  string `json:"seasonTitle"`
	SeasonFolder string `json:"seasonFolder"`
	Season       int    `json:"season"`
	Episode      int    `json:"episode"`
	Tier         Tier   `json:"tier"`
}

// Parse classifies path and reads it with the rules of its category
func Parse(path, mediaRoot string) (Parsed, error) {
	c, err := Classify(path, mediaRoot)
	if err != nil {
		return Parsed{}, err
	}

	switch c.Category {
	case inventory.KindMovie:
		return ParseMovie(c)
	case inventory.KindShow:
		return ParseShow(c)
	case inventory.KindBook:
		return ParseBook(c)
	}

	return Parsed{}, fmt.Errorf("%w: %s", ErrUnknownCategory, c.Category)
}

// normalized runs Clean then ExtractYear and reports whether either changed the name
func normalized(stem string) (string, int, bool) {
	title := stem
	changed := false

	if cleaned, ok := Clean(title); ok {
		title = cleaned
		changed = true
	}

	year := 0
	if withoutYear, y, ok := ExtractYear(title); ok {
		title = withoutYear
		year = y
		changed = true
	}

	if !changed {
		return "", 0, false
	}

	title = Dotless(title)
	return title, year, title != ""
}

// ParseMovie resolves title, year, language and version of a movie file.
// The folder title wins when the file name starts with it, then the cleaned
// name, then the structured file match.
func ParseMovie(c Classification) (Parsed, error) {
	file := Normalize(c.File)
	stem := Normalize(c.Stem())

	cleanedTitle, cleanedYear, cleanedOK := normalized(stem)
	fileMatch, fileOK := ParseMovieFile(file)
	if !fileOK && !cleanedOK {
		return Parsed{}, fmt.Errorf("%w: %s", ErrUnparseable, c.Path())
	}

	var folderMatch MovieName
	folderOK := false
	if c.HasFolder {
		folderMatch, folderOK = ParseMovieFolder(c.Folder)
	}

	p := Parsed{
		Path:     c.Path(),
		Category: inventory.KindMovie,
	}

	switch {
	case folderOK && strings.HasPrefix(file, folderMatch.Title):
		p.Title = strings.TrimSpace(folderMatch.Title)
	case cleanedOK:
		p.Title = cleanedTitle
	default:
		p.Title = Dotless(fileMatch.Title)
	}

	// a version only counts when the file extends a dedicated folder's title
	if folderOK && fileOK && fileMatch.Version != "" &&
		len(stem) > len(folderMatch.Title) && strings.HasPrefix(stem, folderMatch.Title) {
		p.Version = fileMatch.Version
	}

	p.Year = firstNonZero(cleanedYear, fileMatch.Year, folderMatch.Year)
	p.Language = firstNonEmpty(fileMatch.Language, folderMatch.Language)

	if folderOK {
		p.FolderPath = c.Dir()
	}

	return p, nil
}

// ParseShow reads show, season and episode. A marker such as S01E02 is tried first;
// otherwise the episode comes from leading digits of the file name and the season from
// trailing digits of the enclosing folder, or 1 when the file sits in the show folder.
// The show keeps its folder name as title; SearchTitle drops the year for lookups.
func ParseShow(c Classification) (Parsed, error) {
	showFolder, ok := c.TopFolder()
	if !ok {
		return Parsed{}, fmt.Errorf("%w: %s has no show folder", ErrUnparseable, c.Path())
	}

	file := Normalize(c.File)
	stem := Normalize(c.Stem())
	parent := c.Segments[len(c.Segments)-2]
	inShowFolder := len(c.Segments) == 3

	folderTitle := Normalize(showFolder)
	searchTitle, showYear, hasYear := ExtractYear(folderTitle)
	if !hasYear || strings.TrimSpace(searchTitle) == "" {
		searchTitle, showYear = folderTitle, 0
	}

	s := ParsedShow{
		Title:       folderTitle,
		SearchTitle: strings.TrimSpace(searchTitle),
		Year:        showYear,
		FolderPath:  filepath.Join(c.CategoryDir(), showFolder),
	}

	if marker, ok := ParseEpisodeFile(file); ok {
		s.Season, s.Episode, s.Tier = marker.Season, marker.Episode, TierMarker
		if s.Year == 0 {
			s.Year = marker.Year
		}
	} else {
		episode, ok := LeadingNumber(stem)
		if !ok {
			return Parsed{}, fmt.Errorf("%w: no episode number in %s", ErrUnparseable, c.Path())
		}

		season := 1
		if !inShowFolder {
			season, ok = TrailingNumber(parent)
			if !ok {
				return Parsed{}, fmt.Errorf("%w: no season number in %s", ErrUnparseable, c.Path())
			}
		}

		s.Season, s.Episode, s.Tier = season, episode, TierLeadingDigit
	}

	s.SeasonTitle = fmt.Sprintf("Season %d", s.Season)
	s.SeasonFolder = c.Dir()
	if !inShowFolder {
		if _, ok := ParseSeasonFolder(parent); ok {
			s.SeasonTitle = strings.TrimSpace(Normalize(parent))
		}
	}

	return Parsed{
		Path:     c.Path(),
		Category: inventory.KindEpisode,
		Title:    fmt.Sprintf("%s S%dE%d", s.Title, s.Season, s.Episode),
		Year:     s.Year,
		Show:     &s,
	}, nil
}

// ParseBook resolves the title and year of a book file. A folder is only the
// book's own folder when the file is named after it or is a numbered part.
func ParseBook(c Classification) (Parsed, error) {
	file := Normalize(c.File)
	stem := Normalize(c.Stem())

	fileMatch, fileOK := ParseBookFile(file)

	var folderMatch BookName
	folderOK := false
	if c.HasFolder {
		folderMatch, folderOK = ParseBookFolder(c.Folder)
	}
	dedicated := folderOK && (strings.HasPrefix(file, folderMatch.Title) || startsWithDigit(stem))

	p := Parsed{
		Path:     c.Path(),
		Category: inventory.KindBook,
	}

	cleanedYear := 0
	switch {
	case dedicated:
		p.Title = folderMatch.Title
	case fileOK:
		p.Title = Dotless(fileMatch.Title)
	default:
		title, year, ok := normalized(stem)
		if !ok {
			return Parsed{}, fmt.Errorf("%w: %s", ErrUnparseable, c.Path())
		}
		p.Title, cleanedYear = title, year
	}

	folderYear := 0
	if dedicated {
		folderYear = folderMatch.Year
		p.FolderPath = c.Dir()
	}
	p.Year = firstNonZero(fileMatch.Year, folderYear, cleanedYear)

	return p, nil
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
