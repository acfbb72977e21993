package library

import (
	"regexp"
	"strconv"
	"strings"
)

// characters allowed in a structured title
const titleChars = "[\\p{L}\\p{N}\\p{Mn}_ .\\-'`´’:：&,!+]"

const (
	languageGroup = `(?: ?\((?P<language>[A-Z][a-zA-Z]+)\) ?)?`
	yearGroup     = `(?:[.( ](?P<year>\d{4})[.) ]?)?`
	versionGroup  = `(?: ?- ?(?P<version>[\p{L}\p{N}_ '’]+))?`
	extGroup      = `\.(?P<extension>[\p{L}\p{N}_]{2,4})`
)

var (
	movieFileRegex          = regexp.MustCompile(`^(?P<title>` + titleChars + `+?)` + languageGroup + yearGroup + versionGroup + extGroup + `$`)
	movieFileNoVersionRegex = regexp.MustCompile(`^(?P<title>` + titleChars + `+?)` + languageGroup + yearGroup + extGroup + `$`)
	movieFolderRegex        = regexp.MustCompile(`^(?P<title>` + titleChars + `+?)` + languageGroup + yearGroup + `$`)

	bookFileRegex   = regexp.MustCompile(`^(?P<title>` + titleChars + `+?)` + yearGroup + extGroup + `$`)
	bookFolderRegex = regexp.MustCompile(`^(?P<title>` + titleChars + `+?)` + yearGroup + `$`)

	episodeRegex = regexp.MustCompile(`(?i)^(?P<title>.*?)[ ._-]*` +
		`(?:[(.\[](?P<year>\d{4})[).\]]?[ ._-]*)?` +
		`(?:s(?P<season>\d{1,3})[ ._-]?e(?P<episode>\d{1,4})` +
		`|\([ ]?s(?P<altSeason>\d{1,3})[ ]?[/|∕⁄／｜¦][ ]?e(?P<altEpisode>\d{1,4})[ ]?\))` +
		`(?P<info>.*)\.(?P<extension>[\p{L}\p{N}]{2,5})$`)

	seasonFolderRegex   = regexp.MustCompile(`(?i)^(?:season|staffel)[ ._-]?0*(\d+)$`)
	leadingNumberRegex  = regexp.MustCompile(`^(\d+)`)
	trailingNumberRegex = regexp.MustCompile(`(\d+)\s*$`)
)

// MovieName is the structured reading of a movie file or folder name
type MovieName struct {
	Title     string
	Language  string
	Year      int
	Version   string
	Extension string
}

// BookName is the structured reading of a book file or folder name
type BookName struct {
	Title     string
	Year      int
	Extension string
}

// EpisodeName is the structured reading of an episode file name
type EpisodeName struct {
	Title     string
	Year      int
	Season    int
	Episode   int
	Info      string
	Extension string
}

func namedGroups(re *regexp.Regexp, s string) (map[string]string, []int, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, nil, false
	}

	groups := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		groups[name] = s[loc[2*i]:loc[2*i+1]]
	}

	return groups, loc, true
}

func parseYear(s string) int {
	if s == "" {
		return 0
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2099 {
		return 0
	}
	return y
}

// ParseMovieFile reads title, language, year, version and extension from a movie file name.
// A single word glued on with a bare hyphen, as in Spider-Man.mkv, stays part of the title.
func ParseMovieFile(name string) (MovieName, bool) {
	name = Normalize(name)

	groups, loc, ok := namedGroups(movieFileRegex, name)
	if ok && groups["version"] != "" && isGluedWord(name, loc[2*movieFileRegex.SubexpIndex("version")], groups["version"]) {
		ok = false
	}
	if !ok {
		groups, _, ok = namedGroups(movieFileNoVersionRegex, name)
		if !ok {
			return MovieName{}, false
		}
	}

	m := MovieName{
		Title:     strings.TrimSpace(groups["title"]),
		Language:  groups["language"],
		Year:      parseYear(groups["year"]),
		Version:   strings.TrimSpace(groups["version"]),
		Extension: groups["extension"],
	}

	return m, m.Title != ""
}

func isGluedWord(name string, versionStart int, version string) bool {
	if strings.ContainsAny(strings.TrimSpace(version), " ") {
		return false
	}

	dash := strings.LastIndex(name[:versionStart], "-")
	if dash < 0 {
		return false
	}

	spacedBefore := dash > 0 && name[dash-1] == ' '
	spacedAfter := dash+1 < len(name) && name[dash+1] == ' '
	return !spacedBefore && !spacedAfter
}

// ParseMovieFolder reads title, language and year from a movie folder name
func ParseMovieFolder(name string) (MovieName, bool) {
	groups, _, ok := namedGroups(movieFolderRegex, Normalize(name))
	if !ok {
		return MovieName{}, false
	}

	m := MovieName{
		Title:    strings.TrimSpace(groups["title"]),
		Language: groups["language"],
		Year:     parseYear(groups["year"]),
	}

	return m, m.Title != ""
}

// ParseBookFile reads title, year and extension from a book file name
func ParseBookFile(name string) (BookName, bool) {
	groups, _, ok := namedGroups(bookFileRegex, Normalize(name))
	if !ok {
		return BookName{}, false
	}

	b := BookName{
		Title:     strings.TrimSpace(groups["title"]),
		Year:      parseYear(groups["year"]),
		Extension: groups["extension"],
	}

	return b, b.Title != ""
}

// ParseBookFolder reads title and year from a book folder name
func ParseBookFolder(name string) (BookName, bool) {
	groups, _, ok := namedGroups(bookFolderRegex, Normalize(name))
	if !ok {
		return BookName{}, false
	}

	b := BookName{
		Title: strings.TrimSpace(groups["title"]),
		Year:  parseYear(groups["year"]),
	}

	return b, b.Title != ""
}

// ParseEpisodeFile reads an S01E02 or (S01/E02) marker and the text around it
func ParseEpisodeFile(name string) (EpisodeName, bool) {
	groups, _, ok := namedGroups(episodeRegex, Normalize(name))
	if !ok {
		return EpisodeName{}, false
	}

	seasonText, episodeText := groups["season"], groups["episode"]
	if seasonText == "" {
		seasonText, episodeText = groups["altSeason"], groups["altEpisode"]
	}

	season, err := strconv.Atoi(seasonText)
	if err != nil {
		return EpisodeName{}, false
	}
	episode, err := strconv.Atoi(episodeText)
	if err != nil {
		return EpisodeName{}, false
	}

	return EpisodeName{
		Title:     Dotless(groups["title"]),
		Year:      parseYear(groups["year"]),
		Season:    season,
		Episode:   episode,
		Info:      strings.TrimSpace(groups["info"]),
		Extension: groups["extension"],
	}, true
}

// ParseSeasonFolder reads N from "Season N" or "Staffel N"
func ParseSeasonFolder(name string) (int, bool) {
	m := seasonFolderRegex.FindStringSubmatch(strings.TrimSpace(Normalize(name)))
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	return n, err == nil
}

// LeadingNumber reads the digits a name starts with, e.g. 7 from "07 - Pilot"
func LeadingNumber(name string) (int, bool) {
	return numberMatch(leadingNumberRegex, name)
}

// TrailingNumber reads the digits a name ends with, e.g. 2 from "Season 02"
func TrailingNumber(name string) (int, bool) {
	return numberMatch(trailingNumberRegex, name)
}

func numberMatch(re *regexp.Regexp, name string) (int, bool) {
	m := re.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}

	// overlong digit runs fail the parse
	n, err := strconv.Atoi(m[1])
	return n, err == nil
}
