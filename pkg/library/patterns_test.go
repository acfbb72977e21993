package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMovieFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want MovieName
		ok   bool
	}{
		{name: "title and year", file: "Heat (1995).mkv", want: MovieName{Title: "Heat", Year: 1995, Extension: "mkv"}, ok: true},
		{name: "language", file: "Hunger Games (German).mp4", want: MovieName{Title: "Hunger Games", Language: "German", Extension: "mp4"}, ok: true},
		{name: "spaced version", file: "Hunger Games - Directors Cut.mp4", want: MovieName{Title: "Hunger Games", Version: "Directors Cut", Extension: "mp4"}, ok: true},
		{name: "hyphenated title", file: "Spider-Man.mkv", want: MovieName{Title: "Spider-Man", Extension: "mkv"}, ok: true},
		{name: "glued multi word version", file: "Foo-Directors Cut.mkv", want: MovieName{Title: "Foo", Version: "Directors Cut", Extension: "mkv"}, ok: true},
		{name: "year out of range", file: "Space (2150).mkv", want: MovieName{Title: "Space", Extension: "mkv"}, ok: true},
		{name: "bracket tag", file: "Movie [Group].mkv", ok: false},
		{name: "no extension", file: "Heat", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMovieFile(tt.file)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseMovieFolder(t *testing.T) {
	got, ok := ParseMovieFolder("Ex Machina (2014)")
	assert.True(t, ok)
	assert.Equal(t, MovieName{Title: "Ex Machina", Year: 2014}, got)

	got, ok = ParseMovieFolder("Die Welle (German)")
	assert.True(t, ok)
	assert.Equal(t, "Die Welle", got.Title)
	assert.Equal(t, "German", got.Language)

	_, ok = ParseMovieFolder("[Group]")
	assert.False(t, ok)
}

func TestParseBookNames(t *testing.T) {
	book, ok := ParseBookFile("Dune (1965).epub")
	assert.True(t, ok)
	assert.Equal(t, BookName{Title: "Dune", Year: 1965, Extension: "epub"}, book)

	book, ok = ParseBookFolder("The Expanse")
	assert.True(t, ok)
	assert.Equal(t, BookName{Title: "The Expanse"}, book)

	_, ok = ParseBookFile("[Group].epub")
	assert.False(t, ok)
}

func TestParseEpisodeFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want EpisodeName
		ok   bool
	}{
		{
			name: "scene release",
			file: "mr.robot.s02e10.720p.mkv",
			want: EpisodeName{Title: "mr robot", Season: 2, Episode: 10, Info: ".720p", Extension: "mkv"},
			ok:   true,
		},
		{
			name: "year and episode title",
			file: "Dark (2017) S01E02 - Secrets.mkv",
			want: EpisodeName{Title: "Dark", Year: 2017, Season: 1, Episode: 2, Info: "- Secrets", Extension: "mkv"},
			ok:   true,
		},
		{
			name: "parenthesized marker",
			file: "Show (S01/E03).mkv",
			want: EpisodeName{Title: "Show", Season: 1, Episode: 3, Extension: "mkv"},
			ok:   true,
		},
		{
			name: "fullwidth slash",
			file: "Show (S01／E03).mkv",
			want: EpisodeName{Title: "Show", Season: 1, Episode: 3, Extension: "mkv"},
			ok:   true,
		},
		{name: "no marker", file: "01 - Pilot.mkv", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEpisodeFile(tt.file)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSeasonFolder(t *testing.T) {
	tests := []struct {
		folder string
		want   int
		ok     bool
	}{
		{folder: "Season 1", want: 1, ok: true},
		{folder: "Staffel 02", want: 2, ok: true},
		{folder: "season_03", want: 3, ok: true},
		{folder: "Season 0", want: 0, ok: true},
		{folder: "Specials", ok: false},
		{folder: "Season 1 Extras", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			got, ok := ParseSeasonFolder(tt.folder)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumbers(t *testing.T) {
	n, ok := LeadingNumber("07 - Pilot")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = LeadingNumber("Pilot 07")
	assert.False(t, ok)

	n, ok = TrailingNumber("Season 02")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = TrailingNumber("Disc 12 ")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = TrailingNumber("Extras")
	assert.False(t, ok)

	// digit runs that overflow an int fail rather than wrap
	_, ok = TrailingNumber("Season 99999999999999999999")
	assert.False(t, ok)
}
