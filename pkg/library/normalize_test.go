package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		changed bool
	}{
		{name: "quality and source tags", raw: "Crouching.Tiger.Hidden.Dragon.4K.UltraHD.HDR.BDrip-HDC", want: "Crouching.Tiger.Hidden.Dragon", changed: true},
		{name: "tags with extension", raw: "Crouching.Tiger.Hidden.Dragon.4K.UltraHD.HDR.BDrip-HDC.mkv", want: "Crouching.Tiger.Hidden.Dragon", changed: true},
		{name: "release keeps year for later", raw: "The.Movie.2019.1080p.BluRay.x264-GROUP", want: "The.Movie.2019", changed: true},
		{name: "language tag", raw: "Hunger Games (German)", want: "Hunger Games", changed: true},
		{name: "leading release group then episode number", raw: "[HorribleSubs] Show Name - 01", want: "Show Name", changed: true},
		{name: "trailer suffix", raw: "Inception-trailer", want: "Inception", changed: true},
		{name: "sample suffix", raw: "Inception.sample", want: "Inception", changed: true},
		{name: "featurette suffix", raw: "Inception-featurette", want: "Inception", changed: true},
		{name: "episode range", raw: "Show E01-E02", want: "Show", changed: true},
		{name: "trailing bracket tag", raw: "Heat [Remastered]", want: "Heat", changed: true},
		{name: "plain title", raw: "Ex Machina", want: "Ex Machina", changed: false},
		{name: "apostrophe title", raw: "Don't hex the water", want: "Don't hex the water", changed: false},
		{name: "token without separator", raw: "1080p", want: "1080p", changed: false},
		{name: "release group only before extension", raw: "[Group].mkv", want: "[Group].mkv", changed: false},
		{name: "cleaning to blank is no change", raw: "   -sample", want: "   -sample", changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Clean(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		year  int
		ok    bool
	}{
		{name: "dotted", title: "Millers.Girl.2024", want: "Millers.Girl", year: 2024, ok: true},
		{name: "parenthesized", title: "Movie (2010)", want: "Movie", year: 2010, ok: true},
		{name: "rightmost year wins", title: "2001.A.Space.Odyssey.1968", want: "2001.A.Space.Odyssey", year: 1968, ok: true},
		{name: "separator run", title: "Movie - 2010", want: "Movie", year: 2010, ok: true},
		{name: "year followed by text", title: "Heat.1995.Directors.Cut", want: "Heat", year: 1995, ok: true},
		{name: "date shaped suffix", title: "News.2020.05.12", want: "News.2020.05.12", ok: false},
		{name: "longer digit run", title: "Resolution.19201080", want: "Resolution.19201080", ok: false},
		{name: "out of range", title: "Space.2150", want: "Space.2150", ok: false},
		{name: "year is the whole title", title: "1917", want: "1917", ok: false},
		{name: "no year", title: "Ex Machina", want: "Ex Machina", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, year, ok := ExtractYear(tt.title)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNormalize(t *testing.T) {
	decomposed := "Amélie"
	assert.Equal(t, "Amélie", Normalize(decomposed))
}

func TestDotless(t *testing.T) {
	assert.Equal(t, "Millers Girl", Dotless("Millers.Girl."))
}
