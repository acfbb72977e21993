package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		candidates []string
		want       int
	}{
		{name: "exact beats longer titles", title: "Dune", candidates: []string{"Dune Messiah", "Dune", "Children of Dune"}, want: 1},
		{name: "accents are ignored", title: "Amélie", candidates: []string{"Le Fabuleux Destin", "Amelie"}, want: 1},
		{name: "punctuation is ignored", title: "Project Hail Mary", candidates: []string{"Project: Hail Mary!"}, want: 0},
		{name: "nothing close", title: "Dune", candidates: []string{"Xyzzy Quux"}, want: -1},
		{name: "no candidates", title: "Dune", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := BestMatch(tt.title, tt.candidates)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "amelie", Fold("Amélie!"))
	assert.Equal(t, "the matrix", Fold("  The   Matrix "))
	assert.Equal(t, "crouching tiger", Fold("Crouching\tTiger"))
	assert.Equal(t, "", Fold("..."))
}
