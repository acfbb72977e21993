package metadata

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinMatchScore is the lowest Jaro-Winkler similarity accepted as a match
const MinMatchScore = 0.7

// BestMatch returns the index of the candidate closest to title and its score.
// The index is -1 when no candidate reaches MinMatchScore; ties keep the earlier candidate.
func BestMatch(title string, candidates []string) (int, float64) {
	want := Fold(title)

	best, bestScore := -1, 0.0
	for i, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(want, Fold(c)))
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	if bestScore < MinMatchScore {
		return -1, bestScore
	}
	return best, bestScore
}

// Fold lowercases s and strips accents and punctuation so "Amélie!" compares equal to "amelie"
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return -1
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}
