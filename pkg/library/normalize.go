package library

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	// separators that delimit noise tokens
	sep = `[ _,.()\[\]\-]`

	noiseTokens = `3d|sbs|tab|hsbs|htab|mvc|hdr|hdc|uhd|ultrahd|4k|ac3|dts|custom|dc|divx|divx5|dsr|dsrip|dutch|dvd|dvdrip|dvdscr|dvdscreener|screener|dvdivx|cam|fragment|fs|hdtv|hdrip|hdtvrip|internal|limited|multi|subs|ntsc|ogg|ogm|pal|pdtv|proper|repack|rerip|retail|cd[1-9]|r5|bd5|bd|se|svcd|swedish|german|read.nfo|nfofix|unrated|ws|telesync|ts|telecine|tc|brrip|bdrip|480p|480i|576p|576i|720p|720i|1080p|1080i|2160p|hrhd|hrhdtv|hddvd|bluray|blu-ray|x264|x265|h264|h265|xvid|xvidvd|xxx|www.www|aac|\[.*\]`

	extraSuffixes = `scene|clip|behindthescenes|deleted|deletedscene|featurette|short|interview|other|extra`

	nonWord = `[^\p{L}\p{N}_]`
)

// cleanRule keeps the "cleaned" capture of its pattern
type cleanRule struct {
	name    string
	pattern *regexp.Regexp
	// accept can veto a match, standing in for lookarounds RE2 lacks
	accept func(s string, loc []int) bool
}

var cleanRules = []cleanRule{
	{
		name:    "noise token",
		pattern: regexp.MustCompile(`(?i)^\s*(?P<cleaned>.+?)` + sep + `(?:` + noiseTokens + `)(?:` + sep + `|$)`),
	},
	{
		name:    "trailing bracket tag",
		pattern: regexp.MustCompile(`(?i)^(?P<cleaned>.+?)\[.*\]`),
	},
	{
		name:    "episode range",
		pattern: regexp.MustCompile(`(?i)^\s*(?P<cleaned>.+?)` + nonWord + `E[0-9]+(?:-|~)E?[0-9]+(?:` + nonWord + `|$)`),
	},
	{
		name:    "leading release group",
		pattern: regexp.MustCompile(`(?i)^\s*\[[^\]]+\]\s*(?P<cleaned>.+)`),
		accept:  notOnlyExtensionAfterGroup,
	},
	{
		name:    "trailing number",
		pattern: regexp.MustCompile(`(?i)^\s*(?P<cleaned>.+?)\s+-\s+[0-9]+\s*$`),
	},
	{
		name:    "extras suffix",
		pattern: regexp.MustCompile(`(?i)^\s*(?P<cleaned>.+?)(?:(?:[-._ ](?:trailer|sample))|-(?:` + extraSuffixes + `))$`),
	},
}

var (
	leadingGroup      = regexp.MustCompile(`^\s*\[[^\]]+\]`)
	onlyExtensionRest = regexp.MustCompile(`^\.[\p{L}\p{N}_]+$`)
)

// notOnlyExtensionAfterGroup rejects "[Group].ext" where the tag is the whole name
func notOnlyExtensionAfterGroup(s string, _ []int) bool {
	loc := leadingGroup.FindStringIndex(s)
	if loc == nil {
		return false
	}
	return !onlyExtensionRest.MatchString(s[loc[1]:])
}

// Normalize returns s in unicode NFC so decomposed names parse like composed ones
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Clean strips release group, quality, source and extras noise from a raw name.
// Rules are tried in order and the first match wins for a pass; passes repeat until
// no rule applies. The second return is false when nothing was stripped or when
// stripping would leave an empty title.
func Clean(raw string) (string, bool) {
	current := Normalize(raw)
	changed := false

	for {
		next, ok := cleanOnce(current)
		if !ok || strings.TrimSpace(next) == "" || len(next) >= len(current) {
			break
		}
		current = next
		changed = true
	}

	if !changed {
		return raw, false
	}

	return current, true
}

func cleanOnce(s string) (string, bool) {
	for _, rule := range cleanRules {
		loc := rule.pattern.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		if rule.accept != nil && !rule.accept(s, loc) {
			continue
		}

		idx := rule.pattern.SubexpIndex("cleaned")
		return strings.TrimSpace(s[loc[2*idx]:loc[2*idx+1]]), true
	}

	return s, false
}

const (
	// the text before a year may not end in one of these
	titleEndExcluded = "_,.()[]-"
	// pattern one allows exactly one of these between title and year
	singleYearSep = "_.()[]-"
	// pattern two allows a run of these
	runYearSep = " _.()[]-"
)

// ExtractYear finds a trailing year between 1900 and 2099 and returns the title before it.
// The rightmost year that is preceded by a separator and followed by neither another
// digit nor a date shaped suffix such as "-05-12" wins.
func ExtractYear(title string) (string, int, bool) {
	runes := []rune(Normalize(title))

	if k, year, ok := findYear(runes, false); ok {
		return strings.TrimRightFunc(string(runes[:k]), unicode.IsSpace), year, true
	}

	if k, year, ok := findYear(runes, true); ok {
		return strings.TrimRightFunc(string(runes[:k]), unicode.IsSpace), year, true
	}

	return title, 0, false
}

// findYear returns the end of the title part and the year. The title part is
// made as long as possible, which selects the rightmost acceptable year.
func findYear(r []rune, allowRun bool) (int, int, bool) {
	for k := len(r) - 1; k >= 2; k-- {
		if strings.ContainsRune(titleEndExcluded, r[k-1]) {
			continue
		}

		start := k
		if allowRun {
			for start < len(r) && strings.ContainsRune(runYearSep, r[start]) {
				start++
			}
			if start == k {
				continue
			}
		} else {
			if !strings.ContainsRune(singleYearSep, r[k]) {
				continue
			}
			start = k + 1
		}

		year, ok := yearAt(r, start)
		if !ok {
			continue
		}

		return k, year, true
	}

	return 0, 0, false
}

func yearAt(r []rune, start int) (int, bool) {
	end := start + 4
	if end > len(r) {
		return 0, false
	}

	if !(r[start] == '1' && r[start+1] == '9') && !(r[start] == '2' && r[start+1] == '0') {
		return 0, false
	}
	if !isASCIIDigit(r[start+2]) || !isASCIIDigit(r[start+3]) {
		return 0, false
	}

	// no further digits
	if end < len(r) && isASCIIDigit(r[end]) {
		return 0, false
	}

	// no date shaped suffix
	if end+5 < len(r) && !isWord(r[end]) && isASCIIDigit(r[end+1]) && isASCIIDigit(r[end+2]) &&
		!isWord(r[end+3]) && isASCIIDigit(r[end+4]) && isASCIIDigit(r[end+5]) {
		return 0, false
	}

	year, err := strconv.Atoi(string(r[start:end]))
	if err != nil {
		return 0, false
	}

	return year, true
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pc, r)
}

// Dotless replaces dots used as word separators with spaces and trims
func Dotless(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ".", " "))
}
