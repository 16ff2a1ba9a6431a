package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// genericAirlineWords never take part in word-level name matching on their own.
var genericAirlineWords = map[string]bool{
	"air":       true,
	"airline":   true,
	"airlines":  true,
	"airways":   true,
	"air lines": true,
	"aviation":  true,
	"express":   true,
}

// normalizeKey folds case, strips diacritics and collapses whitespace so that
// "Aeroméxico", "AEROMEXICO" and " aeromexico " share one key.
// Transformers are stateful, so a fresh chain is built per call.
func normalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	folded = cases.Fold().String(folded)

	// Punctuation inside names ("Delta Air-Lines", "Alaska Airlines.") is noise.
	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, folded)

	return strings.Join(strings.Fields(folded), " ")
}

// codeKey upper-cases and strips separators so "b6 1707" and "B6-1707" compare equal.
func codeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if r == ' ' || r == '-' || r == '_' || r == '.' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// containsWords reports whether needle appears in hay as a whole-word sequence.
func containsWords(hay, needle string) bool {
	if hay == "" || needle == "" {
		return false
	}
	return strings.Contains(" "+hay+" ", " "+needle+" ")
}

// substantialName reports whether a normalized name is specific enough for
// word-level matching.
func substantialName(n string) bool {
	return len(n) >= 3 && !genericAirlineWords[n]
}

// hasFlightNumberSuffix reports whether key continues with a digit right after prefix.
func hasFlightNumberSuffix(key, prefix string) bool {
	if len(key) <= len(prefix) || !strings.HasPrefix(key, prefix) {
		return false
	}
	c := key[len(prefix)]
	return c >= '0' && c <= '9'
}
