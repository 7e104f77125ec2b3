package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticFolder decomposes characters and strips combining marks, so
// "café" folds to "cafe".
var diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldDiacritics(s string) string {
	out, _, err := transform.String(diacriticFolder, s)
	if err != nil {
		return s
	}
	return out
}

// ContainsFold reports whether haystack contains needle ignoring case and
// diacritics. Used for the example-contains-word dataset invariant.
func ContainsFold(haystack, needle string) bool {
	h := strings.ToLower(foldDiacritics(haystack))
	n := strings.ToLower(foldDiacritics(needle))
	return strings.Contains(h, n)
}
