// Package classifier implements the rule-based product classification
// engine and the text normalization it matches against.
package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents strips combining marks so Albanian, Italian and French
// spellings compare equal (ë→e, ç→c, é→e).
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input, folds diacritics to their base Latin
// letters and collapses runs of non-alphanumeric characters to single
// spaces. It is a pure function and idempotent:
// Normalize(Normalize(s)) == Normalize(s). It is a matching aid only;
// the original product text is never mutated.
func Normalize(text string) string {
	text = strings.ToLower(text)

	if folded, _, err := transform.String(foldAccents, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
