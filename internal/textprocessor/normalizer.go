package textprocessor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespacesRegex = regexp.MustCompile(`\s+`)

	// arabic code points folded onto their persian equivalents, plus
	// the tatweel stretch character which carries no meaning
	persianFolds = strings.NewReplacer(
		"ي", "ی", // arabic yeh -> farsi yeh
		"ى", "ی", // alef maksura -> farsi yeh
		"ك", "ک", // arabic kaf -> keheh
		"ـ", "", // tatweel
	)
)

// NormalizeText folds text into a stable shape for token matching:
// compatibility decomposition (ligatures, presentation forms), removal
// of combining marks (diacritics), recomposition, persian letter
// unification, lowercasing and whitespace collapse.
func NormalizeText(text string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), text)
	if err == nil {
		text = folded
	}
	text = persianFolds.Replace(text)

	// lowercase
	text = strings.ToLower(text)

	// remove unnecessary spaces
	text = whitespacesRegex.ReplaceAllLiteralString(text, " ")
	return strings.TrimSpace(text)
}
