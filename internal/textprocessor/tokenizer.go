package textprocessor

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/sentences"
	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenize splits text into word tokens. The segmenter emits every
// segment including whitespace and punctuation runs, so only tokens
// containing at least one letter or digit are kept.
func Tokenize(text string) []string {
	tokens := make([]string, 0, 16)
	iter := words.FromString(text)
	for iter.Next() {
		if token := iter.Value(); wordlike(token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func wordlike(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// Sentences splits text into sentence segments, trailing whitespace
// included.
func Sentences(text string) []string {
	segments := make([]string, 0, 4)
	iter := sentences.FromString(text)
	for iter.Next() {
		segments = append(segments, iter.Value())
	}
	return segments
}
