package textprocessor

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// bidi formatting characters left behind by chat clients around
// right-to-left text; they survive normalization and glue themselves
// onto word tokens
func isDirectionalControl(r rune) bool {
	switch {
	case r >= '\u202a' && r <= '\u202e': // embeddings and overrides
		return true
	case r >= '\u2066' && r <= '\u2069': // isolates
		return true
	case r == '\u200e' || r == '\u200f': // direction marks
		return true
	case r == '\u061c': // arabic letter mark
		return true
	}
	return false
}

// StripEmoji replaces emoji with spaces so adjacent words stay apart
// and removes directional formatting characters entirely.
func StripEmoji(text string) string {
	text = strings.Map(func(r rune) rune {
		if isDirectionalControl(r) {
			return -1
		}
		return r
	}, text)
	return gomoji.ReplaceEmojisWith(text, ' ')
}

// CleanName strips emoji and directional controls from a display name
// without leaving filler spaces behind.
func CleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if isDirectionalControl(r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(gomoji.RemoveEmojis(name))
}
