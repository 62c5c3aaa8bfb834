package graph

import (
	"fmt"
	"sort"
)

// RedToBlue returns n hex colors fading from pure red towards blue.
// The blue channel takes n evenly spaced steps across 0..255, so for
// n <= 256 every color is distinct; channels never leave the valid
// range.
func RedToBlue(n int) []string {
	colors := make([]string, 0, n)
	if n <= 0 {
		return colors
	}
	step := 256.0 / float64(n)
	for i := 0; i < n; i++ {
		blue := int(step * float64(i))
		if blue > 255 {
			blue = 255
		}
		colors = append(colors, fmt.Sprintf("#%02x%02x%02x", 255-blue, 0, blue))
	}
	return colors
}

// ColorByUser assigns palette colors positionally, the user with the
// highest value gets the reddest color. Ties keep first-seen order and
// still receive distinct colors.
func (g *ReplyGraph) ColorByUser() map[string]string {
	users := g.Users()
	colors := RedToBlue(len(users))

	ranked := make([]string, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return g.Value(ranked[i]) > g.Value(ranked[j])
	})

	assigned := make(map[string]string, len(ranked))
	for i, id := range ranked {
		assigned[id] = colors[i]
	}
	return assigned
}
