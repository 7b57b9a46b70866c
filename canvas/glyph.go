package canvas

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Printable reports whether r can occupy exactly one cell of the canvas.
// Control characters, whitespace other than the plain space, and wide or
// zero-width runes are rejected.
func Printable(r rune) bool {
	if r == Blank {
		return true
	}
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return false
	}
	return runewidth.RuneWidth(r) == 1
}
