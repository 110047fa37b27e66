// Package palette assigns colors to branch indexes.
//
// The assignment is a fixed lookup: branch k gets entry k mod len(palette).
package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultHex is the branch color table, in assignment order.
var DefaultHex = [...]string{
	"#e11d21", "#fbca04", "#009800", "#006b75", "#207de5",
	"#0052cc", "#5319e7", "#f7c6c7", "#fad8c7", "#fef2c0",
	"#bfe5bf", "#c7def8", "#bfdadc", "#bfd4f2", "#d4c5f9",
	"#cccccc", "#84b6eb", "#e6e6e6", "#ffffff", "#cc317c",
}

// Default is the palette built from DefaultHex.
var Default = MustParse(DefaultHex[:]...)

// Palette is an ordered, non-empty list of colors.
type Palette struct {
	colors []colorful.Color
}

// Parse builds a palette from hex strings such as "#e11d21".
func Parse(hex ...string) (Palette, error) {
	if len(hex) == 0 {
		return Palette{}, fmt.Errorf("palette needs at least one color")
	}
	colors := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colors[i] = c
	}
	return Palette{colors: colors}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(hex ...string) Palette {
	p, err := Parse(hex...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of colors before the assignment wraps.
func (p Palette) Len() int { return len(p.colors) }

// Color returns the color for branch index k. It is total over all ints:
// negative indexes wrap from the end of the table.
func (p Palette) Color(k int) color.Color {
	return p.colors[p.index(k)]
}

// Hex returns the color for branch index k as "#rrggbb".
func (p Palette) Hex(k int) string {
	return p.colors[p.index(k)].Hex()
}

func (p Palette) index(k int) int {
	n := len(p.colors)
	return ((k % n) + n) % n
}
