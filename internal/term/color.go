package term

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownColor reports a colour name tcell cannot resolve.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor resolves a colour name ("green", "lightblue", "light-blue") or a
// "#rrggbb" hex value.
func ParseColor(name string) (tcell.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if !strings.HasPrefix(key, "#") {
		key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	}
	c := tcell.GetColor(key)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("%w %q", ErrUnknownColor, name)
	}
	return c, nil
}

// RGBA converts a tcell colour to an opaque image colour.
func RGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
