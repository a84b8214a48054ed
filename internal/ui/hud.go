//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout over the top-left of the grid.
type HUD struct {
	backdrop *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{A: 160})
	return &HUD{backdrop: img}
}

// Draw paints the generation counter and population.
func (h *HUD) Draw(screen *ebiten.Image, generation, population int, paused bool) {
	if h == nil {
		return
	}
	line := Status(generation, population, paused)
	face := basicfont.Face7x13
	width := len(line) * face.Advance

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+8), float64(face.Height+6))
	screen.DrawImage(h.backdrop, op)
	text.Draw(screen, line, face, 4, face.Ascent+3, color.White)
}
