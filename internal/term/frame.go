package term

import (
	"strings"

	"mad-life/pkg/core"
)

const (
	// AliveGlyph is drawn for a live cell.
	AliveGlyph = "██"
	// DeadGlyph is drawn for a dead cell.
	DeadGlyph = "  "
	// CellWidth is the number of terminal columns a cell occupies.
	CellWidth = 2
)

// GridSize returns the grid dimensions that fit inside a one-character border
// on a terminal of cols x rows.
func GridSize(cols, rows int) (int, int) {
	return (cols - 2) / CellWidth, rows - 2
}

// Frame renders g as one string per row.
func Frame(g *core.Grid) []string {
	size := g.Size()
	lines := make([]string, size.H)
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		b.Reset()
		for _, alive := range g.Row(y) {
			if alive {
				b.WriteString(AliveGlyph)
			} else {
				b.WriteString(DeadGlyph)
			}
		}
		lines[y] = b.String()
	}
	return lines
}
