package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid dimension that is zero or negative.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Grid stores one generation of binary cell states as rows of booleans.
// The dimensions are fixed at construction.
type Grid struct {
	w, h  int
	cells [][]bool
}

// NewGrid allocates a grid of dead cells and marks the provided cells alive.
// Coordinates outside the grid wrap toroidally.
func NewGrid(w, h int, alive ...Cell) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	g := &Grid{w: w, h: h, cells: makeRows(w, h)}
	for _, c := range alive {
		g.Set(c.X, c.Y, true)
	}
	return g, nil
}

// makeRows carves h rows of length w out of a single backing slice.
func makeRows(w, h int) [][]bool {
	backing := make([]bool, w*h)
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = backing[y*w : (y+1)*w : (y+1)*w]
	}
	return rows
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Alive reports the state of the cell at (x, y). Coordinates must be in range.
func (g *Grid) Alive(x, y int) bool { return g.cells[y][x] }

// Set changes the state of the cell at (x, y), wrapping out-of-range
// coordinates onto the torus.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	g.cells[y][x] = alive
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// NeighborCount returns the number of live cells among the eight toroidal
// neighbours of (x, y).
func (g *Grid) NeighborCount(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if g.cells[ny][nx] {
				n++
			}
		}
	}
	return n
}

// Row exposes row y. Callers must treat it as read-only.
func (g *Grid) Row(y int) []bool { return g.cells[y] }

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// AliveCells returns the coordinates of every live cell in row-major order.
func (g *Grid) AliveCells() []Cell {
	cells := make([]Cell, 0)
	for y, row := range g.cells {
		for x, alive := range row {
			if alive {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Blank returns a dead grid with the same dimensions as g.
func (g *Grid) Blank() *Grid {
	return &Grid{w: g.w, h: g.h, cells: makeRows(g.w, g.h)}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := g.Blank()
	for y, row := range g.cells {
		copy(c.cells[y], row)
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for y, row := range g.cells {
		for x, alive := range row {
			if other.cells[y][x] != alive {
				return false
			}
		}
	}
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for x := range row {
			row[x] = false
		}
	}
}
