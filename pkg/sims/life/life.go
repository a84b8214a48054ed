package life

import (
	"errors"
	"fmt"

	"mad-life/pkg/core"
)

var (
	// ErrSizeMismatch reports a destination grid whose dimensions differ from the source.
	ErrSizeMismatch = errors.New("destination grid size differs from source")
	// ErrAliased reports an attempt to step a grid into itself.
	ErrAliased = errors.New("destination grid aliases the source")
)

// Next applies the B3/S23 rule to a cell with the given live-neighbour count.
func Next(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// Step returns the generation following g. g is left untouched.
func Step(g *core.Grid) *core.Grid {
	next := g.Blank()
	stepInto(next, g)
	return next
}

// StepInto writes the generation following src into dst.
func StepInto(dst, src *core.Grid) error {
	if dst == src {
		return ErrAliased
	}
	if dst.Size() != src.Size() {
		return fmt.Errorf("%w: %+v vs %+v", ErrSizeMismatch, dst.Size(), src.Size())
	}
	stepInto(dst, src)
	return nil
}

func stepInto(dst, src *core.Grid) {
	size := src.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			dst.Set(x, y, Next(src.Alive(x, y), src.NeighborCount(x, y)))
		}
	}
}

// Life implements Conway's Game of Life with toroidal wrapping over a pair of
// buffers that swap roles every generation.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
	gen int
}

// New returns a Life simulation starting from g. The simulation takes
// ownership of g.
func New(g *core.Grid) *Life {
	return &Life{cur: g, nxt: g.Blank()}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation. It is overwritten two steps later.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns the number of steps taken since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset reseeds the current generation. See Seed.
func (l *Life) Reset(seed int64, preset int) error {
	if err := Seed(l.cur, seed, preset); err != nil {
		return err
	}
	l.gen = 0
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	stepInto(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
