package life

import "mad-life/pkg/core"

// DefaultPreset is the catalog ID used when no preset is requested.
const DefaultPreset = 1

// Seed replaces the contents of g with an initial generation. A non-zero seed
// fills the grid pseudo-randomly; a zero seed places the requested preset.
func Seed(g *core.Grid, seed int64, preset int) error {
	p, err := core.LookupPreset(preset)
	if err != nil {
		return err
	}
	g.Clear()
	if seed != 0 {
		core.FillBinary(core.NewRNG(seed).Source(), g)
		return nil
	}
	p.Apply(g)
	return nil
}

// place returns a pattern that marks cells alive relative to the origin
// chosen by at.
func place(at func(core.Size) core.Cell, cells ...core.Cell) func(*core.Grid) {
	return func(g *core.Grid) {
		o := at(g.Size())
		for _, c := range cells {
			g.Set(o.X+c.X, o.Y+c.Y, true)
		}
	}
}

func fixed(x, y int) func(core.Size) core.Cell {
	return func(core.Size) core.Cell { return core.Cell{X: x, Y: y} }
}

func centered(w, h int) func(core.Size) core.Cell {
	return func(s core.Size) core.Cell { return core.Cell{X: (s.W - w) / 2, Y: (s.H - h) / 2} }
}

func init() {
	core.RegisterPreset(core.Preset{
		ID:    1,
		Name:  "blinker",
		Apply: place(fixed(10, 10), core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0}, core.Cell{X: 2, Y: 0}),
	})
	core.RegisterPreset(core.Preset{
		ID:   2,
		Name: "glider",
		Apply: place(fixed(0, 0),
			core.Cell{X: 2, Y: 1},
			core.Cell{X: 3, Y: 2},
			core.Cell{X: 1, Y: 3}, core.Cell{X: 2, Y: 3}, core.Cell{X: 3, Y: 3},
		),
	})
	core.RegisterPreset(core.Preset{
		ID:   3,
		Name: "block",
		Apply: place(centered(2, 2),
			core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0},
			core.Cell{X: 0, Y: 1}, core.Cell{X: 1, Y: 1},
		),
	})
	core.RegisterPreset(core.Preset{
		ID:   4,
		Name: "r-pentomino",
		Apply: place(centered(3, 3),
			core.Cell{X: 1, Y: 0}, core.Cell{X: 2, Y: 0},
			core.Cell{X: 0, Y: 1}, core.Cell{X: 1, Y: 1},
			core.Cell{X: 1, Y: 2},
		),
	})
}
