//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindWindow(flag.CommandLine)
	width := flag.Int("w", 128, "grid width in cells")
	height := flag.Int("h", 96, "grid height in cells")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	grid, err := core.NewGrid(*width, *height)
	if err != nil {
		log.Fatal(err)
	}
	sim := life.New(grid)
	if err := sim.Reset(cfg.Seed, cfg.Preset); err != nil {
		log.Fatal(err)
	}

	game, err := app.NewGame(sim, cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("mad-life — " + sim.Name())
	ebiten.SetWindowSize(*width*cfg.Scale, *height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
