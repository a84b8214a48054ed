package main

import (
	"flag"
	"fmt"
	"log"

	"mad-life/internal/app"
	"mad-life/internal/term"
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

// opener acquires the terminal. term.Open in production.
type opener func(fg tcell.Color) (*term.Screen, error)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, term.Open); err != nil {
		log.Fatal(err)
	}
}

// run owns the terminal for the lifetime of the loop; the deferred Close
// restores it on every return path before main reports an error.
func run(cfg *app.Config, open opener) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	fg, err := cfg.Foreground()
	if err != nil {
		return err
	}
	logger, logFile, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	screen, err := open(fg)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	cols, rows := screen.Size()
	grid, err := core.NewGrid(term.GridSize(cols, rows))
	if err != nil {
		return fmt.Errorf("terminal %dx%d too small: %w", cols, rows, err)
	}
	if err := life.Seed(grid, cfg.Seed, cfg.Preset); err != nil {
		return err
	}

	loop, err := app.NewLoop(grid, cfg.Rate, screen, screen,
		app.WithLogger(logger),
		app.WithMaxGenerations(cfg.Generations),
	)
	if err != nil {
		return err
	}
	return loop.Run()
}
