// Command life-bench advances a grid headlessly for a fixed number of
// generations and reports population and throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"mad-life/internal/app"
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"

	"github.com/cheggaaa/pb/v3"
)

// tally stands in for the screen: it never quits and records each frame.
type tally struct {
	bar      *pb.ProgressBar
	minPop   int
	maxPop   int
	rendered int
}

func (t *tally) PollQuit() (bool, error) { return false, nil }

func (t *tally) Render(g *core.Grid) error {
	pop := g.Population()
	if t.rendered == 0 || pop < t.minPop {
		t.minPop = pop
	}
	if pop > t.maxPop {
		t.maxPop = pop
	}
	t.rendered++
	t.bar.Increment()
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.BindSimulation(flag.CommandLine)
	width := flag.Int("w", 256, "grid width in cells")
	height := flag.Int("h", 256, "grid height in cells")
	paced := flag.Bool("paced", false, "sleep between generations as the terminal build does")
	flag.Parse()

	if cfg.Generations == 0 {
		cfg.Generations = 1000
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	grid, err := core.NewGrid(*width, *height)
	if err != nil {
		log.Fatal(err)
	}
	if err := life.Seed(grid, cfg.Seed, cfg.Preset); err != nil {
		log.Fatal(err)
	}

	t := &tally{bar: pb.Full.Start(cfg.Generations)}
	opts := []app.LoopOption{app.WithMaxGenerations(cfg.Generations)}
	if !*paced {
		opts = append(opts, app.WithSleep(func(time.Duration) {}))
	}
	loop, err := app.NewLoop(grid, cfg.Rate, t, t, opts...)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	runErr := loop.Run()
	elapsed := time.Since(start)
	t.bar.Finish()
	if runErr != nil {
		log.Fatal(runErr)
	}

	fmt.Printf("%dx%d grid, %d generations in %v (%.0f gen/s)\n",
		*width, *height, loop.Generation(), elapsed.Round(time.Millisecond),
		float64(loop.Generation())/elapsed.Seconds())
	fmt.Printf("population: final %d, min %d, max %d\n",
		loop.Grid().Population(), t.minPop, t.maxPop)
}
