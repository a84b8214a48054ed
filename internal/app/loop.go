package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"mad-life/internal/core"
	pcore "mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// ErrNilGrid reports a loop constructed without an initial generation.
var ErrNilGrid = errors.New("loop requires an initial grid")

// Renderer draws one generation. The grid must not be retained or modified.
type Renderer interface {
	Render(g *pcore.Grid) error
}

// QuitPoller reports, without blocking, whether the user asked to stop.
type QuitPoller interface {
	PollQuit() (bool, error)
}

// Loop drives a Life simulation: each tick it polls for quit, renders the
// current generation, advances it and sleeps for the tick interval.
type Loop struct {
	sim      *life.Life
	renderer Renderer
	input    QuitPoller
	interval time.Duration

	sleep          func(time.Duration)
	maxGenerations int
	logger         *log.Logger
}

// LoopOption customises a Loop.
type LoopOption func(*Loop)

// WithSleep replaces time.Sleep as the pacing function.
func WithSleep(sleep func(time.Duration)) LoopOption {
	return func(l *Loop) { l.sleep = sleep }
}

// WithMaxGenerations stops the loop after n generations. Zero means unbounded.
func WithMaxGenerations(n int) LoopOption {
	return func(l *Loop) { l.maxGenerations = n }
}

// WithLogger directs loop diagnostics to logger.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// NewLoop validates the tick rate and takes ownership of g.
func NewLoop(g *pcore.Grid, rate int, r Renderer, q QuitPoller, opts ...LoopOption) (*Loop, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	interval, err := core.Interval(rate)
	if err != nil {
		return nil, err
	}
	l := &Loop{
		sim:      life.New(g),
		renderer: r,
		input:    q,
		interval: interval,
		sleep:    time.Sleep,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Interval returns the pause between ticks.
func (l *Loop) Interval() time.Duration { return l.interval }

// Generation returns the number of generations advanced so far.
func (l *Loop) Generation() int { return l.sim.Generation() }

// Grid returns the current generation.
func (l *Loop) Grid() *pcore.Grid { return l.sim.Grid() }

// Run ticks until the quit key is seen, the generation limit is reached or a
// collaborator fails. Quitting is not an error.
func (l *Loop) Run() error {
	size := l.sim.Size()
	l.logger.Printf("running %dx%d grid every %v", size.W, size.H, l.interval)
	for {
		quit, err := l.input.PollQuit()
		if err != nil {
			return fmt.Errorf("poll input at generation %d: %w", l.sim.Generation(), err)
		}
		if quit {
			l.logger.Printf("quit at generation %d", l.sim.Generation())
			return nil
		}

		if err := l.renderer.Render(l.sim.Grid()); err != nil {
			return fmt.Errorf("render generation %d: %w", l.sim.Generation(), err)
		}

		l.sim.Step()
		if l.maxGenerations > 0 && l.sim.Generation() >= l.maxGenerations {
			l.logger.Printf("reached generation limit %d", l.maxGenerations)
			return nil
		}

		l.sleep(l.interval)
	}
}
