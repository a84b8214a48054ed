//go:build ebiten

package app

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/term"
	"mad-life/internal/ui"
	"mad-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	preset   int
}

// NewGame constructs a Game for the provided simulation and configuration.
func NewGame(sim *life.Life, cfg *Config) (*Game, error) {
	fg, err := cfg.Foreground()
	if err != nil {
		return nil, err
	}
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(),
		clock:    core.NewFixedStep(cfg.Rate),
		onColor:  term.RGBA(fg),
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
		preset:   cfg.Preset,
	}, nil
}

// Update handles per-frame logic and advances the simulation at the
// configured tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(g.seed, g.preset); err != nil {
			return err
		}
	}

	due := g.clock.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Generation(), g.sim.Grid().Population(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
