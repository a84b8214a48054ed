package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mad-life/internal/core"
	"mad-life/internal/term"
	pcore "mad-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Color       string
	Rate        int
	Seed        int64
	Preset      int
	Generations int
	LogPath     string
	Scale       int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Color: "green", Rate: 10, Seed: 0, Preset: 1, Scale: 8}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindSimulation(fs)
	fs.StringVar(&c.Color, "color", c.Color, "foreground colour name or #rrggbb")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "append diagnostics to this file while the screen is active")
}

// BindSimulation attaches only the flags that shape the simulation itself,
// for drivers that draw nothing.
func (c *Config) BindSimulation(fs *flag.FlagSet) {
	fs.IntVar(&c.Rate, "rate", c.Rate, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "0 places the preset; any other value seeds a random fill")
	fs.IntVar(&c.Preset, "preset", c.Preset, "initial pattern ("+presetUsage()+")")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until quit)")
}

// presetUsage lists the registered presets as "1 blinker, 2 glider, ...".
func presetUsage() string {
	catalog := pcore.Presets()
	names := make([]string, 0, len(catalog))
	for _, id := range pcore.PresetIDs() {
		names = append(names, fmt.Sprintf("%d %s", id, catalog[id].Name))
	}
	return strings.Join(names, ", ")
}

// BindWindow attaches the flags only meaningful to the windowed build.
func (c *Config) BindWindow(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
}

// Validate rejects configurations the loop cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := core.Interval(c.Rate); err != nil {
		errs = append(errs, err)
	}
	if _, err := term.ParseColor(c.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := pcore.LookupPreset(c.Preset); err != nil {
		errs = append(errs, err)
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative: got %d", c.Generations))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive: got %d", c.Scale))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Foreground resolves the configured colour.
func (c *Config) Foreground() (tcell.Color, error) {
	return term.ParseColor(c.Color)
}

// Logger opens the diagnostics log. Without a path, output is discarded
// because the terminal belongs to the screen while the loop runs.
func (c *Config) Logger() (*log.Logger, io.Closer, error) {
	if c.LogPath == "" {
		return log.New(io.Discard, "", 0), nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "mad-life: ", log.LstdFlags|log.Lmicroseconds), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
