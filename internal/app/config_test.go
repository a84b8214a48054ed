package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mad-life/internal/core"
	"mad-life/internal/term"
	pcore "mad-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("mad-life", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindWindow(fs)
	args := []string{"-color", "blue", "-rate", "3", "-seed", "7", "-preset", "2", "-generations", "50", "-scale", "4"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{Color: "blue", Rate: 3, Seed: 7, Preset: 2, Generations: 50, Scale: 4}
	if *cfg != want {
		t.Fatalf("cfg = %+v, want %+v", *cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	fg, err := cfg.Foreground()
	if err != nil || fg != tcell.ColorBlue {
		t.Fatalf("Foreground() = %v, %v", fg, err)
	}
}

func TestConfigDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Rate != 10 || cfg.Seed != 0 || cfg.Preset != 1 || cfg.Color != "green" {
		t.Fatalf("unexpected defaults %+v", *cfg)
	}
}

func TestConfigValidateCollectsErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Rate = 0
	cfg.Color = "not-a-colour"
	cfg.Preset = 99
	cfg.Generations = -1
	err := cfg.Validate()
	for _, target := range []error{core.ErrInvalidRate, term.ErrUnknownColor, pcore.ErrUnknownPreset} {
		if !errors.Is(err, target) {
			t.Fatalf("Validate() = %v, missing %v", err, target)
		}
	}
	if !strings.Contains(err.Error(), "generations must not be negative") {
		t.Fatalf("Validate() = %v, missing generations error", err)
	}
}

func TestConfigLogger(t *testing.T) {
	cfg := NewConfig()
	logger, closer, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	logger.Printf("dropped")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	cfg.LogPath = filepath.Join(t.TempDir(), "life.log")
	logger, closer, err = cfg.Logger()
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	logger.Printf("generation %d", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(cfg.LogPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "generation 3") {
		t.Fatalf("log file = %q", data)
	}
}

func TestBindSimulationOmitsDisplayFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life-bench", flag.ContinueOnError)
	cfg.BindSimulation(fs)
	for _, name := range []string{"color", "log", "scale"} {
		if fs.Lookup(name) != nil {
			t.Fatalf("simulation-only flags must not include -%s", name)
		}
	}
	if err := fs.Parse([]string{"-color", "mauve"}); err == nil {
		t.Fatal("-color should be rejected as an unknown flag")
	}
	for _, name := range []string{"rate", "seed", "preset", "generations"} {
		if fs.Lookup(name) == nil {
			t.Fatalf("missing -%s", name)
		}
	}
}

func TestPresetFlagUsageListsCatalog(t *testing.T) {
	fs := flag.NewFlagSet("mad-life", flag.ContinueOnError)
	NewConfig().Bind(fs)
	usage := fs.Lookup("preset").Usage
	want := "initial pattern (1 blinker, 2 glider, 3 block, 4 r-pentomino)"
	if usage != want {
		t.Fatalf("preset usage = %q, want %q", usage, want)
	}
}
