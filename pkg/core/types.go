package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset reports a preset ID that has not been registered.
var ErrUnknownPreset = errors.New("unknown preset")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid position.
type Cell struct {
	X, Y int
}

// Preset is a named initial pattern selectable by its catalog ID.
type Preset struct {
	ID    int
	Name  string
	Apply func(g *Grid)
}

var presets = map[int]Preset{}

// RegisterPreset adds a pattern to the catalog under its ID.
func RegisterPreset(p Preset) {
	if p.ID <= 0 || p.Apply == nil {
		return
	}
	presets[p.ID] = p
}

// Presets exposes the registry of available patterns.
func Presets() map[int]Preset {
	return presets
}

// LookupPreset returns the preset registered under id.
func LookupPreset(id int) (Preset, error) {
	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("%w %d (known: %v)", ErrUnknownPreset, id, PresetIDs())
	}
	return p, nil
}

// PresetIDs lists the registered preset IDs in ascending order.
func PresetIDs() []int {
	ids := make([]int, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
