package ui

import "fmt"

// Status formats the HUD readout.
func Status(generation, population int, paused bool) string {
	s := fmt.Sprintf("gen %d  pop %d", generation, population)
	if paused {
		s += "  [paused]"
	}
	return s
}
