// Package ui holds the heads-up display and help overlay shared by the
// front-ends.
package ui

import (
	"fmt"

	"mad-life/pkg/sims/life"
)

// Phase names the controller state for display.
func Phase(st life.State) string {
	switch {
	case st.Running:
		return "running"
	case st.Extinct:
		return "extinct"
	default:
		return "paused"
	}
}

// StatusLine summarizes the simulation in one line.
func StatusLine(st life.State, g life.Geometry) string {
	return fmt.Sprintf("gen %d  pop %d  cell %dpx  %dx%d  %s",
		st.Generation, st.Population, g.CellSize, g.Cols, g.Rows, Phase(st))
}

// HelpLines explains the rules and the controls.
func HelpLines() []string {
	return []string{
		"Conway's Game of Life",
		"",
		"A live cell with 2 or 3 live neighbors survives.",
		"A dead cell with exactly 3 live neighbors is born.",
		"Every other cell dies or stays dead.",
		"",
		"The board zooms out as the pattern nears the edge.",
		"",
		"space  start / stop",
		"n      single generation",
		"s      seed a random pattern",
		"r      reset",
		"click  toggle a cell",
		"h      toggle this help",
		"q      quit",
	}
}
