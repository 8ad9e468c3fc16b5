package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mad-life/pkg/sims/life"
)

func TestPhase(t *testing.T) {
	assert.Equal(t, "running", Phase(life.State{Running: true}))
	assert.Equal(t, "extinct", Phase(life.State{Extinct: true}))
	assert.Equal(t, "paused", Phase(life.State{}))
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(
		life.State{Generation: 12, Population: 43, Running: true},
		life.Geometry{CellSize: 15, Rows: 43, Cols: 64},
	)
	assert.Equal(t, "gen 12  pop 43  cell 15px  64x43  running", line)
}

func TestHelpMentionsControls(t *testing.T) {
	lines := HelpLines()
	assert.Contains(t, lines, "space  start / stop")
	assert.Contains(t, lines, "click  toggle a cell")
}
